package ircbot

import (
	"errors"
	"strings"
)

// MaxArgs is the most fields SplitArgs will return.
const MaxArgs = 16

var (
	// ErrMissingSpace is returned when a line has no space separator at all.
	ErrMissingSpace = errors.New("ircbot: line has no space separator")

	// ErrMissingTarget is returned when a PRIVMSG has no space after its
	// target channel.
	ErrMissingTarget = errors.New("ircbot: no space between target and message")

	// ErrMissingTrailing is returned when a PRIVMSG message does not start
	// with a ':'.
	ErrMissingTrailing = errors.New("ircbot: no ':' introducing the message")
)

// Prefix represents the nick!user@host source of a line sent by a user.
type Prefix struct {
	Nick string
	User string
	Host string
}

// ParsePrefix splits a nick!user@host string. A leading ':' and a leading
// '~' on the user are stripped. The bool is false if either separator is
// missing, which is the case for server names.
func ParsePrefix(s string) (*Prefix, bool) {
	s = strings.TrimPrefix(s, ":")

	i := strings.IndexByte(s, '!')
	if i < 0 {
		return nil, false
	}
	nick, rest := s[:i], s[i+1:]
	rest = strings.TrimPrefix(rest, "~")

	j := strings.IndexByte(rest, '@')
	if j < 0 {
		return nil, false
	}

	return &Prefix{
		Nick: nick,
		User: rest[:j],
		Host: rest[j+1:],
	}, true
}

// String returns the prefix in nick!user@host form.
func (p *Prefix) String() string {
	return p.Nick + "!" + p.User + "@" + p.Host
}

// Line is a single parsed protocol line. All string fields are slices of
// Raw; parsing never modifies the input.
type Line struct {
	// This is what the Line was parsed from, without the line ending.
	Raw string

	// Source is the text of the prefix without its ':', or empty.
	Source string

	// Prefix is set only when Source is a nick!user@host.
	Prefix *Prefix

	// Word is the command word as it appeared on the wire.
	Word string

	// Token is the resolved command, or nil if it was not recognized.
	Token Token

	// Args is everything after the command word, uninterpreted.
	Args string
}

// ParseLine splits a line into its optional prefix, command and argument
// text. A line without any space is malformed.
func ParseLine(raw string) (*Line, error) {
	first, rest, ok := strings.Cut(raw, " ")
	if !ok {
		return nil, ErrMissingSpace
	}

	l := &Line{Raw: raw}

	if strings.HasPrefix(first, ":") {
		l.Source = first[1:]
		l.Prefix, _ = ParsePrefix(l.Source)
		l.Word, l.Args, _ = strings.Cut(rest, " ")
	} else {
		l.Word = first
		l.Args = rest
	}

	l.Token, _ = ResolveToken(l.Word)

	return l, nil
}

// Nick returns the nick of the sender, or an empty string if the line did
// not come from a user.
func (l *Line) Nick() string {
	if l.Prefix == nil {
		return ""
	}
	return l.Prefix.Nick
}

// Channel returns the first word of the argument text, without a leading
// ':'. Some servers send JOIN with the channel as a trailing parameter.
func (l *Line) Channel() string {
	return firstParam(l.Args)
}

// firstParam returns the first word of args without a leading ':'.
func firstParam(args string) string {
	word, _, _ := strings.Cut(args, " ")
	return strings.TrimPrefix(word, ":")
}

// Privmsg is the argument text of a PRIVMSG split into its parts.
type Privmsg struct {
	Channel string

	// ToNick is the nick the message was addressed to with a "nick: "
	// prefix, or empty.
	ToNick string

	Message string
}

// ParsePrivmsg splits PRIVMSG argument text of the form
// "<channel> :[<nick>:] <message>". The nick is only recognized if the ':'
// following it comes before any space.
func ParsePrivmsg(args string) (*Privmsg, error) {
	channel, rest, ok := strings.Cut(args, " ")
	if !ok {
		return nil, ErrMissingTarget
	}

	if !strings.HasPrefix(rest, ":") {
		return nil, ErrMissingTrailing
	}
	rest = rest[1:]

	pm := &Privmsg{Channel: channel, Message: rest}

	if i := strings.IndexByte(rest, ':'); i >= 0 && !strings.Contains(rest[:i], " ") {
		pm.ToNick = rest[:i]
		pm.Message = strings.TrimLeft(rest[i+1:], " ")
	}

	return pm, nil
}

// SplitArgs splits s on runs of spaces and tabs. At most MaxArgs fields are
// returned; the last one holds the rest of the string unsplit.
func SplitArgs(s string) []string {
	const sep = " \t"

	s = strings.TrimLeft(s, sep)
	if s == "" {
		return nil
	}

	var ret []string
	for len(ret) < MaxArgs-1 {
		i := strings.IndexAny(s, sep)
		if i < 0 {
			break
		}

		ret = append(ret, s[:i])
		s = strings.TrimLeft(s[i:], sep)
		if s == "" {
			return ret
		}
	}

	return append(ret, s)
}
