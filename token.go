package ircbot

import "strconv"

// Token is the resolved form of the command word of a line. It is either a
// Numeric reply code or a textual Verb.
type Token interface {
	String() string

	token()
}

// Numeric is a numeric server reply such as 001 or 433.
type Numeric uint16

func (Numeric) token() {}

// String returns the three digit wire form of the code.
func (n Numeric) String() string {
	s := strconv.Itoa(int(n))
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Verb is one of the textual commands the engine recognizes.
type Verb uint8

// Recognized textual commands.
const (
	VerbPrivmsg Verb = iota + 1
	VerbNotice
	VerbPass
	VerbNick
	VerbUser
	VerbOper
	VerbMode
	VerbService
	VerbQuit
	VerbJoin
	VerbPart
	VerbTopic
	VerbInvite
	VerbKick
	VerbPing
	VerbPong
)

var verbNames = map[Verb]string{
	VerbPrivmsg: "PRIVMSG",
	VerbNotice:  "NOTICE",
	VerbPass:    "PASS",
	VerbNick:    "NICK",
	VerbUser:    "USER",
	VerbOper:    "OPER",
	VerbMode:    "MODE",
	VerbService: "SERVICE",
	VerbQuit:    "QUIT",
	VerbJoin:    "JOIN",
	VerbPart:    "PART",
	VerbTopic:   "TOPIC",
	VerbInvite:  "INVITE",
	VerbKick:    "KICK",
	VerbPing:    "PING",
	VerbPong:    "PONG",
}

var verbsByName = func() map[string]Verb {
	m := make(map[string]Verb, len(verbNames))
	for v, name := range verbNames {
		m[name] = v
	}
	return m
}()

func (Verb) token() {}

// String returns the wire form of the verb.
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "UNKNOWN"
}

// ResolveToken maps a single command word to a Token. Words starting with a
// decimal digit are read as numeric replies (leading digits only, like atoi).
// Anything else must match a known verb exactly. The bool is false for words
// the engine does not recognize; that is not an error.
func ResolveToken(word string) (Token, bool) {
	if word == "" {
		return nil, false
	}

	if isDigit(word[0]) {
		code := 0
		for i := 0; i < len(word) && isDigit(word[i]); i++ {
			code = code*10 + int(word[i]-'0')
			if code > 0xffff {
				return nil, false
			}
		}

		// Code 0 has never been a valid reply.
		if code == 0 {
			return nil, false
		}

		return Numeric(code), true
	}

	if v, ok := verbsByName[word]; ok {
		return v, true
	}

	return nil, false
}

// Describe returns a human readable name for a token, for diagnostics only.
func Describe(t Token) string {
	switch t := t.(type) {
	case Verb:
		if name, ok := verbNames[t]; ok {
			return name
		}
	case Numeric:
		if name, ok := numericNames[t]; ok {
			return name
		}
	}

	return "(not found)"
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
