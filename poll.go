package ircbot

import (
	"strings"
)

// Poll does one round of work: it reads whatever the transport has, handles
// every complete line and then advances the connection state. It never
// blocks and should be called frequently.
func (b *Bot) Poll() {
	if !b.enabled {
		return
	}

	if b.state > Connecting {
		if !b.transport.Connected() {
			b.logger.Warn("ircbot: connection closed")
			b.state = Disconnected
			b.announceDisconnect()
			return
		}

		if b.transport.Available() > 0 || b.ring.Len() > 0 {
			b.ingest()
			if !b.enabled {
				return
			}
		}
	}

	switch b.state {
	case Disconnected:
		b.connect()

	case Connecting:
		if !b.transport.Connected() {
			b.logger.Warn("ircbot: connection dropped while connecting")
			b.state = Disconnected
			return
		}

		b.state = Connected
		b.announceConnect()

	case ServerInit:
		if b.password != "" && !b.passSent {
			b.send("PASS " + b.password)
			b.passSent = true
		}

		b.logger.Info("ircbot: registering nick ", b.nick)
		b.send("NICK " + b.nick)
		b.nickSentAt = b.clock.Now()
		b.state = RegisteringNick

	case RegisteringNick:
		if b.clock.Now().Sub(b.nickSentAt) > nickDelay {
			b.state = NickRegistered
		}

	case NickRegistered:
		b.logger.Info("ircbot: registering user ", b.user)
		b.send("USER " + b.user + " 0 * :" + b.description)
		b.state = RegisteringUser

	case MotdFinished:
		b.joinChannels()
	}
}

func (b *Bot) connect() {
	if !b.transport.Connected() {
		b.logger.Info("ircbot: connecting to ", b.server, ":", b.port)
		if err := b.transport.Connect(b.server, b.port); err != nil {
			b.logger.Warn("ircbot: connect failed: ", err)
			return
		}
	}

	b.resetChannels()
	b.ring.Reset()
	b.discarding = false
	b.motdSeen = false
	b.passSent = false
	b.collisions = 0
	b.state = Connecting
}

// ingest moves available transport data into the ring buffer and handles
// every complete line in it. A line is complete once the byte after its
// '\r' has arrived. A line that does not fit in the ring is dropped whole.
func (b *Bot) ingest() {
	n := b.transport.Available()
	if n > len(b.staging) {
		n = len(b.staging)
	}
	if free := b.ring.Free(); n > free {
		n = free
	}

	if n > 0 {
		read, err := b.transport.Read(b.staging[:n])
		if err != nil {
			b.logger.Warn("ircbot: read failed: ", err)
		}
		if read > 0 {
			b.ring.Append(b.staging[:read])
		}
	}

	if b.discarding && !b.skipDiscarded() {
		return
	}

	b.dispatching = true
	defer func() { b.dispatching = false }()

	for {
		i, ok := b.ring.Find('\r')
		if !ok || i+1 >= b.ring.Len() {
			break
		}

		n := b.ring.ConsumeUntil('\r', b.line)
		b.ring.Skip(2)

		if !b.handleLine(string(b.line[:n])) {
			return
		}
	}

	if b.ring.Free() == 0 {
		b.logger.Warn("ircbot: discarding ", b.ring.Len(), " buffered bytes without a line ending")
		b.discarding = true
		b.skipDiscarded()
	}
}

// skipDiscarded drops buffered input up to and including the end of the line
// being discarded. It returns true once that line ending has been consumed.
func (b *Bot) skipDiscarded() bool {
	i, ok := b.ring.Find('\r')
	if !ok {
		b.ring.Reset()
		return false
	}

	// Keep a trailing '\r' until the byte after it arrives.
	if i+1 >= b.ring.Len() {
		b.ring.Skip(i)
		return false
	}

	b.ring.Skip(i + 2)
	b.discarding = false

	return true
}

// handleLine dispatches a single line. It returns false when the rest of the
// buffered lines must wait for the next poll.
func (b *Bot) handleLine(raw string) bool {
	b.logger.Debug("ircbot: <-- ", raw)

	l, err := ParseLine(raw)
	if err != nil {
		b.logger.Debug("ircbot: dropping line: ", err)
		return true
	}

	if l.Token == nil {
		b.logger.Debug("ircbot: ignoring unrecognized command ", l.Word)
		return true
	}

	switch l.Token {
	case VerbPing:
		b.handlePing(l)

	case VerbPong:
		b.logger.Debug("ircbot: received PONG ", l.Args)

	case RplEndOfMOTD, RplErrNoMOTD:
		if b.state > RegisteringUser {
			b.state = MotdFinished
		}
		b.motdSeen = true

	case VerbJoin, VerbPart:
		b.handleMembership(l)

	case VerbKick:
		b.handleKick(l)

	case VerbNick:
		b.handleNick(l)

	case VerbPrivmsg:
		b.handlePrivmsg(l)

	case RplErrErroneousNickname, RplErrNicknameInUse, RplErrNickCollision:
		b.handleNickRejected(l)
		return false

	case RplWelcome, RplErrAlreadyRegistered:
		b.collisions = 0
		if b.state == RegisteringUser {
			b.state = UserRegistered
			if b.motdSeen {
				b.state = MotdFinished
			}
		}

	case RplErrYoureBannedCreep:
		b.logger.Error("ircbot: banned from ", b.server, "; disabling bot")
		b.End()
		return false

	default:
		if b.state == Connected {
			b.state = ServerInit
		}
	}

	// A handler may have called End.
	return b.enabled
}

func (b *Bot) handlePing(l *Line) {
	var token string
	switch {
	case strings.HasPrefix(l.Args, ":"):
		token = l.Args[1:]
	case l.Args != "":
		token, _, _ = strings.Cut(l.Args, " ")
	}

	if token == "" {
		token = b.user
	}

	if strings.Contains(token, " ") {
		b.send("PONG :" + token)
	} else {
		b.send("PONG " + token)
	}
}

// handleMembership handles JOIN and PART. Lines about the bot itself update
// the channel slot; lines about anyone else go to the user watches.
func (b *Bot) handleMembership(l *Line) {
	channel := l.Channel()

	idx := b.findChannel(channel)
	if idx < 0 {
		b.logger.Debug("ircbot: ", l.Word, " for channel not in the registry: ", channel)
		return
	}

	if l.Prefix == nil {
		return
	}

	slot := &b.channels[idx]
	if l.Prefix.Nick != b.nick {
		watches := &b.userJoins
		if l.Token == VerbPart {
			watches = &b.userParts
		}
		b.runUserWatches(watches, idx, l.Prefix.Nick)
		return
	}

	if l.Token == VerbJoin {
		if slot.state != Joining {
			return
		}

		slot.state = Joined
		b.logger.Info("ircbot: joined ", slot.name)
		if slot.onJoin != nil {
			slot.onJoin.HandleChannel(b, slot.name)
		}
		return
	}

	b.parted(slot)
}

// handleKick treats a kick like a part of the kicked nick. A kicked bot
// rejoins on the next poll.
func (b *Bot) handleKick(l *Line) {
	channel, rest, _ := strings.Cut(l.Args, " ")
	nick := firstParam(rest)

	idx := b.findChannel(channel)
	if idx < 0 || nick == "" {
		return
	}

	if nick != b.nick {
		b.runUserWatches(&b.userParts, idx, nick)
		return
	}

	b.logger.Warn("ircbot: kicked from ", channel, " by ", l.Nick())
	b.parted(&b.channels[idx])
}

func (b *Bot) parted(slot *channelSlot) {
	slot.state = NotJoined
	b.logger.Info("ircbot: left ", slot.name)
	if slot.onPart != nil {
		slot.onPart.HandleChannel(b, slot.name)
	}
}

func (b *Bot) runUserWatches(watches *watchList, idx int, nick string) {
	channel := b.channels[idx].name
	watches.each(idx, nick, func(h UserHandler) {
		b.logger.Debug("ircbot: running user watch for ", nick, " on ", channel)
		h.HandleUser(b, channel, nick)
	})
}

// handleNick follows nick changes made by the server or by SetNick.
func (b *Bot) handleNick(l *Line) {
	if l.Prefix == nil || l.Prefix.Nick != b.nick {
		return
	}

	if nick := firstParam(l.Args); nick != "" {
		b.nick = truncate(nick, MaxNickLen)
		b.logger.Info("ircbot: nick is now ", b.nick)
	}
}

func (b *Bot) handlePrivmsg(l *Line) {
	pm, err := ParsePrivmsg(l.Args)
	if err != nil {
		b.logger.Debug("ircbot: malformed PRIVMSG: ", err)
		return
	}

	if pm.ToNick == "" || pm.ToNick != b.nick {
		return
	}

	if l.Prefix == nil {
		b.logger.Debug("ircbot: ignoring command from ", l.Source)
		return
	}

	name, args, _ := strings.Cut(pm.Message, " ")
	b.dispatchCommand(&CommandEvent{
		Channel: pm.Channel,
		Nick:    l.Prefix.Nick,
		Command: name,
		Args:    args,
	})
}

// handleNickRejected picks a new nick and restarts registration. After too
// many rejections in a row the bot gives up.
func (b *Bot) handleNickRejected(l *Line) {
	b.collisions++
	if b.collisions > b.nickRetries {
		b.logger.Error("ircbot: nick rejected ", b.nickRetries, " times; disabling bot")
		b.End()
		return
	}

	b.nick = nextNick(b.nick)
	b.logger.Warn("ircbot: nick rejected with ", Describe(l.Token), "; trying ", b.nick)
	b.state = ServerInit
}

// nextNick appends '_' to nick, replacing the last character once the nick
// is as long as it can be.
func nextNick(nick string) string {
	if len(nick) >= MaxNickLen {
		nick = nick[:MaxNickLen-1]
	}
	return nick + "_"
}
