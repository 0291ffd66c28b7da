package ircbot

// MaxUserWatches is the capacity of each of the user join and user part
// watch lists.
const MaxUserWatches = 64

type userWatch struct {
	used    bool
	channel int
	nick    string
	handler UserHandler
}

// watchList maps (channel slot, nick) pairs to handlers. Each pair appears at
// most once.
type watchList [MaxUserWatches]userWatch

func (l *watchList) find(channel int, nick string) int {
	for i := range l {
		if l[i].used && l[i].channel == channel && l[i].nick == nick {
			return i
		}
	}
	return -1
}

func (l *watchList) attach(channel int, nick string, h UserHandler) error {
	if h == nil {
		return ErrNilHandler
	}
	if l.find(channel, nick) >= 0 {
		return ErrDuplicate
	}

	for i := range l {
		if !l[i].used {
			l[i] = userWatch{
				used:    true,
				channel: channel,
				nick:    nick,
				handler: h,
			}
			return nil
		}
	}

	return ErrRegistryFull
}

func (l *watchList) detach(channel int, nick string) error {
	i := l.find(channel, nick)
	if i < 0 {
		return ErrNoSuchWatch
	}

	l[i] = userWatch{}

	return nil
}

// flush drops every watch on channel and returns how many there were.
func (l *watchList) flush(channel int) int {
	count := 0
	for i := range l {
		if l[i].used && l[i].channel == channel {
			l[i] = userWatch{}
			count++
		}
	}
	return count
}

// each calls f for every watch on (channel, nick).
func (l *watchList) each(channel int, nick string, f func(UserHandler)) {
	for i := range l {
		if l[i].used && l[i].channel == channel && l[i].nick == nick {
			f(l[i].handler)
		}
	}
}

// len returns the number of active watches.
func (l *watchList) len() int {
	count := 0
	for i := range l {
		if l[i].used {
			count++
		}
	}
	return count
}

func (b *Bot) watchTarget(channel, nick string) (int, error) {
	if b.dispatching {
		return -1, ErrDispatching
	}
	if !validName(nick) {
		return -1, ErrInvalidName
	}

	idx := b.findChannel(channel)
	if idx < 0 {
		return -1, ErrNoSuchChannel
	}

	return idx, nil
}

// AttachOnUserJoin calls h whenever nick joins channel. The channel must
// already be in the registry.
func (b *Bot) AttachOnUserJoin(channel, nick string, h UserHandler) error {
	idx, err := b.watchTarget(channel, nick)
	if err != nil {
		return err
	}

	return b.userJoins.attach(idx, nick, h)
}

// DetachOnUserJoin removes the join watch for nick on channel.
func (b *Bot) DetachOnUserJoin(channel, nick string) error {
	idx, err := b.watchTarget(channel, nick)
	if err != nil {
		return err
	}

	return b.userJoins.detach(idx, nick)
}

// AttachOnUserPart calls h whenever nick leaves channel.
func (b *Bot) AttachOnUserPart(channel, nick string, h UserHandler) error {
	idx, err := b.watchTarget(channel, nick)
	if err != nil {
		return err
	}

	return b.userParts.attach(idx, nick, h)
}

// DetachOnUserPart removes the part watch for nick on channel.
func (b *Bot) DetachOnUserPart(channel, nick string) error {
	idx, err := b.watchTarget(channel, nick)
	if err != nil {
		return err
	}

	return b.userParts.detach(idx, nick)
}

// FlushUserWatches drops every join and part watch on channel and returns how
// many were removed.
func (b *Bot) FlushUserWatches(channel string) (int, error) {
	if b.dispatching {
		return 0, ErrDispatching
	}

	idx := b.findChannel(channel)
	if idx < 0 {
		return 0, ErrNoSuchChannel
	}

	return b.userJoins.flush(idx) + b.userParts.flush(idx), nil
}

// UserWatches returns how many join and part watches are active.
func (b *Bot) UserWatches() (joins, parts int) {
	return b.userJoins.len(), b.userParts.len()
}
