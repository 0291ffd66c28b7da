package ircbot

// MaxChannels is the number of channel slots in a Bot.
const MaxChannels = 4

// JoinState is the membership state of a channel slot.
type JoinState int

// Channel membership states.
const (
	NotJoined JoinState = iota
	Joining
	Joined
	NeedAuth
)

func (s JoinState) String() string {
	switch s {
	case NotJoined:
		return "NotJoined"
	case Joining:
		return "Joining"
	case Joined:
		return "Joined"
	case NeedAuth:
		return "NeedAuth"
	}
	return "Unknown"
}

// ChannelInfo is a snapshot of one channel slot.
type ChannelInfo struct {
	Name  string
	State JoinState
}

// channelSlot is free when name is empty.
type channelSlot struct {
	name   string
	state  JoinState
	onJoin ChannelHandler
	onPart ChannelHandler
}

func (b *Bot) findChannel(name string) int {
	if name == "" {
		return -1
	}

	for i := range b.channels {
		if b.channels[i].name == name {
			return i
		}
	}

	return -1
}

// AddChannel puts name in the first free channel slot and returns its index.
// The bot joins it once registration with the server is finished.
func (b *Bot) AddChannel(name string) (int, error) {
	if b.dispatching {
		return -1, ErrDispatching
	}
	if !validName(name) {
		return -1, ErrInvalidName
	}
	if b.findChannel(name) >= 0 {
		return -1, ErrDuplicate
	}

	for i := range b.channels {
		if b.channels[i].name == "" {
			b.channels[i] = channelSlot{name: name, state: NotJoined}
			return i, nil
		}
	}

	return -1, ErrRegistryFull
}

// RemoveChannel frees the channel slot at idx. If the bot is in the channel
// it parts it first. All handlers and user watches for the channel are
// dropped.
func (b *Bot) RemoveChannel(idx int) error {
	if b.dispatching {
		return ErrDispatching
	}
	if idx < 0 || idx >= MaxChannels {
		return ErrInvalidIndex
	}

	slot := &b.channels[idx]
	if slot.name == "" {
		return ErrNoSuchChannel
	}

	if slot.state == Joined && b.transport.Connected() {
		b.send("PART " + slot.name)
	}

	b.userJoins.flush(idx)
	b.userParts.flush(idx)

	*slot = channelSlot{}

	return nil
}

// RemoveChannelByName is RemoveChannel for the slot holding name.
func (b *Bot) RemoveChannelByName(name string) error {
	idx := b.findChannel(name)
	if idx < 0 {
		return ErrNoSuchChannel
	}

	return b.RemoveChannel(idx)
}

// Channel returns the slot at idx. The bool is false for a free slot or an
// index out of range.
func (b *Bot) Channel(idx int) (ChannelInfo, bool) {
	if idx < 0 || idx >= MaxChannels || b.channels[idx].name == "" {
		return ChannelInfo{}, false
	}

	return ChannelInfo{
		Name:  b.channels[idx].name,
		State: b.channels[idx].state,
	}, true
}

// ChannelState returns the join state of the named channel.
func (b *Bot) ChannelState(name string) (JoinState, bool) {
	idx := b.findChannel(name)
	if idx < 0 {
		return NotJoined, false
	}

	return b.channels[idx].state, true
}

// AttachOnJoin sets the handler called when the bot has joined channel.
func (b *Bot) AttachOnJoin(channel string, h ChannelHandler) error {
	return b.attachChannelHandler(channel, h, func(s *channelSlot) *ChannelHandler { return &s.onJoin })
}

// DetachOnJoin removes the join handler of channel.
func (b *Bot) DetachOnJoin(channel string) error {
	return b.detachChannelHandler(channel, func(s *channelSlot) *ChannelHandler { return &s.onJoin })
}

// AttachOnPart sets the handler called when the bot has left channel.
func (b *Bot) AttachOnPart(channel string, h ChannelHandler) error {
	return b.attachChannelHandler(channel, h, func(s *channelSlot) *ChannelHandler { return &s.onPart })
}

// DetachOnPart removes the part handler of channel.
func (b *Bot) DetachOnPart(channel string) error {
	return b.detachChannelHandler(channel, func(s *channelSlot) *ChannelHandler { return &s.onPart })
}

func (b *Bot) attachChannelHandler(channel string, h ChannelHandler, field func(*channelSlot) *ChannelHandler) error {
	if b.dispatching {
		return ErrDispatching
	}
	if h == nil {
		return ErrNilHandler
	}

	idx := b.findChannel(channel)
	if idx < 0 {
		return ErrNoSuchChannel
	}

	slot := field(&b.channels[idx])
	if *slot != nil {
		return ErrAlreadyAttached
	}

	*slot = h

	return nil
}

func (b *Bot) detachChannelHandler(channel string, field func(*channelSlot) *ChannelHandler) error {
	if b.dispatching {
		return ErrDispatching
	}

	idx := b.findChannel(channel)
	if idx < 0 {
		return ErrNoSuchChannel
	}

	slot := field(&b.channels[idx])
	if *slot == nil {
		return ErrNotAttached
	}

	*slot = nil

	return nil
}

// joinChannels sends JOIN for every named slot the bot is not in.
func (b *Bot) joinChannels() {
	for i := range b.channels {
		slot := &b.channels[i]
		if slot.name == "" || slot.state != NotJoined {
			continue
		}

		b.logger.Info("ircbot: joining ", slot.name)
		b.send("JOIN " + slot.name)
		slot.state = Joining
	}
}

// resetChannels marks every slot as not joined, after a reconnect.
func (b *Bot) resetChannels() {
	for i := range b.channels {
		b.channels[i].state = NotJoined
	}
}
