package ircbot

import "sort"

// MaxCommands is the capacity of the command registry.
const MaxCommands = 32

// command is a single registered bot command. A nil authorized list means
// anyone may run it.
type command struct {
	name         string
	handler      CommandHandler
	unauthorized CommandHandler
	authorized   []string
}

func (c *command) allows(nick string) bool {
	if c.authorized == nil {
		return true
	}

	for _, n := range c.authorized {
		if n == nick {
			return true
		}
	}

	return false
}

func (b *Bot) findCommand(name string) int {
	for i, c := range b.commands {
		if c != nil && c.name == name {
			return i
		}
	}
	return -1
}

// AttachOnCommand registers h for the command name. Anyone may run it.
func (b *Bot) AttachOnCommand(name string, h CommandHandler) error {
	return b.attachCommand(&command{name: name, handler: h})
}

// AttachOnCommandAuth registers h for the command name, runnable only by the
// listed nicks. An empty list allows nobody.
func (b *Bot) AttachOnCommandAuth(name string, nicks []string, h CommandHandler) error {
	authorized := make([]string, len(nicks))
	copy(authorized, nicks)

	return b.attachCommand(&command{name: name, handler: h, authorized: authorized})
}

func (b *Bot) attachCommand(c *command) error {
	if b.dispatching {
		return ErrDispatching
	}
	if c.handler == nil {
		return ErrNilHandler
	}
	if !validName(c.name) {
		return ErrInvalidName
	}
	if b.findCommand(c.name) >= 0 {
		return ErrDuplicate
	}

	for i := range b.commands {
		if b.commands[i] == nil {
			b.commands[i] = c
			return nil
		}
	}

	return ErrRegistryFull
}

// DetachOnCommand removes the command name along with its unauthorized
// handler.
func (b *Bot) DetachOnCommand(name string) error {
	if b.dispatching {
		return ErrDispatching
	}

	i := b.findCommand(name)
	if i < 0 {
		return ErrNoSuchCommand
	}

	b.commands[i] = nil

	return nil
}

// AttachOnCommandUnauthorized sets the handler called when a nick outside
// the authorized list tries to run name.
func (b *Bot) AttachOnCommandUnauthorized(name string, h CommandHandler) error {
	if b.dispatching {
		return ErrDispatching
	}
	if h == nil {
		return ErrNilHandler
	}

	i := b.findCommand(name)
	if i < 0 {
		return ErrNoSuchCommand
	}
	if b.commands[i].unauthorized != nil {
		return ErrAlreadyAttached
	}

	b.commands[i].unauthorized = h

	return nil
}

// DetachOnCommandUnauthorized removes the unauthorized handler of name.
func (b *Bot) DetachOnCommandUnauthorized(name string) error {
	if b.dispatching {
		return ErrDispatching
	}

	i := b.findCommand(name)
	if i < 0 {
		return ErrNoSuchCommand
	}
	if b.commands[i].unauthorized == nil {
		return ErrNotAttached
	}

	b.commands[i].unauthorized = nil

	return nil
}

// AttachOnUnknownCommand sets the handler for commands nobody registered.
func (b *Bot) AttachOnUnknownCommand(h CommandHandler) error {
	if b.dispatching {
		return ErrDispatching
	}
	if h == nil {
		return ErrNilHandler
	}
	if b.onUnknown != nil {
		return ErrAlreadyAttached
	}

	b.onUnknown = h

	return nil
}

// DetachOnUnknownCommand removes the unknown command handler.
func (b *Bot) DetachOnUnknownCommand() error {
	if b.dispatching {
		return ErrDispatching
	}
	if b.onUnknown == nil {
		return ErrNotAttached
	}

	b.onUnknown = nil

	return nil
}

// Commands returns the names of all registered commands, sorted.
func (b *Bot) Commands() []string {
	var ret []string
	for _, c := range b.commands {
		if c != nil {
			ret = append(ret, c.name)
		}
	}

	sort.Strings(ret)

	return ret
}

// dispatchCommand runs the handler registered for e.Command, checking the
// sender against its authorized list.
func (b *Bot) dispatchCommand(e *CommandEvent) {
	i := b.findCommand(e.Command)
	if i < 0 {
		if b.onUnknown != nil {
			b.logger.Debug("ircbot: unknown command ", e.Command, " from ", e.Nick)
			b.onUnknown.HandleCommand(b, e)
		}
		return
	}

	c := b.commands[i]
	if c.allows(e.Nick) {
		b.logger.Debug("ircbot: running command ", e.Command, " for ", e.Nick)
		c.handler.HandleCommand(b, e)
		return
	}

	b.logger.Info("ircbot: ", e.Nick, " is not authorized for ", e.Command)
	if c.unauthorized != nil {
		c.unauthorized.HandleCommand(b, e)
	}
}
