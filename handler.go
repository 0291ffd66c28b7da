package ircbot

import "strings"

// EventHandler is called on connection level events: connect and
// disconnect.
type EventHandler interface {
	HandleEvent(b *Bot)
}

// EventHandlerFunc is used where you only have a function and don't want to
// deal with making a whole struct.
type EventHandlerFunc func(b *Bot)

// HandleEvent allows an EventHandlerFunc to work where an EventHandler needs
// to be passed in.
func (f EventHandlerFunc) HandleEvent(b *Bot) {
	f(b)
}

// ChannelHandler is called when the bot itself joins or parts a channel.
type ChannelHandler interface {
	HandleChannel(b *Bot, channel string)
}

// ChannelHandlerFunc is the function adapter for ChannelHandler.
type ChannelHandlerFunc func(b *Bot, channel string)

// HandleChannel calls f(b, channel).
func (f ChannelHandlerFunc) HandleChannel(b *Bot, channel string) {
	f(b, channel)
}

// UserHandler is called when a watched nick joins or parts a channel.
type UserHandler interface {
	HandleUser(b *Bot, channel, nick string)
}

// UserHandlerFunc is the function adapter for UserHandler.
type UserHandlerFunc func(b *Bot, channel, nick string)

// HandleUser calls f(b, channel, nick).
func (f UserHandlerFunc) HandleUser(b *Bot, channel, nick string) {
	f(b, channel, nick)
}

// CommandEvent describes a single command addressed to the bot with a
// "nick: command args" message.
type CommandEvent struct {
	// Channel is where the command was said.
	Channel string

	// Nick is who said it.
	Nick string

	// Command is the first word of the message.
	Command string

	// Args is the rest of the message after the first space. It is empty if
	// the command stood alone.
	Args string
}

// Fields splits Args on whitespace.
func (e *CommandEvent) Fields() []string {
	return SplitArgs(e.Args)
}

// String returns the event the way it appeared in the channel.
func (e *CommandEvent) String() string {
	return strings.TrimSpace(e.Command + " " + e.Args)
}

// CommandHandler is called for commands addressed to the bot.
type CommandHandler interface {
	HandleCommand(b *Bot, e *CommandEvent)
}

// CommandHandlerFunc is used where you only have a function and don't want
// to deal with making a whole struct.
type CommandHandlerFunc func(b *Bot, e *CommandEvent)

// HandleCommand allows a CommandHandlerFunc to work where a CommandHandler
// needs to be passed in.
func (f CommandHandlerFunc) HandleCommand(b *Bot, e *CommandEvent) {
	f(b, e)
}
