package main

import (
	"strings"
	"sync"

	"github.com/spirilis/ircbot"
)

// reply answers the sender of e in the channel the command came from.
func reply(b *ircbot.Bot, e *ircbot.CommandEvent, msg string) {
	b.SendPrivmsg(e.Channel, e.Nick, msg)
}

// registerCommands attaches the built-in commands. quit is called once when
// an admin asks the bot to leave.
func registerCommands(b *ircbot.Bot, admins []string, quit func()) error {
	var once sync.Once

	denied := ircbot.CommandHandlerFunc(func(b *ircbot.Bot, e *ircbot.CommandEvent) {
		reply(b, e, "you are not allowed to do that")
	})

	handlers := []struct {
		name    string
		admin   bool
		handler ircbot.CommandHandlerFunc
	}{
		{"ping", false, func(b *ircbot.Bot, e *ircbot.CommandEvent) {
			reply(b, e, "pong")
		}},
		{"version", false, func(b *ircbot.Bot, e *ircbot.CommandEvent) {
			reply(b, e, "ircbot "+ircbot.Version)
		}},
		{"help", false, func(b *ircbot.Bot, e *ircbot.CommandEvent) {
			reply(b, e, "commands: "+strings.Join(b.Commands(), ", "))
		}},
		{"say", true, func(b *ircbot.Bot, e *ircbot.CommandEvent) {
			channel, msg, _ := strings.Cut(strings.TrimSpace(e.Args), " ")
			msg = strings.TrimSpace(msg)
			if channel == "" || msg == "" {
				reply(b, e, "usage: say <channel> <message>")
				return
			}

			if err := b.SendPrivmsg(channel, "", msg); err != nil {
				reply(b, e, err.Error())
			}
		}},
		{"quit", true, func(b *ircbot.Bot, e *ircbot.CommandEvent) {
			b.End()
			once.Do(quit)
		}},
	}

	for _, h := range handlers {
		var err error
		if h.admin {
			err = b.AttachOnCommandAuth(h.name, admins, h.handler)
			if err == nil {
				err = b.AttachOnCommandUnauthorized(h.name, denied)
			}
		} else {
			err = b.AttachOnCommand(h.name, h.handler)
		}

		if err != nil {
			return err
		}
	}

	return b.AttachOnUnknownCommand(ircbot.CommandHandlerFunc(func(b *ircbot.Bot, e *ircbot.CommandEvent) {
		reply(b, e, "unknown command "+e.Command+", try help")
	}))
}
