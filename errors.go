package ircbot

import "errors"

// Errors returned by the registries and send operations. A call that fails
// never leaves partial state behind.
var (
	// ErrRegistryFull is returned when every slot of a registry is taken.
	ErrRegistryFull = errors.New("ircbot: registry full")

	// ErrDuplicate is returned when an entry with the same key exists.
	ErrDuplicate = errors.New("ircbot: already registered")

	// ErrInvalidName is returned for empty or over-long names.
	ErrInvalidName = errors.New("ircbot: invalid name")

	// ErrInvalidIndex is returned for a channel index outside the registry.
	ErrInvalidIndex = errors.New("ircbot: invalid channel index")

	// ErrNoSuchChannel is returned when a channel is not in the registry.
	ErrNoSuchChannel = errors.New("ircbot: no such channel")

	// ErrNoSuchCommand is returned when a command is not registered.
	ErrNoSuchCommand = errors.New("ircbot: no such command")

	// ErrNoSuchWatch is returned when a user watch is not registered.
	ErrNoSuchWatch = errors.New("ircbot: no such user watch")

	// ErrAlreadyAttached is returned when a single handler slot is taken.
	ErrAlreadyAttached = errors.New("ircbot: handler already attached")

	// ErrNilHandler is returned when attaching a nil handler.
	ErrNilHandler = errors.New("ircbot: nil handler")

	// ErrNotAttached is returned when detaching from an empty handler slot.
	ErrNotAttached = errors.New("ircbot: no handler attached")

	// ErrDispatching is returned when a registry is changed from a handler
	// while the bot is dispatching incoming lines.
	ErrDispatching = errors.New("ircbot: registry changed during dispatch")

	// ErrNotRegistered is returned when sending before registration with the
	// server has finished.
	ErrNotRegistered = errors.New("ircbot: not registered with server")

	// ErrNotJoined is returned when sending to a channel the bot is not in.
	ErrNotJoined = errors.New("ircbot: channel not joined")
)

// validName reports whether s can be stored in a bounded name field.
func validName(s string) bool {
	return s != "" && len(s) <= MaxNameLen
}
