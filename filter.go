package ircbot

// Filter is a simple interface meant for filtering outgoing lines on a Bot.
type Filter interface {
	// Filter is called with the bot and the line being sent, without its
	// line ending. If the function returns true, the line will not be sent.
	Filter(b *Bot, line string) bool
}

// FilterFunc is a simple wrapper around a function which allows it to be
// used as a Filter.
type FilterFunc func(b *Bot, line string) bool

// Filter returns f(b, line)
func (f FilterFunc) Filter(b *Bot, line string) bool {
	return f(b, line)
}
