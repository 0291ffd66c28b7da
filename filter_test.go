package ircbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFunc(t *testing.T) {
	t.Parallel()

	hit := false
	var f FilterFunc = func(b *Bot, line string) bool {
		hit = true
		return true
	}

	assert.True(t, f.Filter(nil, "PRIVMSG #chan :hi"))
	assert.True(t, hit)
}

func TestBotFilters(t *testing.T) {
	t.Parallel()

	b, tr, _ := newTestBot(t, Config{Channels: []string{"#chan"}})
	registerTestBot(t, b, tr)
	joinTestChannels(t, b, tr)

	var seen []string
	b.AddFilter(FilterFunc(func(b *Bot, line string) bool {
		seen = append(seen, line)
		return strings.Contains(line, "secret")
	}))

	assert.NoError(t, b.SendPrivmsg("#chan", "", "public"))
	assert.NoError(t, b.SendPrivmsg("#chan", "", "secret"))

	testLines(t, tr, []string{
		"PRIVMSG #chan :public",
	})
	assert.Equal(t, []string{
		"PRIVMSG #chan :public",
		"PRIVMSG #chan :secret",
	}, seen)
}
