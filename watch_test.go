package ircbot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWatches(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBot(t, Config{Channels: []string{"#a", "#b"}})
	h := UserHandlerFunc(func(*Bot, string, string) {})

	assert.Equal(t, ErrNoSuchChannel, b.AttachOnUserJoin("#nope", "nick", h))
	assert.Equal(t, ErrInvalidName, b.AttachOnUserJoin("#a", "", h))
	assert.Equal(t, ErrInvalidName, b.AttachOnUserPart("#a", strings.Repeat("n", MaxNickLen+1), h))

	assert.NoError(t, b.AttachOnUserJoin("#a", "nick", h))
	assert.Equal(t, ErrDuplicate, b.AttachOnUserJoin("#a", "nick", h))

	// The same pair may be in the other list, or on another channel.
	assert.NoError(t, b.AttachOnUserPart("#a", "nick", h))
	assert.NoError(t, b.AttachOnUserJoin("#b", "nick", h))

	joins, parts := b.UserWatches()
	assert.Equal(t, 2, joins)
	assert.Equal(t, 1, parts)

	assert.NoError(t, b.DetachOnUserJoin("#a", "nick"))
	assert.Equal(t, ErrNoSuchWatch, b.DetachOnUserJoin("#a", "nick"))
	assert.Equal(t, ErrNoSuchWatch, b.DetachOnUserPart("#b", "nick"))
	assert.Equal(t, ErrNoSuchChannel, b.DetachOnUserPart("#nope", "nick"))

	n, err := b.FlushUserWatches("#a")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = b.FlushUserWatches("#nope")
	assert.Equal(t, ErrNoSuchChannel, err)

	joins, parts = b.UserWatches()
	assert.Equal(t, 1, joins)
	assert.Equal(t, 0, parts)
}

func TestUserWatchesFull(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBot(t, Config{Channels: []string{"#a"}})
	h := UserHandlerFunc(func(*Bot, string, string) {})

	for i := 0; i < MaxUserWatches; i++ {
		require.NoError(t, b.AttachOnUserJoin("#a", fmt.Sprintf("nick%d", i), h))
	}

	assert.Equal(t, ErrRegistryFull, b.AttachOnUserJoin("#a", "onemore", h))

	// The part list has its own space.
	assert.NoError(t, b.AttachOnUserPart("#a", "onemore", h))

	require.NoError(t, b.DetachOnUserJoin("#a", "nick10"))
	assert.NoError(t, b.AttachOnUserJoin("#a", "onemore", h))
}

func TestWatchListEach(t *testing.T) {
	t.Parallel()

	var l watchList
	var hits []string
	handler := func(name string) UserHandler {
		return UserHandlerFunc(func(*Bot, string, string) {
			hits = append(hits, name)
		})
	}

	require.NoError(t, l.attach(0, "a", handler("0a")))
	require.NoError(t, l.attach(1, "a", handler("1a")))
	require.NoError(t, l.attach(0, "b", handler("0b")))

	l.each(0, "a", func(h UserHandler) { h.HandleUser(nil, "", "") })
	assert.Equal(t, []string{"0a"}, hits)

	assert.Equal(t, 2, l.flush(0))
	assert.Equal(t, 1, l.len())
}
