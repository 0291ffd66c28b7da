package ircbot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitState asks the runner goroutine for the bot state until it matches.
func waitState(t *testing.T, r *Runner, want ConnState) {
	t.Helper()

	states := make(chan ConnState, 1)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		require.NoError(t, r.Do(func(b *Bot) { states <- b.State() }))
		if <-states == want {
			return
		}
	}

	t.Fatalf("bot never reached %s", want)
}

func TestRunner(t *testing.T) {
	t.Parallel()

	b, tr, _ := newTestBot(t, Config{})

	r := NewRunner(b, time.Millisecond)
	assert.Equal(t, ErrRunnerStopped, r.Do(func(*Bot) {}))

	r.Start(context.Background())
	waitState(t, r, Connected)

	require.NoError(t, r.Stop())
	assert.False(t, b.Enabled())
	assert.Equal(t, 1, tr.connects)
	assert.True(t, strings.HasSuffix(tr.client.String(), "QUIT :Bot quitting\r\n"))

	assert.Equal(t, ErrRunnerStopped, r.Do(func(*Bot) {}))
}

func TestRunnerContext(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBot(t, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(b, 0)
	r.Start(ctx)
	waitState(t, r, Connected)

	cancel()
	<-r.Dying()

	assert.NoError(t, r.Stop())
	assert.False(t, b.Enabled())
}

func TestRunnerStopBeforeStart(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBot(t, Config{})
	r := NewRunner(b, time.Millisecond)

	select {
	case <-r.Dying():
	default:
		t.Fatal("Dying should be closed before Start")
	}

	assert.Equal(t, ErrRunnerStopped, r.Do(func(*Bot) {}))
	assert.NoError(t, r.Stop())
}
