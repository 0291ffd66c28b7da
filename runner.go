package ircbot

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
	tomb "gopkg.in/tomb.v2"
)

// ErrRunnerStopped is returned by Runner.Do when the runner is not running.
var ErrRunnerStopped = errors.New("ircbot: runner stopped")

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Runner drives a Bot from its own goroutine. The bot is only ever touched
// from that goroutine; use Do to run code against it between polls.
type Runner struct {
	bot     *Bot
	limiter *rate.Limiter
	actions chan func(*Bot)
	t       *tomb.Tomb
}

// NewRunner creates a Runner polling b every interval. A zero interval uses
// DefaultPollInterval.
func NewRunner(b *Bot, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Runner{
		bot:     b,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		actions: make(chan func(*Bot), 16),
	}
}

// Start calls Begin on the bot and keeps polling it until ctx is done or
// Stop is called.
func (r *Runner) Start(ctx context.Context) {
	var loopCtx context.Context
	r.t, loopCtx = tomb.WithContext(ctx)
	r.t.Go(func() error {
		return r.loop(loopCtx)
	})
}

// Stop ends the bot and waits for the runner goroutine to exit.
func (r *Runner) Stop() error {
	if r.t == nil {
		return nil
	}

	r.t.Kill(nil)
	err := r.t.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// Dying is closed once the runner starts shutting down. It is already
// closed if the runner was never started.
func (r *Runner) Dying() <-chan struct{} {
	if r.t == nil {
		return closedChan
	}
	return r.t.Dying()
}

// Do queues f to run on the runner goroutine before the next poll. It must
// not be called from a bot handler when the queue may be full.
func (r *Runner) Do(f func(*Bot)) error {
	if r.t == nil {
		return ErrRunnerStopped
	}

	select {
	case <-r.t.Dying():
		return ErrRunnerStopped
	default:
	}

	select {
	case r.actions <- f:
		return nil
	case <-r.t.Dying():
		return ErrRunnerStopped
	}
}

func (r *Runner) loop(ctx context.Context) error {
	r.bot.Begin()
	defer r.bot.End()

	for {
		// Wait only fails once ctx is done.
		if err := r.limiter.Wait(ctx); err != nil {
			return ctx.Err()
		}

		r.runActions()
		r.bot.Poll()
	}
}

func (r *Runner) runActions() {
	for {
		select {
		case f := <-r.actions:
			f(r.bot)
		default:
			return
		}
	}
}
