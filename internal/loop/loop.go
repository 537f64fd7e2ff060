// Package loop drives a match at a fixed frame rate: draw, wait for input for
// the rest of the frame, then advance the game by one tick.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// Poller waits up to timeout for a single input action.
// ok is false when the timeout expired without input.
type Poller interface {
	Poll(timeout time.Duration) (action core.Action, ok bool, err error)
}

// Renderer presents a snapshot of the match.
type Renderer interface {
	Draw(s game.Snapshot) error
}

// Loop owns the frame cadence for one match.
type Loop struct {
	game     *game.Game
	poller   Poller
	renderer Renderer
	frame    time.Duration
	now      func() time.Time
	logger   *log.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithFrameRate sets the number of ticks per second. Non-positive values are ignored.
func WithFrameRate(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.frame = time.Second / time.Duration(fps)
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

// WithLogger sets the logger used for match events.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loop for g reading from p and drawing to r.
func New(g *game.Game, p Poller, r Renderer, opts ...Option) *Loop {
	l := &Loop{
		game:     g,
		poller:   p,
		renderer: r,
		frame:    time.Second / time.Duration(core.DefaultConfig().FrameRate),
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Frame returns the duration of one frame.
func (l *Loop) Frame() time.Duration {
	return l.frame
}

// Run plays frames until the match leaves the running state, the user quits
// or ctx is cancelled. The final state is drawn once more before returning.
// Errors come only from the poller or renderer.
func (l *Loop) Run(ctx context.Context) error {
	g := l.game

	for g.Running() {
		if ctx.Err() != nil {
			g.Quit()
			break
		}

		if err := l.renderer.Draw(g.Snapshot()); err != nil {
			return fmt.Errorf("loop: draw: %w", err)
		}

		quit, err := l.pollFrame()
		if err != nil {
			return err
		}
		if quit {
			g.Quit()
			break
		}

		if out := g.Tick(); !g.Running() {
			l.logger.Info("match ended",
				"outcome", out,
				"reason", g.Reason(),
				"score", g.Score(),
				"ticks", g.Ticks())
		}
	}

	if err := l.renderer.Draw(g.Snapshot()); err != nil {
		return fmt.Errorf("loop: draw: %w", err)
	}
	return nil
}

// pollFrame consumes input until the frame budget is spent. The budget is
// measured from the frame start, so early events never extend the frame.
// The last direction wins; a quit action ends polling at once.
func (l *Loop) pollFrame() (quit bool, err error) {
	start := l.now()
	for {
		remaining := l.frame - l.now().Sub(start)
		if remaining <= 0 {
			return false, nil
		}

		action, ok, err := l.poller.Poll(remaining)
		if err != nil {
			return false, fmt.Errorf("loop: poll: %w", err)
		}
		if !ok {
			return false, nil
		}

		if action == core.ActionQuit {
			l.logger.Debug("quit requested")
			return true, nil
		}
		if !action.IsDirection() {
			l.logger.Debug("input ignored", "action", action)
			continue
		}
		d, _ := game.DirectionFromAction(action)
		l.game.Turn(d)
	}
}
