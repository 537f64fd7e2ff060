// Package term is a raw terminal frontend built on tcell. It implements the
// frame loop's poller and renderer over a single tcell screen.
package term

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// ErrClosed is returned by Poll once the terminal has been closed.
var ErrClosed = errors.New("term: terminal closed")

// Terminal owns a tcell screen for the lifetime of a run. Events are read by
// a background goroutine so that Poll can wait with a timeout.
type Terminal struct {
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{}
	buf       *core.Screen
	hint      string // Shown under the score once the match is over
	closeOnce sync.Once
}

// Open switches the terminal to raw mode. The caller must Close it.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return newTerminal(screen), nil
}

// newTerminal wraps an initialized screen.
func newTerminal(screen tcell.Screen) *Terminal {
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
		buf:    core.NewScreen(screen.Size()),
	}
	go t.pollEvents()
	return t
}

// pollEvents forwards screen events until the screen is finalized.
func (t *Terminal) pollEvents() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Poll waits up to timeout for a key press. Resize events are handled here
// and do not count as input.
func (t *Terminal) Poll(timeout time.Duration) (core.Action, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return core.ActionNone, false, ErrClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return keyAction(ev), true, nil
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return core.ActionNone, false, nil
		}
	}
}

// Draw renders a snapshot at the current terminal size.
func (t *Terminal) Draw(s game.Snapshot) error {
	w, h := t.screen.Size()
	t.buf.Resize(w, h)
	game.RenderSnapshot(t.buf, s, t.hint)
	blit(t.screen, t.buf)
	return nil
}

// WaitKey blocks until a key is pressed and returns its action. It returns
// ActionNone when the terminal closes or done is closed.
func (t *Terminal) WaitKey(done <-chan struct{}) core.Action {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return core.ActionNone
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				return keyAction(key)
			}
		case <-done:
			return core.ActionNone
		}
	}
}
