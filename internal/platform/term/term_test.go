package term

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() failed: %v", err)
	}
	screen.SetSize(w, h)

	term := newTerminal(screen)
	t.Cleanup(term.Close)
	return term, screen
}

func newGame(t *testing.T, head game.Point) *game.Game {
	t.Helper()
	opts := game.DefaultOptions(game.Grid{Width: 17, Height: 15})
	opts.Head = head
	opts.Seed = 1
	g, err := game.New(opts)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return g
}

func screenText(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteRune('\n')
		}
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionUp},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"enter is unbound", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionNone},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyAction(tc.ev); got != tc.expected {
				t.Errorf("keyAction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPollTimeout(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 25)

	start := time.Now()
	_, ok, err := term.Poll(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Poll() failed: %v", err)
	}
	if ok {
		t.Error("Poll() reported input without a key press")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Poll() returned before the timeout")
	}
}

func TestPollKey(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 25)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	action, ok, err := term.Poll(time.Second)
	if err != nil {
		t.Fatalf("Poll() failed: %v", err)
	}
	if !ok || action != core.ActionUp {
		t.Errorf("Poll() = %v, %v; expected up, true", action, ok)
	}
}

func TestPollAfterClose(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 25)
	term.Close()
	term.Close()

	if _, _, err := term.Poll(time.Second); !errors.Is(err, ErrClosed) {
		t.Errorf("Poll() error = %v, expected ErrClosed", err)
	}
}

func TestDraw(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 25)
	g := newGame(t, game.Pt(3, 7))

	if err := term.Draw(g.Snapshot()); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	// Board frame is centered: interior starts at x=23, y=2
	cells, w, _ := screen.GetContents()
	head := cells[9*w+23+3*2]
	if len(head.Runes) == 0 || head.Runes[0] != '█' {
		t.Fatalf("head cell = %+v, expected a block", head)
	}
	if head.Style != styleFor(game.ColorHead) {
		t.Errorf("head style = %v, expected head color", head.Style)
	}
	if !strings.Contains(screenText(screen), "Score: 0") {
		t.Error("status line missing")
	}
}

func TestPlayQuitReturnsImmediately(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 25)
	g := newGame(t, game.Pt(3, 7))
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := play(context.Background(), term, g, 10, log.New(io.Discard)); err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if g.Reason() != game.ReasonQuit {
		t.Errorf("Reason() = %q, expected quit", g.Reason())
	}
}

func TestPlayWaitsAfterGameOver(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 25)
	g := newGame(t, game.Pt(16, 7))

	errCh := make(chan error, 1)
	go func() {
		errCh <- play(context.Background(), term, g, 100, log.New(io.Discard))
	}()

	select {
	case err := <-errCh:
		t.Fatalf("play() returned before a key press: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("play() failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("play() did not return after a key press")
	}

	if g.Reason() != game.ReasonWall {
		t.Errorf("Reason() = %q, expected wall", g.Reason())
	}
	text := screenText(screen)
	if !strings.Contains(text, "Game Over") || !strings.Contains(text, restartHint) {
		t.Error("final screen should show the game over overlay with a hint")
	}
}

func TestPlayRestartsAfterGameOver(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 25)
	g := newGame(t, game.Pt(16, 7))

	var logs bytes.Buffer
	errCh := make(chan error, 1)
	go func() {
		errCh <- play(context.Background(), term, g, 100, log.New(&logs))
	}()

	// First match hits the wall on its first tick
	time.Sleep(200 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)

	select {
	case err := <-errCh:
		t.Fatalf("play() returned after r: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("play() failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("play() did not return after a key press")
	}

	if n := strings.Count(logs.String(), "match restarted"); n != 1 {
		t.Errorf("logged %d restarts, expected 1", n)
	}
	if g.Reason() != game.ReasonWall || g.Ticks() != 1 {
		t.Errorf("second match: reason %q after %d ticks, expected wall after 1", g.Reason(), g.Ticks())
	}
}

func TestPlayContextCancelled(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 25)
	g := newGame(t, game.Pt(3, 7))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := play(ctx, term, g, 10, log.New(io.Discard)); err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if g.Reason() != game.ReasonQuit {
		t.Errorf("Reason() = %q, expected quit", g.Reason())
	}
}
