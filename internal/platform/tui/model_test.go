package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/game"
)

type fixedPilot struct {
	dir game.Direction
}

func (p fixedPilot) Next(s game.Snapshot) (game.Direction, bool) {
	return p.dir, s.Running()
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Game.Grid.Width == 0 {
		opts.Game = game.DefaultOptions(game.Grid{Width: 17, Height: 15})
		opts.Game.Seed = 1
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{Match: m.id})
	return m
}

func TestModelTurnAppliesOnTick(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if head := m.Snapshot().Head(); head != game.Pt(3, 7) {
		t.Fatalf("key press moved the snake to %v before a tick", head)
	}

	m = tick(t, m)
	if head := m.Snapshot().Head(); head != game.Pt(3, 8) {
		t.Errorf("head = %v, expected (3,8)", head)
	}
}

func TestModelLastKeyWins(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)

	if head := m.Snapshot().Head(); head != game.Pt(3, 6) {
		t.Errorf("head = %v, expected (3,6)", head)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, TickMsg{Match: m.id + 1000})

	if m.Snapshot().Tick != 0 {
		t.Errorf("stale tick advanced the match to tick %d", m.Snapshot().Tick)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := send(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("IsQuitting() should be true")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.Snapshot().Reason != game.ReasonQuit {
		t.Errorf("Reason = %q, expected quit", m.Snapshot().Reason)
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, Options{})

	// Restart is ignored while running
	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)
	if m.Snapshot().Tick != 1 {
		t.Fatalf("Tick = %d, expected 1", m.Snapshot().Tick)
	}

	for i := 0; i < 100 && m.Snapshot().Running(); i++ {
		m = tick(t, m)
	}
	if m.Snapshot().Reason != game.ReasonWall {
		t.Fatalf("Reason = %q, expected wall", m.Snapshot().Reason)
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("View() should show the game over overlay")
	}

	m, _ = send(t, m, runeKey('r'))
	s := m.Snapshot()
	if !s.Running() || s.Tick != 0 || s.Head() != game.Pt(3, 7) {
		t.Errorf("after restart: running=%v tick=%d head=%v", s.Running(), s.Tick, s.Head())
	}
}

func TestModelBackToMenu(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		ended     bool
		expected  bool
	}{
		{"allowed after game over", true, true, true},
		{"ignored while running", true, false, false},
		{"disabled", false, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, Options{AllowBack: tc.allowBack})
			if tc.ended {
				m.game.Quit()
			}
			m, _ = send(t, m, runeKey('b'))
			if m.BackToMenu() != tc.expected {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tc.expected)
			}
		})
	}
}

func TestModelPilotOverridesKeys(t *testing.T) {
	m := newTestModel(t, Options{Pilot: fixedPilot{dir: game.DirUp}})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)

	if head := m.Snapshot().Head(); head != game.Pt(3, 8) {
		t.Errorf("head = %v, expected pilot to steer up to (3,8)", head)
	}
}

func TestModelViewAndHelp(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View() missing the status line")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() missing the help footer")
	}

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}
