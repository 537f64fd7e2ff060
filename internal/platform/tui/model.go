package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// Pilot steers the snake instead of the keyboard, e.g. a trained agent.
type Pilot interface {
	Next(s game.Snapshot) (game.Direction, bool)
}

// Options configures a match model.
type Options struct {
	Game      game.Options
	FrameRate int // Ticks per second, defaults to core.DefaultConfig().FrameRate
	Pilot     Pilot
	Logger    *log.Logger
	AllowBack bool // Enables the back-to-menu key once the match is over
}

// Model is the Bubble Tea model for one snake match.
type Model struct {
	id         uint64
	game       *game.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	frameRate  int
	pilot      Pilot
	logger     *log.Logger
	allowBack  bool
	ended      bool // Match end has been logged
	quitting   bool
	backToMenu bool
}

// NewModel creates a model over a fresh match.
func NewModel(opts Options) (Model, error) {
	g, err := game.New(opts.Game)
	if err != nil {
		return Model{}, err
	}

	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = core.DefaultConfig().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := game.RequiredSize(g.Grid())
	m := Model{
		id:        nextMatchID(),
		game:      g,
		screen:    core.NewScreen(w, h),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		frameRate: frameRate,
		pilot:     opts.Pilot,
		logger:    logger,
		allowBack: opts.AllowBack,
	}
	m.logStart()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frameRate, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// One line is kept for the help footer
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Match != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys only record an intent,
// so the last one before the next tick wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.game.Quit()
		m.logEnd()
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if !m.game.Running() {
			m.game.Reset()
			m.ended = false
			m.logStart()
		}

	case core.ActionBack:
		if m.allowBack && !m.game.Running() {
			m.backToMenu = true
		}

	default:
		if d, ok := game.DirectionFromAction(action); ok && m.pilot == nil {
			m.game.Turn(d)
		}
	}

	return m, nil
}

// handleTick advances the match. Ticks keep flowing after the match ends so
// that a restart resumes without a new command.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Running() {
		if m.pilot != nil {
			if d, ok := m.pilot.Next(m.game.Snapshot()); ok {
				m.game.Turn(d)
			}
		}
		m.game.Tick()
		if !m.game.Running() {
			m.logEnd()
		}
	}
	return m, tickCmd(m.frameRate, m.id)
}

func (m *Model) logStart() {
	opts := m.game.Options()
	m.logger.Info("match started", "grid", opts.Grid, "seed", opts.Seed, "autopilot", m.pilot != nil)
}

func (m *Model) logEnd() {
	if m.ended {
		return
	}
	m.ended = true
	m.logger.Info("match ended",
		"reason", m.game.Reason(),
		"score", m.game.Score(),
		"ticks", m.game.Ticks())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.RenderSnapshot(m.screen, m.game.Snapshot(), m.overlayHint())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) overlayHint() string {
	if m.allowBack {
		return "r: restart  b: menu"
	}
	return "r: restart  q: quit"
}

// Snapshot returns the current match snapshot.
func (m Model) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one match in the terminal and returns its final snapshot.
// Cancelling ctx ends the program without an error.
func Run(ctx context.Context, opts Options) (game.Snapshot, error) {
	model, err := NewModel(opts)
	if err != nil {
		return game.Snapshot{}, err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return model.Snapshot(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Snapshot(), nil
	}
	return model.Snapshot(), nil
}
