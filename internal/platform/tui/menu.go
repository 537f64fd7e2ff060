package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/registry"
)

// MenuKeyMap defines the key bindings for the arena picker.
// Cursor movement is handled by the table's own key map.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the arena picker.
type MenuModel struct {
	arenas   []registry.Arena
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected string // Arena ID, set when user selects
}

// NewMenuModel creates a menu listing every registered arena.
// The cursor starts on initialID when it is registered.
func NewMenuModel(width, height int, initialID string) MenuModel {
	arenas := registry.List()

	rows := make([]table.Row, 0, len(arenas))
	cursor := 0
	for i, a := range arenas {
		rows = append(rows, table.Row{a.ID, a.Title, fmt.Sprintf("%dx%d", a.Width, a.Height)})
		if a.ID == initialID {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Arena", Width: 10},
			{Title: "Name", Width: 16},
			{Title: "Board", Width: 7},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	t.SetCursor(cursor)

	return MenuModel{
		arenas: arenas,
		table:  t,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.arenas) > 0 {
				m.selected = m.arenas[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Pick an arena"), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen arena ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ArenaID string
	Quit    bool
}

// RunMenu runs the arena picker and returns the selection.
func RunMenu(ctx context.Context, initialID string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(0, 0, initialID), tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return MenuResult{Quit: true}, nil
	}
	if err != nil {
		return MenuResult{}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == "" {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{ArenaID: m.Selected()}, nil
}
