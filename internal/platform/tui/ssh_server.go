package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/term-snake/internal/config"
)

// SSHServer serves single-player snake over SSH. Every session gets its own
// menu and matches; nothing is shared between sessions.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.Server.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.Server.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	logger := s.logger.With("user", sess.User())
	model := NewSessionModel(s.config, pty.Window.Width, pty.Window.Height, logger)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is done or the
// server fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}

// SessionModel manages one session's flow: menu -> match -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config   config.Config
	logger   *log.Logger
	width    int
	height   int
	arena    string // Last picked arena, preselected when returning to the menu
	menu     MenuModel
	match    *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg config.Config, width, height int, logger *log.Logger) SessionModel {
	return SessionModel{
		config: cfg,
		logger: logger,
		width:  width,
		height: height,
		arena:  cfg.Arena,
		menu:   NewMenuModel(width, height, cfg.Arena),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.match != nil {
		return m.updateMatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == "" {
		return m, cmd
	}

	// The menu's own quit command is dropped: the session keeps running
	match, err := m.newMatch(selected)
	if err != nil {
		m.logger.Error("cannot start match", "arena", selected, "error", err)
		m.menu = NewMenuModel(m.width, m.height, m.arena)
		return m, nil
	}
	m.arena = selected
	m.match = &match
	return m, m.match.Init()
}

func (m SessionModel) newMatch(arenaID string) (Model, error) {
	opts, err := m.config.GameOptions(arenaID)
	if err != nil {
		return Model{}, err
	}

	match, err := NewModel(Options{
		Game:      opts,
		FrameRate: m.config.Loop.FrameRate,
		Logger:    m.logger.With("arena", arenaID),
		AllowBack: true,
	})
	if err != nil {
		return Model{}, err
	}

	sized, _ := match.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return sized.(Model), nil
}

// updateMatch handles updates when in match mode.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.match.Update(msg)
	if match, ok := newModel.(Model); ok {
		m.match = &match
	}

	if m.match.BackToMenu() {
		m.match = nil
		m.menu = NewMenuModel(m.width, m.height, m.arena)
		return m, m.menu.Init()
	}

	if m.match.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.match != nil {
		return m.match.View()
	}
	return m.menu.View()
}
