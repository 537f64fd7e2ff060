// Package tui provides the Bubble Tea frontend for snake: the match model,
// the arena picker and the SSH server that serves both per session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// It carries the ID of the model that scheduled it so that a stale tick
// chain from a previous match in the same program is dropped.
type TickMsg struct {
	At    time.Time
	Match uint64
}

var matchSeq atomic.Uint64

// nextMatchID returns a program-wide unique model ID.
func nextMatchID() uint64 {
	return matchSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(frameRate int, match uint64) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Match: match}
	})
}
