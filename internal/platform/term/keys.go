package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
)

// keyAction maps a tcell key event to a game action.
// Unbound keys map to ActionNone.
func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'q':
			return core.ActionQuit
		case 'r':
			return core.ActionRestart
		}
	}
	return core.ActionNone
}
