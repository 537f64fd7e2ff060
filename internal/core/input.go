package core

// Action represents a semantic input intent, abstracted from physical key presses.
// Frontends translate their key events into actions; the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, w, k
	ActionDown           // Down arrow, s, j
	ActionLeft           // Left arrow, a, h
	ActionRight          // Right arrow, d, l
	ActionBack           // b - back to menu after game over
	ActionRestart        // r - start a new match after game over
	ActionQuit           // q, Esc, Ctrl+C - leave immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four turn intents.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
