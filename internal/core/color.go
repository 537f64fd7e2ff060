package core

// Color represents a foreground color for a screen cell.
// Frontends map these to ANSI codes (lipgloss) or tcell colors.
type Color uint8

// Palette used by the snake board and its overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightWhite:
		return "bright-white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
