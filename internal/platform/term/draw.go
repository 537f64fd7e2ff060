package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
)

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func styleFor(c core.Color) tcell.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return tcell.StyleDefault
}

// blit copies the buffer to the tcell back buffer and shows it.
func blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	dst.Show()
}
