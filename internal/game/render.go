package game

import (
	"fmt"

	"github.com/vovakirdan/term-snake/internal/core"
)

const (
	hudHeight = 1 // Status line above the board
	cellWidth = 2 // Terminal cells are about twice as tall as wide
)

// Board colors.
const (
	ColorHead  = core.ColorBrightWhite
	ColorBody  = core.ColorGray
	ColorApple = core.ColorGreen
	ColorFrame = core.ColorWhite
)

// RequiredSize returns the smallest screen that fits the board, its frame and
// the status line.
func RequiredSize(g Grid) (w, h int) {
	return g.Width*cellWidth + 2, g.Height + 2 + hudHeight
}

// RenderSnapshot draws a snapshot into dst: status line, framed board with the
// x axis doubled, and an end-of-match overlay. hint is shown under the score
// in the overlay when non-empty.
func RenderSnapshot(dst *core.Screen, s Snapshot, hint string) {
	dst.Clear()

	needW, needH := RequiredSize(s.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH), "")
		return
	}

	renderHUD(dst, s)

	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, s.Grid.Height+2)
	dst.DrawBox(frame, ColorFrame)
	board := frame.Inner()

	// Apple first so a head on the same cell (final tick of a win) stays visible
	if s.State != StateWon {
		drawCell(dst, board, s.Grid, s.Apple, ColorApple)
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		c := ColorBody
		if i == 0 {
			c = ColorHead
		}
		drawCell(dst, board, s.Grid, s.Body[i], c)
	}

	switch s.State {
	case StateQuit:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", s.Score), hint)
	case StateWon:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d", s.Score), hint)
	}
}

// drawCell paints one board cell, flipping Y so that up is up on screen.
func drawCell(dst *core.Screen, board core.Rect, g Grid, p Point, c core.Color) {
	if !g.Contains(p) {
		return
	}
	sx := board.X + p.X*cellWidth
	sy := board.Y + (g.Height - 1 - p.Y)
	for i := range cellWidth {
		dst.SetColored(sx+i, sy, '█', c)
	}
}

// renderHUD draws the status line.
func renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Board: %s", s.Score, s.Len(), s.Grid)
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)
}

// renderOverlay draws a centered box with up to three lines of text.
func renderOverlay(dst *core.Screen, line1, line2, line3 string) {
	lines := []string{line1, line2}
	if line3 != "" {
		lines = append(lines, line3)
	}

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l)
	}
}
