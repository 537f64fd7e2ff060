// Package game implements the Snake match: the snake body and its movement
// rules, apple placement and the per-tick state machine. It is UI-agnostic and
// deterministic for a given seed; frontends read it through Snapshot.
package game

import "fmt"

// Point is a cell on the board. X grows to the right and Y grows upward,
// so (0, 0) is the bottom-left cell. Frontends flip rows when drawing.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid holds the board dimensions. Cells span [0, Width) x [0, Height).
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// String returns the grid size as "WxH".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
