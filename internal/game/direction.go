package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Direction is the snake's facing. The zero value is DirRight.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// opposites maps each direction to the one that would fold the head into the neck.
var opposites = [...]Direction{
	DirRight: DirLeft,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirUp:    DirDown,
}

// deltas is the one-cell translation for each direction, with Y growing upward.
var deltas = [...]Point{
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: -1},
	DirLeft:  {X: -1, Y: 0},
	DirUp:    {X: 0, Y: 1},
}

// Directions returns all four directions in action-space order.
func Directions() []Direction {
	return []Direction{DirUp, DirRight, DirDown, DirLeft}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

// Delta returns the translation for one step in this direction.
func (d Direction) Delta() Point {
	if !d.Valid() {
		return Point{}
	}
	return deltas[d]
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right", "":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("game: unknown direction %q", s)
}

// DirectionFromAction maps a turn intent to a direction.
// The second result is false for non-direction actions.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
