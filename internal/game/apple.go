package game

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by RespawnApple when no free cell is left.
// A match reaching it has been won: the snake covers the whole board.
var ErrBoardFull = errors.New("game: no free cell for apple")

// Apple is the single food cell. It is replaced, never moved.
type Apple struct {
	position Point
}

// NewApple places an apple at p.
func NewApple(p Point) Apple {
	return Apple{position: p}
}

// DefaultApple returns the opening apple at three quarters of the width,
// half way up the board.
func DefaultApple(g Grid) Apple {
	return NewApple(Pt(g.Width*3/4, g.Height/2))
}

// Position returns the apple's cell.
func (a Apple) Position() Point {
	return a.position
}

// RespawnApple picks a uniformly random cell of the grid that is not in
// occupied. Cells are scanned column by column (x outer, y inner) and the
// chosen index counts free cells only, so the result is never occupied.
// Occupied points off the board and duplicates are ignored.
func RespawnApple(rng *rand.Rand, occupied []Point, g Grid) (Apple, error) {
	blocked := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		if g.Contains(p) {
			blocked[p] = struct{}{}
		}
	}

	free := g.Cells() - len(blocked)
	if free <= 0 {
		return Apple{}, ErrBoardFull
	}

	i := rng.Intn(free)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			p := Pt(x, y)
			if _, ok := blocked[p]; ok {
				continue
			}
			if i == 0 {
				return Apple{position: p}, nil
			}
			i--
		}
	}

	// Unreachable: free counts exactly the cells the scan visits.
	return Apple{}, ErrBoardFull
}
