package game

// Snapshot is a read-only copy of a match, taken between ticks. Renderers and
// tests consume snapshots so that drawing can never mutate the game.
type Snapshot struct {
	Tick      uint64
	Grid      Grid
	Body      []Point // Head first
	Direction Direction
	Apple     Point
	State     State
	Reason    EndReason
	Score     int
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.ticks,
		Grid:      g.opts.Grid,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Apple:     g.apple.Position(),
		State:     g.state,
		Reason:    g.reason,
		Score:     g.Score(),
	}
}

// Head returns the first body segment.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// Len returns the body length.
func (s Snapshot) Len() int {
	return len(s.Body)
}

// Running reports whether the match was running when the snapshot was taken.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

// Observation returns the agent view of the snapshot.
func (s Snapshot) Observation() Observation {
	head := s.Head()
	return Observation{float64(s.Apple.X), float64(s.Apple.Y), float64(head.X), float64(head.Y)}
}
