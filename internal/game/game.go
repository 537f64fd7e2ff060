package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// State is the match lifecycle. Running is the only non-terminal state.
type State int

const (
	StateRunning State = iota
	StateQuit
	StateWon
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// EndReason explains why a match left the running state.
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonWall      EndReason = "wall"
	ReasonSelf      EndReason = "self"
	ReasonQuit      EndReason = "quit"
	ReasonBoardFull EndReason = "board_full"
)

// Outcome reports what a single Tick did.
type Outcome int

const (
	OutcomeIdle  Outcome = iota // Match already over, nothing happened
	OutcomeMoved                // Snake advanced one cell
	OutcomeAte                  // Snake advanced onto the apple and will grow
	OutcomeWall                 // Next cell was off the board
	OutcomeSelf                 // Snake ran into its own body
	OutcomeWon                  // Apple eaten and no free cell left
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a match. Zero fields are filled from DefaultOptions.
type Options struct {
	Grid       Grid
	Head       Point
	TailLength int
	Direction  Direction
	Seed       int64
}

// DefaultOptions returns the classic opening for a board: head at (3, H/2),
// two tail segments, facing right.
func DefaultOptions(g Grid) Options {
	return Options{
		Grid:       g,
		Head:       Pt(3, g.Height/2),
		TailLength: 2,
		Direction:  DirRight,
	}
}

// Validate checks that the opening snake fits on the board.
func (o Options) Validate() error {
	if o.Grid.Width <= 0 || o.Grid.Height <= 0 {
		return fmt.Errorf("game: invalid grid %s", o.Grid)
	}
	if o.TailLength < 0 {
		return fmt.Errorf("game: negative tail length %d", o.TailLength)
	}
	if !o.Direction.Valid() {
		return fmt.Errorf("game: invalid direction %d", o.Direction)
	}
	for _, p := range NewSnake(o.Head, o.TailLength, o.Direction).body {
		if !o.Grid.Contains(p) {
			return fmt.Errorf("game: opening snake segment %s is outside grid %s", p, o.Grid)
		}
	}
	return nil
}

// Game is one Snake match. It exclusively owns its Snake and Apple and is not
// safe for concurrent use; a single driver calls Turn, Quit and Tick.
type Game struct {
	opts    Options
	rng     *rand.Rand
	snake   *Snake
	apple   Apple
	pending Direction // Latest turn intent, applied on the next tick
	state   State
	reason  EndReason
	ticks   uint64
}

// New creates a match ready to run.
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restarts the match with the same options. The RNG keeps its sequence,
// so successive matches get different apples.
func (g *Game) Reset() {
	// Options were validated in New and a fresh board always has room.
	_ = g.reset()
}

func (g *Game) reset() error {
	g.snake = NewSnake(g.opts.Head, g.opts.TailLength, g.opts.Direction)
	g.pending = g.opts.Direction
	g.state = StateRunning
	g.reason = ReasonNone
	g.ticks = 0

	g.apple = DefaultApple(g.opts.Grid)
	if !g.opts.Grid.Contains(g.apple.Position()) || g.snake.Occupies(g.apple.Position()) {
		apple, err := RespawnApple(g.rng, g.snake.body, g.opts.Grid)
		if err != nil {
			return fmt.Errorf("game: cannot place opening apple: %w", err)
		}
		g.apple = apple
	}
	return nil
}

// Options returns the options the match was created with.
func (g *Game) Options() Options {
	return g.opts
}

// Grid returns the board dimensions.
func (g *Game) Grid() Grid {
	return g.opts.Grid
}

// Turn records a turn intent for the next tick. Later calls overwrite earlier
// ones; the reversal guard runs when the tick applies it.
func (g *Game) Turn(d Direction) {
	if !d.Valid() {
		return
	}
	g.pending = d
}

// Quit ends a running match on user request.
func (g *Game) Quit() {
	g.end(StateQuit, ReasonQuit)
}

func (g *Game) end(s State, r EndReason) {
	if g.state != StateRunning {
		return
	}
	g.state = s
	g.reason = r
}

// Tick advances the match by one step.
func (g *Game) Tick() Outcome {
	if g.state != StateRunning {
		return OutcomeIdle
	}
	g.ticks++

	g.snake.Turn(g.pending)

	next := g.snake.Head().Add(g.snake.Direction().Delta())
	if !g.opts.Grid.Contains(next) {
		g.end(StateQuit, ReasonWall)
		return OutcomeWall
	}

	g.snake.Step()
	if g.snake.IsDead() {
		g.end(StateQuit, ReasonSelf)
		return OutcomeSelf
	}

	if g.snake.Head() != g.apple.Position() {
		return OutcomeMoved
	}

	g.snake.Grow()
	apple, err := RespawnApple(g.rng, g.snake.body, g.opts.Grid)
	if errors.Is(err, ErrBoardFull) {
		g.end(StateWon, ReasonBoardFull)
		return OutcomeWon
	}
	g.apple = apple
	return OutcomeAte
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the match is still being played.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Reason returns why the match ended, or ReasonNone while running.
func (g *Game) Reason() EndReason {
	return g.reason
}

// Score is the growth since the opening: body length minus the opening
// length. An eaten apple counts once the next tick has grown the body.
func (g *Game) Score() int {
	return g.snake.Len() - g.opts.TailLength - 1
}

// Ticks returns the number of ticks played in this match.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Observe returns the numeric view of the board used by agents:
// apple x, apple y, head x, head y.
func (g *Game) Observe() Observation {
	apple := g.apple.Position()
	head := g.snake.Head()
	return Observation{float64(apple.X), float64(apple.Y), float64(head.X), float64(head.Y)}
}
