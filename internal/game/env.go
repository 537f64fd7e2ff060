package game

import "math/rand"

// Observation is the fixed-size view handed to agents:
// apple x, apple y, head x, head y.
type Observation [4]float64

// Rewards returned by Env.Step.
const (
	RewardTick  = -0.01 // Every step costs a little
	RewardGrow  = 1.0   // Apple eaten
	RewardDeath = -10.0 // Wall or self collision
	RewardWin   = 10.0  // Board filled
)

// Env wraps a Game as a reinforcement-learning environment. The caller owns
// it exclusively for the duration of an episode.
type Env struct {
	game *Game
	rng  *rand.Rand
}

// NewEnv creates an environment over a fresh match.
func NewEnv(opts Options) (*Env, error) {
	g, err := New(opts)
	if err != nil {
		return nil, err
	}
	return &Env{
		game: g,
		rng:  rand.New(rand.NewSource(opts.Seed + 1)),
	}, nil
}

// Reset starts a new episode and returns its first observation.
func (e *Env) Reset() Observation {
	e.game.Reset()
	return e.game.Observe()
}

// Step turns toward action, ticks once and returns the next observation and
// the reward. The observation is nil exactly when the episode has ended.
func (e *Env) Step(action Direction) (*Observation, float64) {
	reward := RewardTick

	e.game.Turn(action)
	switch e.game.Tick() {
	case OutcomeAte:
		reward += RewardGrow
	case OutcomeWon:
		reward += RewardGrow + RewardWin
	case OutcomeWall, OutcomeSelf:
		reward += RewardDeath
	}

	if !e.game.Running() {
		return nil, reward
	}
	obs := e.game.Observe()
	return &obs, reward
}

// IsActive reports whether the episode is still running.
func (e *Env) IsActive() bool {
	return e.game.Running()
}

// Actions returns the discrete action space.
func (e *Env) Actions() []Direction {
	return Directions()
}

// RandomAction picks an action uniformly at random.
func (e *Env) RandomAction() Direction {
	actions := e.Actions()
	return actions[e.rng.Intn(len(actions))]
}

// Score returns the apples eaten in the current episode.
func (e *Env) Score() int {
	return e.game.Score()
}

// Snapshot returns the current match snapshot, for watching an episode.
func (e *Env) Snapshot() Snapshot {
	return e.game.Snapshot()
}
