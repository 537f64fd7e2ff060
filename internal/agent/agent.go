// Package agent implements a tabular epsilon-greedy Q-learning agent that
// plays snake through the game environment.
package agent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/term-snake/internal/game"
)

// Params holds the learning hyperparameters.
type Params struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64 // Initial exploration rate
	MinEpsilon   float64
	EpsilonDecay float64 // Multiplied into epsilon after every episode
}

// DefaultParams returns the parameters used when none are configured.
func DefaultParams() Params {
	return Params{
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      1.0,
		MinEpsilon:   0.05,
		EpsilonDecay: 0.99,
	}
}

// QTable maps an observation to one value per action.
type QTable map[game.Observation][]float64

// Agent learns action values over observations.
// It is not safe for concurrent use.
type Agent struct {
	table   QTable
	actions []game.Direction
	params  Params
	epsilon float64
	rng     *rand.Rand
}

// New creates an agent choosing among actions.
func New(actions []game.Direction, p Params, seed int64) *Agent {
	acts := make([]game.Direction, len(actions))
	copy(acts, actions)
	return &Agent{
		table:   make(QTable),
		actions: acts,
		params:  p,
		epsilon: p.Epsilon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Epsilon returns the current exploration rate.
func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

// States returns the number of observations seen so far.
func (a *Agent) States() int {
	return len(a.table)
}

// Act picks an action epsilon-greedily.
func (a *Agent) Act(obs game.Observation) game.Direction {
	if a.rng.Float64() < a.epsilon {
		return a.actions[a.rng.Intn(len(a.actions))]
	}
	return a.Best(obs)
}

// Best returns the highest valued action for obs. Ties go to the earliest
// action; unseen observations therefore map to the first action.
func (a *Agent) Best(obs game.Observation) game.Direction {
	values, ok := a.table[obs]
	if !ok {
		return a.actions[0]
	}

	best := 0
	maxQ := math.Inf(-1)
	for i, q := range values {
		if q > maxQ {
			maxQ = q
			best = i
		}
	}
	return a.actions[best]
}

// Next returns the greedy move for a running match. It lets a trained agent
// steer the interactive frontends.
func (a *Agent) Next(s game.Snapshot) (game.Direction, bool) {
	if !s.Running() {
		return 0, false
	}
	return a.Best(s.Observation()), true
}

// Update applies the Q-learning rule
// Q(s,a) += lr * (r + discount * max Q(s',.) - Q(s,a)).
// A nil next marks a terminal transition whose future value is zero.
func (a *Agent) Update(obs game.Observation, action game.Direction, reward float64, next *game.Observation) {
	idx := a.index(action)
	if idx < 0 {
		return
	}

	values := a.row(obs)
	future := 0.0
	if next != nil {
		future = a.maxValue(*next)
	}
	values[idx] += a.params.LearningRate * (reward + a.params.Discount*future - values[idx])
}

// DecayEpsilon lowers exploration after an episode, never below MinEpsilon.
func (a *Agent) DecayEpsilon() {
	a.epsilon = math.Max(a.params.MinEpsilon, a.epsilon*a.params.EpsilonDecay)
}

func (a *Agent) row(obs game.Observation) []float64 {
	values, ok := a.table[obs]
	if !ok {
		values = make([]float64, len(a.actions))
		a.table[obs] = values
	}
	return values
}

func (a *Agent) maxValue(obs game.Observation) float64 {
	values, ok := a.table[obs]
	if !ok {
		return 0
	}
	maxQ := math.Inf(-1)
	for _, q := range values {
		maxQ = math.Max(maxQ, q)
	}
	return maxQ
}

func (a *Agent) index(action game.Direction) int {
	for i, d := range a.actions {
		if d == action {
			return i
		}
	}
	return -1
}
