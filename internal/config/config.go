// Package config provides YAML-based configuration loading for the snake
// game, its frame loop, the training harness and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/agent"
	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/registry"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all configuration for the snake binary.
type Config struct {
	Arena  string       `yaml:"arena"`
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Loop   LoopConfig   `yaml:"loop"`
	Seed   int64        `yaml:"seed"` // 0 picks a time-based seed
	Agent  AgentConfig  `yaml:"agent"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig overrides the arena size when both values are positive.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the opening snake.
type SnakeConfig struct {
	TailLength int    `yaml:"tail_length"`
	Direction  string `yaml:"direction"`
}

// LoopConfig defines the frame cadence.
type LoopConfig struct {
	FrameRate int `yaml:"frame_rate"` // Ticks per second
}

// AgentConfig defines the Q-learning parameters used by the train command.
type AgentConfig struct {
	Episodes     int     `yaml:"episodes"`
	MaxSteps     int     `yaml:"max_steps"`
	LearningRate float64 `yaml:"learning_rate"`
	Discount     float64 `yaml:"discount"`
	Epsilon      float64 `yaml:"epsilon"`
	MinEpsilon   float64 `yaml:"min_epsilon"`
	EpsilonDecay float64 `yaml:"epsilon_decay"`
	ReportEvery  int     `yaml:"report_every"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.snake/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks value ranges. The arena ID is checked by GameOptions since
// arenas register at init time.
func (c Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.TailLength < 0 {
		return fmt.Errorf("%w: snake.tail_length %d", ErrInvalid, c.Snake.TailLength)
	}
	if _, err := game.ParseDirection(c.Snake.Direction); err != nil {
		return fmt.Errorf("%w: snake.direction %q", ErrInvalid, c.Snake.Direction)
	}
	if c.Loop.FrameRate <= 0 {
		return fmt.Errorf("%w: loop.frame_rate %d", ErrInvalid, c.Loop.FrameRate)
	}

	a := c.Agent
	if a.Episodes <= 0 || a.MaxSteps <= 0 || a.ReportEvery <= 0 {
		return fmt.Errorf("%w: agent episodes/max_steps/report_every must be positive", ErrInvalid)
	}
	if a.LearningRate <= 0 || a.LearningRate > 1 {
		return fmt.Errorf("%w: agent.learning_rate %v", ErrInvalid, a.LearningRate)
	}
	if a.Discount < 0 || a.Discount > 1 {
		return fmt.Errorf("%w: agent.discount %v", ErrInvalid, a.Discount)
	}
	if a.MinEpsilon < 0 || a.MinEpsilon > a.Epsilon || a.Epsilon > 1 {
		return fmt.Errorf("%w: agent epsilon range [%v, %v]", ErrInvalid, a.MinEpsilon, a.Epsilon)
	}
	if a.EpsilonDecay <= 0 || a.EpsilonDecay > 1 {
		return fmt.Errorf("%w: agent.epsilon_decay %v", ErrInvalid, a.EpsilonDecay)
	}

	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout %v", ErrInvalid, c.Server.IdleTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Params returns the learning hyperparameters of the agent section.
func (a AgentConfig) Params() agent.Params {
	return agent.Params{
		LearningRate: a.LearningRate,
		Discount:     a.Discount,
		Epsilon:      a.Epsilon,
		MinEpsilon:   a.MinEpsilon,
		EpsilonDecay: a.EpsilonDecay,
	}
}

// GameOptions builds match options for the given arena, applying the grid
// override and opening snake settings.
func (c Config) GameOptions(arenaID string) (game.Options, error) {
	a, err := registry.Lookup(arenaID)
	if err != nil {
		return game.Options{}, err
	}

	grid := game.ArenaGrid(a)
	if c.Grid.Width > 0 && c.Grid.Height > 0 {
		grid = game.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
	}

	dir, err := game.ParseDirection(c.Snake.Direction)
	if err != nil {
		return game.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	opts := game.DefaultOptions(grid)
	opts.TailLength = c.Snake.TailLength
	opts.Direction = dir
	opts.Seed = c.ResolveSeed()
	return opts, nil
}

// ResolveSeed returns the configured seed, or a time-based one when it is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
