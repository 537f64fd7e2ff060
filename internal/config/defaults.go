package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/term-snake/internal/agent"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	p := agent.DefaultParams()
	return Config{
		Arena: "classic",
		Snake: SnakeConfig{
			TailLength: 2,
			Direction:  "right",
		},
		Loop: LoopConfig{
			FrameRate: 10,
		},
		Agent: AgentConfig{
			Episodes:     500,
			MaxSteps:     1000,
			LearningRate: p.LearningRate,
			Discount:     p.Discount,
			Epsilon:      p.Epsilon,
			MinEpsilon:   p.MinEpsilon,
			EpsilonDecay: p.EpsilonDecay,
			ReportEvery:  50,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
