package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/term-snake/internal/agent"
	"github.com/vovakirdan/term-snake/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("parse embedded default: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
arena: wide
snake:
  direction: up
loop:
  frame_rate: 15
server:
  idle_timeout: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Arena != "wide" {
		t.Errorf("Arena = %q, expected wide", cfg.Arena)
	}
	if cfg.Snake.Direction != "up" {
		t.Errorf("Snake.Direction = %q, expected up", cfg.Snake.Direction)
	}
	if cfg.Loop.FrameRate != 15 {
		t.Errorf("Loop.FrameRate = %d, expected 15", cfg.Loop.FrameRate)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("Server.IdleTimeout = %v, expected 5m", cfg.Server.IdleTimeout)
	}
	// Missing keys keep defaults
	if cfg.Snake.TailLength != 2 {
		t.Errorf("Snake.TailLength = %d, expected default 2", cfg.Snake.TailLength)
	}
	if cfg.Agent != Default().Agent {
		t.Errorf("Agent = %+v, expected defaults", cfg.Agent)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		invalid bool
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, false},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "loop: [1, 2") }, false},
		{"invalid value", func(t *testing.T) string { return writeConfig(t, "loop:\n  frame_rate: 0\n") }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path(t))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if errors.Is(err, ErrInvalid) != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", !tc.invalid, tc.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"negative grid", func(c *Config) { c.Grid.Width = -1 }},
		{"negative tail", func(c *Config) { c.Snake.TailLength = -1 }},
		{"unknown direction", func(c *Config) { c.Snake.Direction = "diagonal" }},
		{"zero frame rate", func(c *Config) { c.Loop.FrameRate = 0 }},
		{"zero episodes", func(c *Config) { c.Agent.Episodes = 0 }},
		{"learning rate above one", func(c *Config) { c.Agent.LearningRate = 1.5 }},
		{"negative discount", func(c *Config) { c.Agent.Discount = -0.1 }},
		{"min epsilon above epsilon", func(c *Config) { c.Agent.MinEpsilon = 0.5; c.Agent.Epsilon = 0.1 }},
		{"zero decay", func(c *Config) { c.Agent.EpsilonDecay = 0 }},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGameOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	cfg.Snake.Direction = "up"
	cfg.Snake.TailLength = 1

	opts, err := cfg.GameOptions("classic")
	if err != nil {
		t.Fatalf("GameOptions() failed: %v", err)
	}
	if opts.Grid != (game.Grid{Width: 17, Height: 15}) {
		t.Errorf("Grid = %v, expected 17x15", opts.Grid)
	}
	if opts.Direction != game.DirUp || opts.TailLength != 1 || opts.Seed != 7 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Head != game.Pt(3, 7) {
		t.Errorf("Head = %v, expected (3,7)", opts.Head)
	}

	cfg.Grid = GridConfig{Width: 20, Height: 10}
	opts, err = cfg.GameOptions("classic")
	if err != nil {
		t.Fatalf("GameOptions() failed: %v", err)
	}
	if opts.Grid != (game.Grid{Width: 20, Height: 10}) {
		t.Errorf("Grid override = %v, expected 20x10", opts.Grid)
	}

	if _, err := cfg.GameOptions("nowhere"); err == nil {
		t.Error("GameOptions() should fail for an unknown arena")
	}
}

func TestAgentParams(t *testing.T) {
	if got := Default().Agent.Params(); got != agent.DefaultParams() {
		t.Errorf("Default().Agent.Params() = %+v, expected %+v", got, agent.DefaultParams())
	}

	a := Default().Agent
	a.LearningRate = 0.5
	a.EpsilonDecay = 0.9
	p := a.Params()
	if p.LearningRate != 0.5 || p.EpsilonDecay != 0.9 || p.Discount != 0.9 {
		t.Errorf("Params() = %+v, expected overrides applied", p)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Errorf("ResolveSeed() = %d, expected 42", cfg.ResolveSeed())
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("ResolveSeed() should pick a non-zero seed")
	}
}
