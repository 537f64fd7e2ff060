// snake is a terminal Snake game with an SSH server and a Q-learning trainer.
//
// Usage:
//
//	snake list              - List available arenas
//	snake play [arena]      - Play a match
//	snake menu              - Pick arenas interactively
//	snake serve             - Start SSH server for remote play
//	snake train             - Train a Q-learning agent
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/configs, ./configs)
//	--arena <id>        - Arena to play
//	--fps <rate>        - Ticks per second (default: 10)
//	--seed <value>      - RNG seed for reproducible apples
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagArena    string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game for the terminal: steer the snake to the
apple, grow, and avoid the walls and your own tail.

Available commands:
  list     - Show all arenas
  play     - Play a match
  menu     - Interactive arena picker
  serve    - Start SSH server for remote play
  train    - Train a Q-learning agent and watch it play

Examples:
  snake play
  snake play wide --fps 15
  snake play --renderer tcell
  snake serve
  snake train --episodes 2000 --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagArena, "arena", "", "Arena ID (see 'snake list')")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trainCmd)
}

// loadConfig loads the config file and applies global flags that were set
// on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("arena") {
		cfg.Arena = flagArena
	}
	if flags.Changed("fps") {
		cfg.Loop.FrameRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Arena) {
		return cfg, fmt.Errorf("unknown arena %q, run 'snake list' to see available arenas", cfg.Arena)
	}
	return cfg, nil
}
