package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/agent"
	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var (
	flagEpisodes int
	flagMaxSteps int
	flagWatch    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a Q-learning agent",
	Long: `Train a tabular Q-learning agent on the configured arena. The agent
observes the apple and head positions and is rewarded for eating,
penalized for dying.

With --watch the trained agent then plays one match in the terminal.

Examples:
  snake train
  snake train --arena compact --episodes 2000
  snake train --episodes 500 --watch --fps 20`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&flagEpisodes, "episodes", 0, "Number of training episodes")
	trainCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0, "Step cap per episode")
	trainCmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch the trained agent play afterwards")
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("episodes") {
		cfg.Agent.Episodes = flagEpisodes
	}
	if flags.Changed("max-steps") {
		cfg.Agent.MaxSteps = flagMaxSteps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, "snake-train", false)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.GameOptions(cfg.Arena)
	if err != nil {
		return err
	}
	env, err := game.NewEnv(opts)
	if err != nil {
		return err
	}

	a := agent.New(env.Actions(), cfg.Agent.Params(), opts.Seed)

	logger.Info("training started",
		"arena", cfg.Arena,
		"episodes", cfg.Agent.Episodes,
		"max_steps", cfg.Agent.MaxSteps,
		"seed", opts.Seed)

	ctx := cmd.Context()
	episodes := cfg.Agent.Episodes
	sum, err := agent.Train(ctx, a, env, agent.TrainOptions{
		Episodes: episodes,
		MaxSteps: cfg.Agent.MaxSteps,
		OnEpisode: func(r agent.EpisodeReport) {
			if r.Episode%cfg.Agent.ReportEvery != 0 && r.Episode != episodes {
				return
			}
			logger.Info("episode",
				"n", r.Episode,
				"score", r.Score,
				"steps", r.Steps,
				"reward", fmt.Sprintf("%.2f", r.Reward),
				"epsilon", fmt.Sprintf("%.3f", r.Epsilon))
		},
	})
	switch {
	case err != nil && errors.Is(err, ctx.Err()):
		logger.Warn("training interrupted", "completed", sum.Episodes)
	case err != nil:
		return err
	}

	fmt.Printf("Trained %d episodes on %s: best score %d, mean score %.2f, %d states learned\n",
		sum.Episodes, cfg.Arena, sum.BestScore, sum.MeanScore, a.States())

	if !flagWatch || ctx.Err() != nil {
		return nil
	}

	rc, err := runtimeConfig(cfg, opts.Grid)
	if err != nil {
		return err
	}

	// stderr belongs to the full-screen view while watching.
	watchLog := log.New(io.Discard)
	if cfg.Log.File != "" {
		watchLog = logger
	}
	final, err := tui.Run(ctx, tui.Options{
		Game:      opts,
		FrameRate: rc.FrameRate,
		Pilot:     a,
		Logger:    watchLog,
	})
	if err != nil {
		return err
	}
	printResult(final)
	return nil
}
