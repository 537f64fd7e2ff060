package agent

import (
	"context"
	"fmt"

	"github.com/vovakirdan/term-snake/internal/game"
)

// Environment is the episode interface the agent trains against.
// *game.Env implements it.
type Environment interface {
	Reset() game.Observation
	Step(action game.Direction) (*game.Observation, float64)
	IsActive() bool
	Score() int
}

// EpisodeReport summarizes one training episode.
type EpisodeReport struct {
	Episode int
	Steps   int
	Reward  float64
	Score   int
	Epsilon float64 // Exploration rate used during the episode
}

// Summary aggregates a training run.
type Summary struct {
	Episodes  int
	BestScore int
	MeanScore float64
}

// TrainOptions controls a training run.
type TrainOptions struct {
	Episodes int
	MaxSteps int // Episodes are cut off after this many steps
	// OnEpisode is called after every episode when set.
	OnEpisode func(EpisodeReport)
}

// Train runs episodes against env, updating the agent after every step.
// Cancellation is checked between steps; the summary covers the episodes
// completed before it.
func Train(ctx context.Context, a *Agent, env Environment, opts TrainOptions) (Summary, error) {
	if opts.Episodes <= 0 || opts.MaxSteps <= 0 {
		return Summary{}, fmt.Errorf("agent: episodes and max steps must be positive, got %d and %d", opts.Episodes, opts.MaxSteps)
	}

	var (
		sum      Summary
		totalPts int
	)
	for ep := 1; ep <= opts.Episodes; ep++ {
		report, err := runEpisode(ctx, a, env, opts.MaxSteps)
		if err != nil {
			return sum, err
		}
		report.Episode = ep

		sum.Episodes = ep
		sum.BestScore = max(sum.BestScore, report.Score)
		totalPts += report.Score
		sum.MeanScore = float64(totalPts) / float64(ep)

		if opts.OnEpisode != nil {
			opts.OnEpisode(report)
		}
		a.DecayEpsilon()
	}
	return sum, nil
}

func runEpisode(ctx context.Context, a *Agent, env Environment, maxSteps int) (EpisodeReport, error) {
	report := EpisodeReport{Epsilon: a.Epsilon()}

	obs := env.Reset()
	for report.Steps < maxSteps && env.IsActive() {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("agent: training interrupted: %w", err)
		}

		action := a.Act(obs)
		next, reward := env.Step(action)
		a.Update(obs, action, reward, next)

		report.Steps++
		report.Reward += reward
		if next == nil {
			break
		}
		obs = *next
	}

	report.Score = env.Score()
	return report, nil
}
