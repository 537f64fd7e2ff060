package term

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/loop"
)

const restartHint = "r: restart  any key: exit"

// Run plays g in the terminal at frameRate ticks per second. The terminal is
// restored on every return path, panics included.
func Run(ctx context.Context, g *game.Game, frameRate int, logger *log.Logger) error {
	t, err := Open()
	if err != nil {
		return err
	}
	defer t.Close()

	return play(ctx, t, g, frameRate, logger)
}

// play drives the frame loop on t. A match that ended on its own stays on
// screen until a key is pressed: r starts a new match, any other key returns.
// A user quit returns at once.
func play(ctx context.Context, t *Terminal, g *game.Game, frameRate int, logger *log.Logger) error {
	l := loop.New(g, t, t, loop.WithFrameRate(frameRate), loop.WithLogger(logger))
	logger.Debug("frame loop ready", "frame", l.Frame())
	for {
		t.hint = ""
		if err := l.Run(ctx); err != nil {
			return err
		}
		if g.Reason() == game.ReasonQuit {
			return nil
		}

		t.hint = restartHint
		if err := t.Draw(g.Snapshot()); err != nil {
			return err
		}
		if t.WaitKey(ctx.Done()) != core.ActionRestart {
			return nil
		}
		g.Reset()
		logger.Info("match restarted")
	}
}
