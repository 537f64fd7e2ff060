package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/platform/term"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/registry"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play [arena]",
	Short: "Play a match",
	Long: `Start a match on the given arena (default: the configured arena).

Controls:
  Arrows/WASD/HJKL - Steer
  R                - Restart (after game over, tea renderer)
  ?                - Toggle help (tea renderer)
  Q/Esc/Ctrl+C     - Quit

Renderers:
  tea    - Bubble Tea full-screen view with help footer (default)
  tcell  - Raw cell-grid frontend driven by the fixed-rate loop

Examples:
  snake play
  snake play compact
  snake play wide --fps 15 --seed 42
  snake play --renderer tcell`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tea", "Frontend: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown arena %q, run 'snake list' to see available arenas", args[0])
		}
		cfg.Arena = args[0]
	}

	opts, rc, err := matchSetup(cfg, cfg.Arena)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, "snake", true)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("starting", "arena", cfg.Arena, "renderer", flagRenderer, "fps", rc.FrameRate, "seed", opts.Seed)

	var final game.Snapshot
	switch flagRenderer {
	case "tea":
		final, err = tui.Run(cmd.Context(), tui.Options{
			Game:      opts,
			FrameRate: rc.FrameRate,
			Logger:    logger,
		})
	case "tcell":
		g, newErr := game.New(opts)
		if newErr != nil {
			return newErr
		}
		err = term.Run(cmd.Context(), g, rc.FrameRate, logger)
		final = g.Snapshot()
	default:
		return fmt.Errorf("unknown renderer %q (want tea or tcell)", flagRenderer)
	}
	if err != nil {
		return err
	}

	printResult(final)
	return nil
}

// matchSetup resolves the game options for arenaID and checks that the board
// fits the terminal.
func matchSetup(cfg config.Config, arenaID string) (game.Options, core.RuntimeConfig, error) {
	opts, err := cfg.GameOptions(arenaID)
	if err != nil {
		return opts, core.RuntimeConfig{}, err
	}
	rc, err := runtimeConfig(cfg, opts.Grid)
	return opts, rc, err
}

// runtimeConfig measures the terminal and checks that the arena fits.
func runtimeConfig(cfg config.Config, grid game.Grid) (core.RuntimeConfig, error) {
	rc := core.DefaultConfig()
	rc.FrameRate = cfg.Loop.FrameRate
	rc.Seed = cfg.Seed

	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc, checkFits(rc, grid)
}

// checkFits reports whether the board fits the screen. The extra row is the
// help footer.
func checkFits(rc core.RuntimeConfig, grid game.Grid) error {
	needW, needH := game.RequiredSize(grid)
	needH++
	if rc.ScreenW < needW || rc.ScreenH < needH {
		return fmt.Errorf("terminal is %dx%d, this arena needs at least %dx%d",
			rc.ScreenW, rc.ScreenH, needW, needH)
	}
	return nil
}

func printResult(s game.Snapshot) {
	switch {
	case s.State == game.StateWon:
		fmt.Printf("You win! Score: %d (%d ticks)\n", s.Score, s.Tick)
	case s.Reason == game.ReasonQuit || s.Reason == game.ReasonNone:
		fmt.Printf("Quit. Score: %d (%d ticks)\n", s.Score, s.Tick)
	default:
		fmt.Printf("Game over: hit the %s. Score: %d (%d ticks)\n", reasonText(s.Reason), s.Score, s.Tick)
	}
}

func reasonText(r game.EndReason) string {
	switch r {
	case game.ReasonWall:
		return "wall"
	case game.ReasonSelf:
		return "tail"
	default:
		return string(r)
	}
}
