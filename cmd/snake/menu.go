package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick an arena interactively",
	Long: `Open the arena picker. Choose an arena with the arrow keys and Enter;
quitting a match returns to the picker.

Examples:
  snake menu
  snake menu --fps 12`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, "snake", true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	arena := cfg.Arena
	for {
		res, err := tui.RunMenu(ctx, arena)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		arena = res.ArenaID

		opts, rc, err := matchSetup(cfg, arena)
		if err != nil {
			return err
		}

		final, err := tui.Run(ctx, tui.Options{
			Game:      opts,
			FrameRate: rc.FrameRate,
			Logger:    logger.With("arena", arena),
		})
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			printResult(final)
			return nil
		}
	}
}
