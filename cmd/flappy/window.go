package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the game world and play there.

Controls are the same as in the terminal: Space/Up/W flap, P/Esc pause,
Enter/R restart after game over, Q quits.

Examples:
  flappy window
  flappy window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := runtimeConfig(cfg, int(cfg.World.Width), int(cfg.World.Height))
	return window.Run(cfg, rt, logger)
}
