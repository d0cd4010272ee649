// flappy is a side-scrolling flap-through-the-pipes game for the terminal,
// a desktop window, or remote players over SSH.
//
// Usage:
//
//	flappy                  - Play in the terminal (same as "flappy play")
//	flappy play             - Play in the terminal
//	flappy window           - Play in a desktop window
//	flappy serve            - Start SSH server for remote play
//	flappy config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search ~/.flappy, ./configs)
//	--fps <rate>       - Override the tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Flap through the pipes in your terminal",
	Long: `Flappy is a side-scrolling game: keep the bird in the air and fly
through the gaps between pipes. Every pipe you pass is worth a point.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy window --fps 120
  flappy serve --ssh :2222
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// loadConfig loads and validates the game configuration, applying CLI overrides.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return config.FlappyConfig{}, err
	}

	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "source", cfg.Source, "error", err)
		return config.FlappyConfig{}, fmt.Errorf("config %s: %w", cfg.Source, err)
	}

	logger.Info("config loaded", "source", cfg.Source)
	return cfg, nil
}

// runtimeConfig builds the runtime settings for a frontend of the given size.
func runtimeConfig(cfg config.FlappyConfig, width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = cfg.Loop.TickRate
	rt.Seed = flagSeed
	return rt
}
