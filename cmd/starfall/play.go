package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagConfig string
	flagWatch  bool
	flagBell   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing immediately.

Controls:
  Left/Right, A/D  - Run
  Up/W/Space       - Jump
  R or [Restart]   - Restart the round
  Esc              - Back to menu
  Q/Ctrl+C         - Quit

The config is looked up in this order: --config, ~/.starfall/configs/starfall.yaml,
./configs/starfall.yaml, then the built-in defaults. With --watch, edits to
the file are picked up on the next restart.

Examples:
  starfall play
  starfall play --seed 7
  starfall play --config ./my-starfall.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for sound cues")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playOptions prepares the game package and the tui options for one run.
// The returned cleanup stops the config watcher.
func playOptions(logger *log.Logger) (tui.Options, func(), error) {
	cfg, err := config.LoadStarfall(flagConfig)
	if err != nil {
		return tui.Options{}, nil, err
	}

	starfall.SetConfigPath(flagConfig)
	starfall.SetLogger(logger)
	if flagBell {
		starfall.SetBell(os.Stderr)
	} else {
		starfall.SetBell(nil)
	}

	opts := tui.Options{HoldTicks: cfg.Input.HoldTicks, Logger: logger}
	cleanup := func() {}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch ignored, using built-in defaults")
		} else {
			w, werr := config.NewWatcher(path, logger)
			if werr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not watch config: %v\n", werr)
			} else {
				opts.Watch = w
				cleanup = func() { _ = w.Close() }
			}
		}
	}
	return opts, cleanup, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger()
	defer closeLog()

	opts, cleanup, err := playOptions(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	game, err := registry.Create(starfall.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, store, terminalConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
