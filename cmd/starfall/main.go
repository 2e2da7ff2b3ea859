// starfall is a side-on platformer played in the terminal: run, jump, catch
// the falling stars and keep clear of the bombs.
//
// Usage:
//
//	starfall                 - Start the title menu
//	starfall play            - Play straight away
//	starfall scores          - Show high scores
//	starfall config          - Print the default config
//	starfall list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/scores.db)
//	--log <path>    - Write a debug log to this file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/starfall/internal/games/starfall"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - catch falling stars in your terminal",
	Long: `Starfall is a small physics platformer for the terminal.

Run and jump across the platforms to collect every star. Each cleared
wave drops a new bomb that bounces around the level. Touch one and the
round is over.

Examples:
  starfall
  starfall play --seed 42
  starfall play --config ./starfall.yaml --watch
  starfall scores`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// openLogger returns a file logger when --log is set. The terminal belongs
// to the game, so nothing is logged to stderr while it runs.
func openLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}
