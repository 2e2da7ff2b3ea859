package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config as YAML. Save it as
~/.starfall/configs/starfall.yaml or pass it with --config to tune a round.

With --check, load and validate the config the game would use instead.

Examples:
  starfall config > ~/.starfall/configs/starfall.yaml
  starfall config --check --config ./starfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagCheck bool

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the resolved config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		_, _ = os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	if _, err := config.LoadStarfall(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path := config.ResolvePath(flagConfig)
	if path == "" {
		path = "built-in defaults"
	}
	fmt.Printf("OK: %s\n", path)
}
