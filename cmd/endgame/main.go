// endgame is a terminal word-guessing game: guess the word before every
// programming language but Assembly is gone.
//
// Usage:
//
//	endgame play [variant]   - Play a round (default variant: endgame)
//	endgame menu             - Pick a difficulty interactively
//	endgame serve            - Start SSH server for remote play
//	endgame list             - List available variants
//	endgame catalog          - Browse the word catalog
//
// Global flags:
//
//	--config <path> - Catalog YAML (default: search ~/.endgame/configs, ./configs)
//	--seed <value>  - Set RNG seed for a reproducible word sequence
//	--verbose       - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/games/endgame"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "endgame",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "endgame",
	Short: "Assembly: Endgame - guess the word before Assembly takes over",
	Long: `Assembly: Endgame is a word-guessing game for the terminal.

Every wrong guess costs one programming language. Guess the word before
only Assembly is left.

Available commands:
  play     - Play a round directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  list     - Show all variants
  catalog  - Browse words, languages and lives per difficulty

Examples:
  endgame play
  endgame play --difficulty hard
  endgame menu
  endgame serve --ssh :2222
  endgame catalog --plain`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a catalog config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig loads the catalog and installs it for new games.
// Configuration errors are fatal.
func loadConfig() config.EndgameConfig {
	cfg, origin, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	if err := endgame.SetConfig(cfg); err != nil {
		logger.Fatal("invalid config", "origin", origin, "err", err)
	}

	logger.Debug("config loaded", "origin", origin, "words", len(cfg.Words), "labels", len(cfg.Labels))
	return cfg
}

// runtimeConfig sizes the game to stdout, falling back to the defaults
// when it is not a terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
