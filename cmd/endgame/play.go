package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/games/endgame"
	"github.com/vovakirdan/tui-endgame/internal/platform/tui"
	"github.com/vovakirdan/tui-endgame/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start playing a round of Assembly: Endgame.

Controls:
  a-z     - Guess a letter
  Enter   - New game (once the round is over)
  Esc     - Quit
  Ctrl+C  - Quit

Difficulty options:
  easy   - Words of 3-5 letters
  normal - Words of 4-8 letters
  hard   - Words of 7-12 letters, two fewer wrong guesses

Examples:
  endgame play
  endgame play --difficulty easy
  endgame play endgame_hard
  endgame play --seed 42 --config ./my-words.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	loadConfig()

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if flagDifficulty != "" {
			return fmt.Errorf("--difficulty cannot be combined with a variant argument")
		}
	} else {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		gameID = endgame.IDForPreset(preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'endgame list' to see available variants)", err)
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "seed", flagSeed)
	return tui.Run(game, cfg)
}
