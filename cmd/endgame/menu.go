package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-endgame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Opens the variant picker. From the menu you can start a round or
browse the word catalog; Esc inside a round returns to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cat := loadConfig()

	return tui.RunSession(cat, runtimeConfig())
}
