package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/platform/tui"
	"github.com/vovakirdan/tui-endgame/internal/words"
)

var flagPlain bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse words, languages and lives per difficulty",
	Long: `Shows the loaded catalog. On a terminal this opens an interactive
browser; with --plain or when output is redirected it prints tables.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print tables instead of opening the browser")
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cat := loadConfig()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		return tui.RunCatalog(cat, cfg.ScreenW, cfg.ScreenH)
	}

	labels, err := labelTable(cat)
	if err != nil {
		return err
	}
	presets, err := presetTable(cat)
	if err != nil {
		return err
	}

	fmt.Println(labels)
	fmt.Println()
	fmt.Println(presets)
	return nil
}

// labelTable lists the languages in the order they are lost, with the
// farewell shown when each one goes.
func labelTable(cat config.EndgameConfig) (*table.Table, error) {
	src, err := words.New(cat.Catalog(), nil)
	if err != nil {
		return nil, err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Language", "Farewell")

	for i, l := range src.Labels() {
		farewell := ""
		if i < src.MaxWrongGuesses() {
			farewell = src.Farewell(i)
		}
		t.Row(fmt.Sprintf("%d", i), l.Name, farewell)
	}
	return t, nil
}

// presetTable summarises each difficulty preset.
func presetTable(cat config.EndgameConfig) (*table.Table, error) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Difficulty", "Words", "Wrong guesses", "Lengths")

	for _, p := range config.Presets {
		src, err := words.New(config.ApplyPreset(cat, p).Catalog(), nil)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p, err)
		}

		shortest, longest := 0, 0
		for i, w := range src.Words() {
			if i == 0 || len(w) < shortest {
				shortest = len(w)
			}
			longest = max(longest, len(w))
		}

		t.Row(string(p),
			fmt.Sprintf("%d", len(src.Words())),
			fmt.Sprintf("%d", src.MaxWrongGuesses()),
			fmt.Sprintf("%d-%d", shortest, longest),
		)
	}
	return t, nil
}
