// Package config provides YAML-based catalog configuration for the game:
// the word list, the ranked severity labels, farewell phrases and the
// difficulty presets that filter the word list.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-endgame/internal/words"
)

// EndgameConfig contains the full catalog configuration.
type EndgameConfig struct {
	Words      []string         `yaml:"words"`
	Labels     []LabelConfig    `yaml:"labels"`
	Lives      int              `yaml:"lives"` // 0 = len(labels) - 1
	Farewells  []string         `yaml:"farewells"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LabelConfig is a severity label as written in YAML.
type LabelConfig struct {
	Name            string `yaml:"name"`
	Color           string `yaml:"color"`
	BackgroundColor string `yaml:"background_color"`
}

// DifficultyConfig defines the word-length band of each preset.
type DifficultyConfig struct {
	Easy   PresetConfig `yaml:"easy"`
	Normal PresetConfig `yaml:"normal"`
	Hard   PresetConfig `yaml:"hard"`
}

// PresetConfig narrows the word list and adjusts the lives budget.
type PresetConfig struct {
	MinLength  int `yaml:"min_length"`  // 0 = no lower bound
	MaxLength  int `yaml:"max_length"`  // 0 = no upper bound
	LivesDelta int `yaml:"lives_delta"` // Added to the base lives, result floored at 1
}

// Catalog converts the configuration into a words.Catalog.
func (c EndgameConfig) Catalog() words.Catalog {
	labels := make([]words.SeverityLabel, len(c.Labels))
	for i, l := range c.Labels {
		labels[i] = words.SeverityLabel{
			Name:            l.Name,
			Color:           l.Color,
			BackgroundColor: l.BackgroundColor,
		}
	}

	return words.Catalog{
		Words:     append([]string(nil), c.Words...),
		Labels:    labels,
		Lives:     c.Lives,
		Farewells: append([]string(nil), c.Farewells...),
	}
}

// Validate checks that the configuration can build a word source.
// Errors wrap the words package sentinels.
func Validate(c EndgameConfig) error {
	if _, err := words.New(c.Catalog(), nil); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
