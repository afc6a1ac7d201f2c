package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/endgame.yaml
var defaultEndgameYAML []byte

// Default returns the embedded default configuration.
func Default() EndgameConfig {
	var cfg EndgameConfig
	if err := yaml.Unmarshal(defaultEndgameYAML, &cfg); err != nil {
		return DefaultEndgameConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// DefaultEndgameConfig returns a hardcoded minimal configuration.
func DefaultEndgameConfig() EndgameConfig {
	return EndgameConfig{
		Words: []string{"assembly", "compiler", "register", "pointer", "syntax", "binary", "kernel", "stack"},
		Labels: []LabelConfig{
			{Name: "HTML", Color: "#F9F4DA", BackgroundColor: "#E2680F"},
			{Name: "CSS", Color: "#F9F4DA", BackgroundColor: "#328AF1"},
			{Name: "JavaScript", Color: "#1E1E1E", BackgroundColor: "#F4EB13"},
			{Name: "React", Color: "#1E1E1E", BackgroundColor: "#2ED3E9"},
			{Name: "TypeScript", Color: "#F9F4DA", BackgroundColor: "#298EC6"},
			{Name: "Node.js", Color: "#F9F4DA", BackgroundColor: "#599137"},
			{Name: "Python", Color: "#1E1E1E", BackgroundColor: "#FFD742"},
			{Name: "Ruby", Color: "#F9F4DA", BackgroundColor: "#D02B2B"},
			{Name: "Assembly", Color: "#F9F4DA", BackgroundColor: "#2D519F"},
		},
		Farewells: []string{"Farewell, {name}"},
		Difficulty: DifficultyConfig{
			Easy:   PresetConfig{MinLength: 3, MaxLength: 5},
			Normal: PresetConfig{MinLength: 4, MaxLength: 8},
			Hard:   PresetConfig{MinLength: 7, MaxLength: 12, LivesDelta: -2},
		},
	}
}
