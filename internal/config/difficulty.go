package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Preset returns the settings for a preset. Unknown presets get the
// normal settings.
func (d DifficultyConfig) Preset(p DifficultyPreset) PresetConfig {
	switch p {
	case DifficultyEasy:
		return d.Easy
	case DifficultyHard:
		return d.Hard
	default:
		return d.Normal
	}
}

// ApplyPreset returns a copy of cfg with the word list narrowed to the
// preset's length band and the lives budget adjusted. If no word fits the
// band the full list is kept, so a preset never empties the catalog.
func ApplyPreset(cfg EndgameConfig, preset DifficultyPreset) EndgameConfig {
	p := cfg.Difficulty.Preset(preset)
	out := cfg

	filtered := make([]string, 0, len(cfg.Words))
	for _, w := range cfg.Words {
		n := len(strings.TrimSpace(w))
		if p.MinLength > 0 && n < p.MinLength {
			continue
		}
		if p.MaxLength > 0 && n > p.MaxLength {
			continue
		}
		filtered = append(filtered, w)
	}
	if len(filtered) > 0 {
		out.Words = filtered
	} else {
		out.Words = append([]string(nil), cfg.Words...)
	}

	if p.LivesDelta != 0 {
		base := cfg.Lives
		if base == 0 {
			base = len(cfg.Labels) - 1
		}
		if base > 1 {
			out.Lives = max(1, base+p.LivesDelta)
		}
	}

	return out
}
