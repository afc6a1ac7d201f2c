package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OriginEmbedded is the origin reported when no config file was found.
const OriginEmbedded = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.endgame/configs/endgame.yaml ->
// ./configs/endgame.yaml -> embedded default.
//
// A file only needs to name the sections it changes; everything else keeps
// the embedded default.
func Load(customPath string) (EndgameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EndgameConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return EndgameConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("endgame.yaml"), filepath.Join("configs", "endgame.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			return EndgameConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return Default(), OriginEmbedded, nil
}

// parse overlays YAML data onto the embedded default.
func parse(data []byte) (EndgameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EndgameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".endgame", "configs", filename)
}
