package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch loads the match configuration.
// Search order: customPath -> ~/.brickduel/configs/match.yaml ->
// ./configs/match.yaml -> embedded default.
// Any field left unset by the chosen file is filled from defaults.
func LoadMatch(customPath string) (MatchConfig, error) {
	var cfg MatchConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.ApplyDefaults()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.ApplyDefaults()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/match.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.ApplyDefaults()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatchYAML, &cfg); err != nil {
		return DefaultMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickduel", "configs", filename)
}

// ApplyPreset adjusts a config for a difficulty preset. Besides selecting
// the AI tier it shifts the gameplay parameters the way the tiers are
// balanced: easier tiers give the player more lives and a wider paddle.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Tier = DifficultyEasy
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 120
	case DifficultyHard:
		cfg.AI.Tier = DifficultyHard
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
	case DifficultyNormal:
		cfg.AI.Tier = DifficultyNormal
	}
}
