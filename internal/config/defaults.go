package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the default match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:       100,
			Height:      16,
			EdgeOffset:  40,
			PlayerSpeed: 500,
			AISpeed:     400,
		},
		Ball: BallConfig{
			Radius:      8,
			LaunchSpeed: 300,
			MaxLaunchVX: 200,
		},
		Bricks: BrickConfig{
			Cols:          8,
			Rows:          3,
			Width:         90,
			Height:        20,
			Gap:           8,
			WallOffset:    30,
			SpecialChance: 0.15,
			NormalPoints:  10,
			SpecialPoints: 30,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			Duration: 120,
		},
		PowerUps: PowerUpConfig{
			Size:            20,
			FallSpeed:       150,
			ExpandFactor:    1.5,
			ExpandDuration:  10,
			SlowFactor:      0.7,
			SlowDuration:    8,
			MaxBallsPerSide: 3,
		},
		AI: AIConfig{
			Tier: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default match YAML.
func GetDefaultYAML() []byte {
	return defaultMatchYAML
}
