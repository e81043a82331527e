// Package config provides YAML-based match configuration loading and
// difficulty presets for the brick duel engine.
package config

// MatchConfig contains all configuration for a single match.
// It is immutable for the match's lifetime once constructed.
type MatchConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	AI       AIConfig       `yaml:"ai"`

	// Seed drives every randomized element of the match (initial launch
	// velocities, special brick placement, power-up types, AI mistakes,
	// brick-bounce jitter). 0 means the caller picks one.
	Seed int64 `yaml:"seed"`
}

// ArenaConfig defines the playfield dimensions in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement limits.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	EdgeOffset  float64 `yaml:"edge_offset"`  // Distance from the defended edge
	PlayerSpeed float64 `yaml:"player_speed"` // Player paddle speed (units/s)
	AISpeed     float64 `yaml:"ai_speed"`     // AI paddle max speed (units/s)
}

// BallConfig defines ball geometry and launch behavior.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	LaunchSpeed float64 `yaml:"launch_speed"` // Fixed vertical speed on launch/respawn
	MaxLaunchVX float64 `yaml:"max_launch_vx"`
}

// BrickConfig defines the per-side brick grid.
type BrickConfig struct {
	Cols          int     `yaml:"cols"`
	Rows          int     `yaml:"rows"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gap           float64 `yaml:"gap"`
	WallOffset    float64 `yaml:"wall_offset"` // Distance from the paddle line to the first row
	SpecialChance float64 `yaml:"special_chance"`
	NormalPoints  int     `yaml:"normal_points"`
	SpecialPoints int     `yaml:"special_points"`
}

// GameplayConfig defines lives and the shared countdown clock.
type GameplayConfig struct {
	Lives    int     `yaml:"lives"`
	Duration float64 `yaml:"duration"` // Match duration in seconds
}

// PowerUpConfig defines power-up physics and effect parameters.
type PowerUpConfig struct {
	Size            float64 `yaml:"size"`       // Bounding box edge length
	FallSpeed       float64 `yaml:"fall_speed"` // Vertical speed toward the catching side
	ExpandFactor    float64 `yaml:"expand_factor"`
	ExpandDuration  float64 `yaml:"expand_duration"` // Seconds
	SlowFactor      float64 `yaml:"slow_factor"`
	SlowDuration    float64 `yaml:"slow_duration"` // Seconds
	MaxBallsPerSide int     `yaml:"max_balls_per_side"`
}

// AIConfig selects the opponent difficulty tier.
type AIConfig struct {
	Tier DifficultyPreset `yaml:"tier"`
}

// DifficultyPreset represents a named difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// AIProfile holds the tuning parameters of one difficulty tier.
type AIProfile struct {
	SpeedMultiplier float64 // Fraction of the paddle's max speed
	Accuracy        float64 // Prediction accuracy, 0..1
	ReactionDelay   float64 // Seconds between target recomputations
	MistakeChance   float64 // Probability of a deliberate wrong target
}

// ProfileFor returns the AI tuning for a difficulty tier.
// Unknown tiers fall back to normal.
func ProfileFor(tier DifficultyPreset) AIProfile {
	switch tier {
	case DifficultyEasy:
		return AIProfile{SpeedMultiplier: 0.5, Accuracy: 0.70, ReactionDelay: 0.30, MistakeChance: 0.30}
	case DifficultyHard:
		return AIProfile{SpeedMultiplier: 1.0, Accuracy: 0.95, ReactionDelay: 0.05, MistakeChance: 0.05}
	default:
		return AIProfile{SpeedMultiplier: 0.8, Accuracy: 0.85, ReactionDelay: 0.15, MistakeChance: 0.15}
	}
}

// ApplyDefaults fills any unset field from DefaultMatchConfig.
// Partial configs are never rejected.
func (c *MatchConfig) ApplyDefaults() {
	d := DefaultMatchConfig()

	if c.Arena.Width <= 0 {
		c.Arena.Width = d.Arena.Width
	}
	if c.Arena.Height <= 0 {
		c.Arena.Height = d.Arena.Height
	}
	if c.Paddle.Width <= 0 {
		c.Paddle.Width = d.Paddle.Width
	}
	if c.Paddle.Height <= 0 {
		c.Paddle.Height = d.Paddle.Height
	}
	if c.Paddle.EdgeOffset <= 0 {
		c.Paddle.EdgeOffset = d.Paddle.EdgeOffset
	}
	if c.Paddle.PlayerSpeed <= 0 {
		c.Paddle.PlayerSpeed = d.Paddle.PlayerSpeed
	}
	if c.Paddle.AISpeed <= 0 {
		c.Paddle.AISpeed = d.Paddle.AISpeed
	}
	if c.Ball.Radius <= 0 {
		c.Ball.Radius = d.Ball.Radius
	}
	if c.Ball.LaunchSpeed <= 0 {
		c.Ball.LaunchSpeed = d.Ball.LaunchSpeed
	}
	if c.Ball.MaxLaunchVX <= 0 {
		c.Ball.MaxLaunchVX = d.Ball.MaxLaunchVX
	}
	if c.Bricks.Cols <= 0 {
		c.Bricks.Cols = d.Bricks.Cols
	}
	if c.Bricks.Rows <= 0 {
		c.Bricks.Rows = d.Bricks.Rows
	}
	if c.Bricks.Width <= 0 {
		c.Bricks.Width = d.Bricks.Width
	}
	if c.Bricks.Height <= 0 {
		c.Bricks.Height = d.Bricks.Height
	}
	if c.Bricks.Gap < 0 {
		c.Bricks.Gap = d.Bricks.Gap
	}
	if c.Bricks.WallOffset <= 0 {
		c.Bricks.WallOffset = d.Bricks.WallOffset
	}
	if c.Bricks.SpecialChance <= 0 {
		c.Bricks.SpecialChance = d.Bricks.SpecialChance
	}
	if c.Bricks.NormalPoints <= 0 {
		c.Bricks.NormalPoints = d.Bricks.NormalPoints
	}
	if c.Bricks.SpecialPoints <= 0 {
		c.Bricks.SpecialPoints = d.Bricks.SpecialPoints
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = d.Gameplay.Lives
	}
	if c.Gameplay.Duration <= 0 {
		c.Gameplay.Duration = d.Gameplay.Duration
	}
	if c.PowerUps.Size <= 0 {
		c.PowerUps.Size = d.PowerUps.Size
	}
	if c.PowerUps.FallSpeed <= 0 {
		c.PowerUps.FallSpeed = d.PowerUps.FallSpeed
	}
	if c.PowerUps.ExpandFactor <= 0 {
		c.PowerUps.ExpandFactor = d.PowerUps.ExpandFactor
	}
	if c.PowerUps.ExpandDuration <= 0 {
		c.PowerUps.ExpandDuration = d.PowerUps.ExpandDuration
	}
	if c.PowerUps.SlowFactor <= 0 {
		c.PowerUps.SlowFactor = d.PowerUps.SlowFactor
	}
	if c.PowerUps.SlowDuration <= 0 {
		c.PowerUps.SlowDuration = d.PowerUps.SlowDuration
	}
	if c.PowerUps.MaxBallsPerSide <= 0 {
		c.PowerUps.MaxBallsPerSide = d.PowerUps.MaxBallsPerSide
	}
	if c.AI.Tier == "" {
		c.AI.Tier = d.AI.Tier
	}
}
