// Package match implements the deterministic simulation engine for a
// two-sided brick-breaking duel: a human paddle on the bottom edge and an
// AI paddle on the top edge, each defending a wall of bricks against a
// shared countdown clock.
//
// The arena uses screen-style coordinates: x grows rightward, y grows
// downward. The human side owns the bottom edge, the AI side the top.
package match

import (
	"math/rand"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// Ball is a moving ball. Velocity is a direction-and-magnitude vector;
// Speed is a scalar multiplier applied on top of it each tick, which is
// what the slow-ball effect manipulates.
type Ball struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Speed  float64
	Owner  Side // Side that launched the ball; kept across bounces
	Active bool
}

// MovingUp reports whether the ball travels toward the AI's wall.
// Scoring and loss attribution use this velocity-sign rule.
func (b *Ball) MovingUp() bool {
	return b.Vel.Y < 0
}

// Half returns the side whose half of the arena the ball currently
// occupies. Used for per-side ball limits.
func (b *Ball) Half(arenaHeight float64) Side {
	if b.Pos.Y < arenaHeight/2 {
		return SideAI
	}
	return SideHuman
}

// Paddle is one of the two player paddles. Width is mutable at runtime
// (expand effect); X is always clamped into [0, arenaWidth-Width].
type Paddle struct {
	Side     Side
	X, Y     float64 // Top-left corner
	Width    float64
	Height   float64
	MaxSpeed float64
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// ClampX keeps the paddle fully inside the arena.
func (p *Paddle) ClampX(arenaWidth float64) {
	p.X = core.ClampF(p.X, 0, arenaWidth-p.Width)
}

// BrickType distinguishes plain bricks from power-up carriers.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickSpecial
)

// Brick is one destructible wall segment. Bricks never move; only Active
// changes, and only ever from true to false.
type Brick struct {
	Side   Side // Wall the brick belongs to
	Pos    core.Vec2
	Width  float64
	Height float64
	Type   BrickType
	Points int
	Active bool
}

// Rect returns the brick's bounding rectangle.
func (br *Brick) Rect() core.Rect {
	return core.NewRect(br.Pos.X, br.Pos.Y, br.Width, br.Height)
}

// PowerUpType enumerates the three power-up variants.
type PowerUpType int

const (
	PowerExpandPaddle PowerUpType = iota
	PowerExtraBall
	PowerSlowBall
	powerUpTypeCount // Sentinel for uniform random selection
)

// String returns the display name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerExpandPaddle:
		return "expand"
	case PowerExtraBall:
		return "extra-ball"
	case PowerSlowBall:
		return "slow-ball"
	default:
		return "?"
	}
}

// PowerUp is a falling pickup spawned by a destroyed special brick.
// Destroyed on catch or on leaving the arena.
type PowerUp struct {
	Type   PowerUpType
	Pos    core.Vec2 // Center
	Vel    core.Vec2
	Width  float64
	Height float64
	Active bool
}

// Radius returns the catch-test radius: the pickup's bounding box treated
// as a circle of radius min(width,height)/2.
func (pu *PowerUp) Radius() float64 {
	if pu.Width < pu.Height {
		return pu.Width / 2
	}
	return pu.Height / 2
}

// ActiveEffect is a timed modifier applied to one side. SlowBall effects
// record the balls they touched so expiry never corrects a ball the
// effect was not applied to.
type ActiveEffect struct {
	Type      PowerUpType
	Side      Side
	ExpiresAt float64 // Match-elapsed seconds
	BallIDs   []int   // Balls affected (slow-ball only)
}

// buildWalls lays out both mirrored brick grids. Special bricks are
// assigned randomly per brick with the configured chance.
func buildWalls(cfg config.MatchConfig, rng *rand.Rand) []*Brick {
	bricks := make([]*Brick, 0, 2*cfg.Bricks.Cols*cfg.Bricks.Rows)

	gridW := float64(cfg.Bricks.Cols)*cfg.Bricks.Width + float64(cfg.Bricks.Cols-1)*cfg.Bricks.Gap
	left := (cfg.Arena.Width - gridW) / 2

	rowStep := cfg.Bricks.Height + cfg.Bricks.Gap
	aiTop := cfg.Paddle.EdgeOffset + cfg.Paddle.Height + cfg.Bricks.WallOffset
	humanBottom := cfg.Arena.Height - cfg.Paddle.EdgeOffset - cfg.Paddle.Height - cfg.Bricks.WallOffset

	for _, side := range []Side{SideAI, SideHuman} {
		for row := 0; row < cfg.Bricks.Rows; row++ {
			var y float64
			if side == SideAI {
				y = aiTop + float64(row)*rowStep
			} else {
				y = humanBottom - cfg.Bricks.Height - float64(row)*rowStep
			}
			for col := 0; col < cfg.Bricks.Cols; col++ {
				typ := BrickNormal
				points := cfg.Bricks.NormalPoints
				if rng.Float64() < cfg.Bricks.SpecialChance {
					typ = BrickSpecial
					points = cfg.Bricks.SpecialPoints
				}
				bricks = append(bricks, &Brick{
					Side:   side,
					Pos:    core.Vec2{X: left + float64(col)*(cfg.Bricks.Width+cfg.Bricks.Gap), Y: y},
					Width:  cfg.Bricks.Width,
					Height: cfg.Bricks.Height,
					Type:   typ,
					Points: points,
					Active: true,
				})
			}
		}
	}

	return bricks
}
