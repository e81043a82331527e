package match

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// Physics tuning constants.
const (
	// BounceAngleSpan is the full paddle bounce envelope: the hit position
	// maps to an exit angle of (hit-0.5)*0.7*pi, i.e. up to ±63 degrees.
	BounceAngleSpan = 0.7 * math.Pi

	// BrickJitter is the per-axis uniform jitter added after a brick
	// reflection to break up degenerate repeating bounce patterns.
	BrickJitter = 0.025

	// OvertimeMultiplier doubles ball motion once the match has ended so
	// residual on-screen movement clears quickly.
	OvertimeMultiplier = 2.0
)

// Integrate advances the ball's position by one step:
// pos += vel * speed * dt * overtime.
func Integrate(b *Ball, dt, overtime float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(b.Speed * dt * overtime))
}

// ResolveWalls reflects the ball off the left, right and top walls,
// clamping the position so the ball stays fully inside. The bottom edge is
// deliberately not reflected: crossing it is a loss condition handled by
// DetectLoss, not a bounce. The top reflection only ever applies to balls
// that survived the loss check; the AI rollout also relies on it.
func ResolveWalls(b *Ball, arenaWidth float64) {
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X+b.Radius > arenaWidth {
		b.Pos.X = arenaWidth - b.Radius
		b.Vel.X = -b.Vel.X
	}

	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
	}
}

// HitsPaddle reports whether the ball overlaps the paddle while moving
// toward it (downward for the bottom paddle, upward for the top one).
func HitsPaddle(b *Ball, p *Paddle) bool {
	if p.Side == SideHuman && b.Vel.Y <= 0 {
		return false
	}
	if p.Side == SideAI && b.Vel.Y >= 0 {
		return false
	}
	return core.CircleOverlapsRect(b.Pos, b.Radius, p.Rect())
}

// BouncePaddle applies the bounce-angle response. The hit position along
// the paddle is clamped into [0,1] so the exit angle never exceeds the
// ±63 degree envelope even when the ball catches the paddle's corner.
// Speed magnitude is preserved; the vertical component is always directed
// away from the paddle's defended edge.
func BouncePaddle(b *Ball, p *Paddle) {
	hit := core.ClampF((b.Pos.X-p.X)/p.Width, 0, 1)
	angle := (hit - 0.5) * BounceAngleSpan
	mag := b.Vel.Len()

	vy := -math.Cos(angle) * mag // Upward, away from the bottom paddle
	if p.Side == SideAI {
		vy = -vy // Top paddle sends the ball back downward
	}
	b.Vel = core.Vec2{X: math.Sin(angle) * mag, Y: vy}

	// Push the ball clear of the paddle face so it cannot re-collide on
	// the next tick.
	if p.Side == SideHuman {
		b.Pos.Y = p.Y - b.Radius
	} else {
		b.Pos.Y = p.Y + p.Height + b.Radius
	}
}

// ReflectBrick reflects the ball's velocity across the collision normal
// and adds a small uniform jitter per axis. The brick is always
// deactivated by the caller; there are no partial-damage bricks.
func ReflectBrick(b *Ball, br *Brick, rng *rand.Rand) {
	n := core.CollisionNormal(b.Pos, br.Rect())
	b.Vel = b.Vel.Reflect(n)
	b.Vel.X += (rng.Float64()*2 - 1) * BrickJitter * b.Vel.Len()
	b.Vel.Y += (rng.Float64()*2 - 1) * BrickJitter * b.Vel.Len()
}

// DetectLoss reports which side lost the ball, if any: the human side when
// the ball's leading edge crosses the bottom while moving downward, the AI
// side when it crosses the top while moving upward. Callers run this check
// before ResolveWalls; the top-wall reflection would otherwise swallow the
// AI-side crossing.
func DetectLoss(b *Ball, arenaHeight float64) (Side, bool) {
	if b.Pos.Y+b.Radius > arenaHeight && b.Vel.Y > 0 {
		return SideHuman, true
	}
	if b.Pos.Y-b.Radius < 0 && b.Vel.Y < 0 {
		return SideAI, true
	}
	return SideHuman, false
}
