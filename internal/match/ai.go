package match

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

const (
	// aiDeadZone is the distance between paddle center and target below
	// which the AI does not move, to avoid jitter around the target.
	aiDeadZone = 5.0

	// aiRolloutSteps caps the forward trajectory simulation.
	aiRolloutSteps = 1000

	// aiRolloutDt is the fixed step of the trajectory rollout.
	aiRolloutDt = 1.0 / 60.0

	// aiMistakeOffset is the blunder offset in paddle widths.
	aiMistakeOffset = 0.75
)

// AIController drives the top paddle. The reaction timer and current
// target are per-controller state so independent matches never share
// decisions.
type AIController struct {
	tier          config.DifficultyPreset
	profile       config.AIProfile
	arenaWidth    float64
	sinceDecision float64
	target        float64
	hasTarget     bool
}

// NewAIController builds a controller for the given difficulty tier.
func NewAIController(tier config.DifficultyPreset, arenaWidth float64) *AIController {
	return &AIController{
		tier:       tier,
		profile:    config.ProfileFor(tier),
		arenaWidth: arenaWidth,
		// Force an immediate decision on the first tick.
		sinceDecision: math.Inf(1),
	}
}

// Reset clears the controller's decision state for a fresh match.
func (ai *AIController) Reset() {
	ai.sinceDecision = math.Inf(1)
	ai.target = 0
	ai.hasTarget = false
}

// Update repositions the AI paddle for one tick. It tracks the active
// ball vertically nearest the paddle; the target is recomputed only when
// reactionDelay has elapsed since the last decision, then the paddle
// moves toward it at its tier-scaled speed.
func (ai *AIController) Update(p *Paddle, balls []*Ball, bricks []*Brick, dt float64, rng *rand.Rand) {
	ball := nearestBall(balls, p.Y)
	if ball == nil {
		return
	}

	ai.sinceDecision += dt
	if ai.sinceDecision >= ai.profile.ReactionDelay || !ai.hasTarget {
		ai.sinceDecision = 0
		ai.target = ai.decide(ball, bricks, p, rng)
		ai.hasTarget = true
	}

	diff := ai.target - p.CenterX()
	if math.Abs(diff) <= aiDeadZone {
		return
	}

	step := p.MaxSpeed * ai.profile.SpeedMultiplier * dt
	if diff < 0 {
		step = -step
	}
	if math.Abs(step) > math.Abs(diff) {
		step = diff
	}
	p.X += step
	p.ClampX(ai.arenaWidth)
}

// decide computes a fresh target x for the paddle center.
func (ai *AIController) decide(ball *Ball, bricks []*Brick, p *Paddle, rng *rand.Rand) float64 {
	var predicted float64
	if ai.tier == config.DifficultyEasy {
		// Easiest tier tracks the ball with no look-ahead.
		predicted = ball.Pos.X
	} else {
		predicted = ai.rollout(ball, bricks, p.Y, ai.tier == config.DifficultyHard)
	}

	// Prediction error scales with the inaccuracy share of the arena.
	errSpan := (1 - ai.profile.Accuracy) * ai.arenaWidth
	predicted += (rng.Float64()*2 - 1) * errSpan
	predicted = core.ClampF(predicted, 0, ai.arenaWidth)

	if rng.Float64() < ai.profile.MistakeChance {
		offset := aiMistakeOffset * p.Width
		if rng.Float64() < 0.5 {
			offset = -offset
		}
		predicted += offset
	}
	return predicted
}

// rollout forward-simulates a copy of the ball until it reaches the
// paddle's vertical line or the step cap is exhausted, reusing the wall
// reflection rules. The hardest tier also reflects off active bricks,
// approximated as a plain vertical-velocity inversion.
func (ai *AIController) rollout(ball *Ball, bricks []*Brick, paddleY float64, useBricks bool) float64 {
	sim := *ball
	for i := 0; i < aiRolloutSteps; i++ {
		Integrate(&sim, aiRolloutDt, 1.0)
		ResolveWalls(&sim, ai.arenaWidth)

		if useBricks {
			for _, br := range bricks {
				if !br.Active {
					continue
				}
				if core.CircleOverlapsRect(sim.Pos, sim.Radius, br.Rect()) {
					sim.Vel.Y = -sim.Vel.Y
					break
				}
			}
		}

		if sim.Pos.Y <= paddleY {
			break
		}
	}
	return sim.Pos.X
}

// nearestBall returns the active ball vertically closest to the given y,
// or nil when no ball is active.
func nearestBall(balls []*Ball, y float64) *Ball {
	var best *Ball
	bestDist := math.Inf(1)
	for _, b := range balls {
		if !b.Active {
			continue
		}
		if d := math.Abs(b.Pos.Y - y); d < bestDist {
			bestDist = d
			best = b
		}
	}
	return best
}
