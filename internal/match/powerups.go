package match

import (
	"math/rand"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// Catch records one power-up caught during a tick.
type Catch struct {
	Side Side
	Type PowerUpType
}

// PowerUpManager owns the falling pickups and the timed-effect registry
// for one match. It is per-match state; nothing here is shared between
// simulations.
type PowerUpManager struct {
	cfg     config.PowerUpConfig
	arena   config.ArenaConfig
	Pickups []*PowerUp
	Effects []*ActiveEffect
}

// NewPowerUpManager builds an empty manager for one match.
func NewPowerUpManager(cfg config.PowerUpConfig, arena config.ArenaConfig) *PowerUpManager {
	return &PowerUpManager{cfg: cfg, arena: arena}
}

// Reset drops all pickups and registered effects.
func (pm *PowerUpManager) Reset() {
	pm.Pickups = pm.Pickups[:0]
	pm.Effects = pm.Effects[:0]
}

// Spawn creates one pickup at the destroyed brick's center with a
// uniformly random type, falling toward the brick owner's opponent.
func (pm *PowerUpManager) Spawn(br *Brick, rng *rand.Rand) {
	vy := pm.cfg.FallSpeed
	if br.Side == SideHuman {
		vy = -vy // Human-wall bricks drop toward the AI paddle
	}
	pm.Pickups = append(pm.Pickups, &PowerUp{
		Type:   PowerUpType(rng.Intn(int(powerUpTypeCount))),
		Pos:    core.Vec2{X: br.Pos.X + br.Width/2, Y: br.Pos.Y + br.Height/2},
		Vel:    core.Vec2{Y: vy},
		Width:  pm.cfg.Size,
		Height: pm.cfg.Size,
		Active: true,
	})
}

// Fall advances every pickup and removes the ones that left the arena
// uncaught. Then both paddles are tested for catches; a caught pickup is
// consumed immediately so it can never be caught twice.
func (pm *PowerUpManager) Fall(dt float64, human, ai *Paddle) []Catch {
	var caught []Catch

	for _, pu := range pm.Pickups {
		if !pu.Active {
			continue
		}
		pu.Pos = pu.Pos.Add(pu.Vel.Scale(dt))

		if pu.Pos.Y-pu.Radius() > pm.arena.Height || pu.Pos.Y+pu.Radius() < 0 {
			pu.Active = false
			continue
		}
		if core.CircleOverlapsRect(pu.Pos, pu.Radius(), human.Rect()) {
			pu.Active = false
			caught = append(caught, Catch{Side: SideHuman, Type: pu.Type})
			continue
		}
		if core.CircleOverlapsRect(pu.Pos, pu.Radius(), ai.Rect()) {
			pu.Active = false
			caught = append(caught, Catch{Side: SideAI, Type: pu.Type})
		}
	}

	pm.compact()
	return caught
}

func (pm *PowerUpManager) compact() {
	live := pm.Pickups[:0]
	for _, pu := range pm.Pickups {
		if pu.Active {
			live = append(live, pu)
		}
	}
	pm.Pickups = live
}

// ApplyExpand widens the paddle and re-centers it at its old midpoint.
// Catching a second expand while one is active only extends the expiry,
// so the reversal divides the width exactly once.
func (pm *PowerUpManager) ApplyExpand(p *Paddle, side Side, now, arenaWidth float64) {
	if fx := pm.find(PowerExpandPaddle, side); fx != nil {
		fx.ExpiresAt = now + pm.cfg.ExpandDuration
		return
	}
	old := p.Width
	p.Width = old * pm.cfg.ExpandFactor
	p.X -= (p.Width - old) / 2
	p.ClampX(arenaWidth)
	pm.Effects = append(pm.Effects, &ActiveEffect{
		Type:      PowerExpandPaddle,
		Side:      side,
		ExpiresAt: now + pm.cfg.ExpandDuration,
	})
}

// ApplySlow scales down the speed of every active ball and records their
// IDs so the expiry restores exactly the balls it touched. Stacking
// extends the expiry and pulls in any balls not yet slowed by this side's
// effect.
func (pm *PowerUpManager) ApplySlow(balls []*Ball, side Side, now float64) {
	fx := pm.find(PowerSlowBall, side)
	if fx == nil {
		fx = &ActiveEffect{Type: PowerSlowBall, Side: side}
		pm.Effects = append(pm.Effects, fx)
	}
	fx.ExpiresAt = now + pm.cfg.SlowDuration

	for _, b := range balls {
		if !b.Active || pm.slowedBy(b.ID, side) {
			continue
		}
		b.Speed *= pm.cfg.SlowFactor
		fx.BallIDs = append(fx.BallIDs, b.ID)
	}
}

// Expire reverses every effect whose expiry has passed and removes it
// from the registry. Each effect is reversed exactly once, and only
// against the paddle or balls it was applied to.
func (pm *PowerUpManager) Expire(now, arenaWidth float64, human, ai *Paddle, balls []*Ball) {
	live := pm.Effects[:0]
	for _, fx := range pm.Effects {
		if fx.ExpiresAt > now {
			live = append(live, fx)
			continue
		}
		switch fx.Type {
		case PowerExpandPaddle:
			p := human
			if fx.Side == SideAI {
				p = ai
			}
			old := p.Width
			p.Width = old / pm.cfg.ExpandFactor
			p.X += (old - p.Width) / 2
			p.ClampX(arenaWidth)
		case PowerSlowBall:
			for _, id := range fx.BallIDs {
				for _, b := range balls {
					if b.ID == id && b.Active {
						b.Speed /= pm.cfg.SlowFactor
					}
				}
			}
		}
	}
	pm.Effects = live
}

// ScrubBall removes a ball ID from every effect roster. Called when a
// ball is lost and respawned with a fresh speed, so the old slow effect
// never corrects the replacement.
func (pm *PowerUpManager) ScrubBall(id int) {
	for _, fx := range pm.Effects {
		for i, got := range fx.BallIDs {
			if got == id {
				fx.BallIDs = append(fx.BallIDs[:i], fx.BallIDs[i+1:]...)
				break
			}
		}
	}
}

func (pm *PowerUpManager) find(t PowerUpType, side Side) *ActiveEffect {
	for _, fx := range pm.Effects {
		if fx.Type == t && fx.Side == side {
			return fx
		}
	}
	return nil
}

func (pm *PowerUpManager) slowedBy(id int, side Side) bool {
	fx := pm.find(PowerSlowBall, side)
	if fx == nil {
		return false
	}
	for _, got := range fx.BallIDs {
		if got == id {
			return true
		}
	}
	return false
}
