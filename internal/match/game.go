package match

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// Match is the aggregate simulation state for one duel. All mutation
// happens inside Tick; the caller drives ticks serially from a single
// goroutine.
type Match struct {
	Cfg config.MatchConfig

	Balls       []*Ball
	HumanPaddle *Paddle
	AIPaddle    *Paddle
	Bricks      []*Brick
	PowerUps    *PowerUpManager

	Scores        [2]int // Indexed by Side
	Lives         [2]int
	TimeRemaining float64
	Paused        bool
	GameOver      bool
	Winner        Winner

	ai         *AIController
	rng        *rand.Rand
	elapsed    float64
	nextBallID int
	handler    func(Event)
}

// New constructs a fresh match from the config. A zero seed is replaced
// with a wall-clock one; set it explicitly for reproducible matches.
func New(cfg config.MatchConfig) *Match {
	cfg.ApplyDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Match{Cfg: cfg}
	m.build()
	return m
}

// build lays out all match state from the config and seed. Shared by New
// and Reset so a reset is a full re-creation.
func (m *Match) build() {
	cfg := m.Cfg
	m.rng = rand.New(rand.NewSource(cfg.Seed))

	m.HumanPaddle = &Paddle{
		Side:     SideHuman,
		X:        (cfg.Arena.Width - cfg.Paddle.Width) / 2,
		Y:        cfg.Arena.Height - cfg.Paddle.EdgeOffset - cfg.Paddle.Height,
		Width:    cfg.Paddle.Width,
		Height:   cfg.Paddle.Height,
		MaxSpeed: cfg.Paddle.PlayerSpeed,
	}
	m.AIPaddle = &Paddle{
		Side:     SideAI,
		X:        (cfg.Arena.Width - cfg.Paddle.Width) / 2,
		Y:        cfg.Paddle.EdgeOffset,
		Width:    cfg.Paddle.Width,
		Height:   cfg.Paddle.Height,
		MaxSpeed: cfg.Paddle.AISpeed,
	}

	m.Bricks = buildWalls(cfg, m.rng)
	m.PowerUps = NewPowerUpManager(cfg.PowerUps, cfg.Arena)
	m.ai = NewAIController(cfg.AI.Tier, cfg.Arena.Width)

	m.nextBallID = 0
	m.Balls = nil
	m.Balls = append(m.Balls, m.launchBall(SideHuman), m.launchBall(SideAI))

	m.Scores = [2]int{}
	m.Lives = [2]int{SideHuman: cfg.Gameplay.Lives, SideAI: cfg.Gameplay.Lives}
	m.TimeRemaining = cfg.Gameplay.Duration
	m.elapsed = 0
	m.Paused = false
	m.GameOver = false
	m.Winner = WinnerNone
}

// launchBall creates a fresh ball at the side's paddle with a randomized
// horizontal component and the fixed vertical launch speed toward the
// opponent.
func (m *Match) launchBall(side Side) *Ball {
	b := &Ball{
		ID:     m.nextBallID,
		Radius: m.Cfg.Ball.Radius,
		Speed:  1.0,
		Owner:  side,
		Active: true,
	}
	m.nextBallID++
	m.placeAtPaddle(b, side)
	return b
}

// placeAtPaddle positions and re-launches a ball from its side's paddle.
func (m *Match) placeAtPaddle(b *Ball, side Side) {
	vx := (m.rng.Float64()*2 - 1) * m.Cfg.Ball.MaxLaunchVX
	if side == SideHuman {
		p := m.HumanPaddle
		b.Pos = core.Vec2{X: p.CenterX(), Y: p.Y - b.Radius}
		b.Vel = core.Vec2{X: vx, Y: -m.Cfg.Ball.LaunchSpeed}
	} else {
		p := m.AIPaddle
		b.Pos = core.Vec2{X: p.CenterX(), Y: p.Y + p.Height + b.Radius}
		b.Vel = core.Vec2{X: vx, Y: m.Cfg.Ball.LaunchSpeed}
	}
}

// OnEvent registers the single event handler. Events raised while no
// handler is registered are dropped.
func (m *Match) OnEvent(h func(Event)) {
	m.handler = h
}

func (m *Match) emit(e Event) {
	if m.handler != nil {
		m.handler(e)
	}
}

// SetPlayerPaddle moves the human paddle to x, clamped into the arena.
// It is accepted at any time; while paused or after game over the new
// position simply has no physical consequence.
func (m *Match) SetPlayerPaddle(x float64) {
	m.HumanPaddle.X = x
	m.HumanPaddle.ClampX(m.Cfg.Arena.Width)
}

// Pause freezes the simulation. No time or physics advances while paused.
func (m *Match) Pause() {
	if !m.GameOver {
		m.Paused = true
	}
}

// Resume unfreezes a paused match.
func (m *Match) Resume() {
	m.Paused = false
}

// Reset discards the current state and rebuilds the match from its
// config and seed. Nothing leaks across a reset.
func (m *Match) Reset() {
	m.build()
}

// Tick advances the simulation by one step of elapsed seconds. It is a
// no-op while paused; after game over only residual ball motion plays
// out, at double speed, with every other field frozen.
func (m *Match) Tick(dt float64) {
	if m.Paused {
		return
	}
	if m.GameOver {
		for _, b := range m.Balls {
			if b.Active {
				Integrate(b, dt, OvertimeMultiplier)
			}
		}
		return
	}

	m.elapsed += dt

	before := int(math.Floor(m.TimeRemaining))
	m.TimeRemaining -= dt
	if m.TimeRemaining <= 0 {
		m.TimeRemaining = 0
		m.endByTimeout()
		return
	}
	if after := int(math.Floor(m.TimeRemaining)); after != before {
		m.emit(TimeTickEvent{SecondsLeft: after})
	}

	m.ai.Update(m.AIPaddle, m.Balls, m.Bricks, dt, m.rng)

	m.PowerUps.Expire(m.elapsed, m.Cfg.Arena.Width, m.HumanPaddle, m.AIPaddle, m.Balls)
	for _, c := range m.PowerUps.Fall(dt, m.HumanPaddle, m.AIPaddle) {
		m.applyCatch(c)
		m.emit(PowerUpCaughtEvent{Side: c.Side, Type: c.Type})
	}

	for _, b := range m.Balls {
		if !b.Active {
			continue
		}
		Integrate(b, dt, 1.0)

		// Loss is checked before wall resolution: the top wall would
		// otherwise reflect the ball back before the AI-side crossing is
		// ever seen.
		if side, lost := DetectLoss(b, m.Cfg.Arena.Height); lost {
			m.loseBall(b, side)
			if m.GameOver {
				return
			}
			continue
		}

		ResolveWalls(b, m.Cfg.Arena.Width)

		if HitsPaddle(b, m.HumanPaddle) {
			BouncePaddle(b, m.HumanPaddle)
		} else if HitsPaddle(b, m.AIPaddle) {
			BouncePaddle(b, m.AIPaddle)
		}

		m.hitBricks(b)
	}
}

// endByTimeout finishes the match on clock expiry, deciding the winner by
// score comparison.
func (m *Match) endByTimeout() {
	switch {
	case m.Scores[SideHuman] > m.Scores[SideAI]:
		m.finish(WinnerHuman)
	case m.Scores[SideHuman] < m.Scores[SideAI]:
		m.finish(WinnerAI)
	default:
		m.finish(WinnerTie)
	}
}

func (m *Match) finish(w Winner) {
	m.GameOver = true
	m.Winner = w
	m.emit(GameOverEvent{Winner: w})
}

// loseBall handles a ball crossing its side's losing edge: decrement the
// side's lives, then either respawn the ball at its paddle or end the
// match if no lives remain.
func (m *Match) loseBall(b *Ball, side Side) {
	m.Lives[side]--
	m.emit(LifeLostEvent{Side: side, Remaining: m.Lives[side]})

	if m.Lives[side] <= 0 {
		if side == SideHuman {
			m.finish(WinnerAI)
		} else {
			m.finish(WinnerHuman)
		}
		return
	}

	// Respawn with a clean speed scalar; any slow effect recorded against
	// the lost ball must not correct the replacement.
	m.PowerUps.ScrubBall(b.ID)
	b.Speed = 1.0
	m.placeAtPaddle(b, side)
}

// hitBricks resolves at most one brick collision for the ball this tick.
// The side whose score increments is inferred from the ball's vertical
// direction at the moment of impact, before the reflection inverts it: an
// upward-moving ball is the human's.
func (m *Match) hitBricks(b *Ball) {
	for _, br := range m.Bricks {
		if !br.Active {
			continue
		}
		if !core.CircleOverlapsRect(b.Pos, b.Radius, br.Rect()) {
			continue
		}

		scorer := SideAI
		if b.MovingUp() {
			scorer = SideHuman
		}

		br.Active = false
		ReflectBrick(b, br, m.rng)
		m.Scores[scorer] += br.Points
		m.emit(ScoreChangedEvent{Side: scorer, Total: m.Scores[scorer]})

		if br.Type == BrickSpecial {
			m.PowerUps.Spawn(br, m.rng)
		}
		return
	}
}

// applyCatch applies one caught power-up to the catching side.
func (m *Match) applyCatch(c Catch) {
	switch c.Type {
	case PowerExpandPaddle:
		p := m.HumanPaddle
		if c.Side == SideAI {
			p = m.AIPaddle
		}
		m.PowerUps.ApplyExpand(p, c.Side, m.elapsed, m.Cfg.Arena.Width)
	case PowerSlowBall:
		m.PowerUps.ApplySlow(m.Balls, c.Side, m.elapsed)
	case PowerExtraBall:
		m.spawnExtraBall(c.Side)
	}
}

// spawnExtraBall adds one ball for the catching side, capped by the
// per-side limit. Sides are attributed by the arena half each ball
// currently occupies. The new ball launches within ±45 degrees of
// straight toward the catcher's opponent.
func (m *Match) spawnExtraBall(side Side) {
	count := 0
	for _, b := range m.Balls {
		if b.Active && b.Half(m.Cfg.Arena.Height) == side {
			count++
		}
	}
	if count >= m.Cfg.PowerUps.MaxBallsPerSide {
		return
	}

	nb := &Ball{
		ID:     m.nextBallID,
		Radius: m.Cfg.Ball.Radius,
		Speed:  1.0,
		Owner:  side,
		Active: true,
	}
	m.nextBallID++

	// Clone the position of an existing active ball when there is one,
	// otherwise start at the catcher's paddle.
	if src := firstActive(m.Balls); src != nil {
		nb.Pos = src.Pos
	} else if side == SideHuman {
		nb.Pos = core.Vec2{X: m.HumanPaddle.CenterX(), Y: m.HumanPaddle.Y - nb.Radius}
	} else {
		nb.Pos = core.Vec2{X: m.AIPaddle.CenterX(), Y: m.AIPaddle.Y + m.AIPaddle.Height + nb.Radius}
	}

	angle := (m.rng.Float64()*2 - 1) * math.Pi / 4
	vy := -math.Cos(angle) * m.Cfg.Ball.LaunchSpeed
	if side == SideAI {
		vy = -vy
	}
	nb.Vel = core.Vec2{X: math.Sin(angle) * m.Cfg.Ball.LaunchSpeed, Y: vy}

	m.Balls = append(m.Balls, nb)
}

func firstActive(balls []*Ball) *Ball {
	for _, b := range balls {
		if b.Active {
			return b
		}
	}
	return nil
}
