package match

import (
	"testing"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

const testDt = 1.0 / 60.0

func testConfig(seed int64) config.MatchConfig {
	cfg := config.DefaultMatchConfig()
	cfg.Seed = seed
	return cfg
}

func TestMatchDeterminism(t *testing.T) {
	// Two matches with the same seed and the same input sequence must
	// stay hash-identical tick for tick.
	run := func() []uint64 {
		m := New(testConfig(12345))
		hashes := make([]uint64, 0, 600)
		for i := 0; i < 600; i++ {
			if i%7 == 0 {
				m.SetPlayerPaddle(float64(100 + (i%5)*120))
			}
			m.Tick(testDt)
			hashes = append(hashes, m.Snapshot().Hash())
		}
		return hashes
	}

	h1 := run()
	h2 := run()
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("hashes diverge at tick %d: %d vs %d", i, h1[i], h2[i])
		}
	}
}

func TestMatchInitialState(t *testing.T) {
	cfg := testConfig(1)
	m := New(cfg)

	if len(m.Balls) != 2 {
		t.Errorf("want one ball per side, got %d", len(m.Balls))
	}
	if m.Balls[0].Vel.Y >= 0 {
		t.Errorf("human ball must launch upward, vy=%f", m.Balls[0].Vel.Y)
	}
	if m.Balls[1].Vel.Y <= 0 {
		t.Errorf("ai ball must launch downward, vy=%f", m.Balls[1].Vel.Y)
	}
	if want := 2 * cfg.Bricks.Cols * cfg.Bricks.Rows; len(m.Bricks) != want {
		t.Errorf("want %d bricks, got %d", want, len(m.Bricks))
	}
	if m.Lives[SideHuman] != cfg.Gameplay.Lives || m.Lives[SideAI] != cfg.Gameplay.Lives {
		t.Errorf("lives not initialized: %v", m.Lives)
	}
	if m.TimeRemaining != cfg.Gameplay.Duration {
		t.Errorf("clock not initialized: %f", m.TimeRemaining)
	}
}

func TestMatchReset(t *testing.T) {
	m := New(testConfig(42))
	for i := 0; i < 300; i++ {
		m.Tick(testDt)
	}
	before := m.Snapshot().Hash()

	m.Reset()

	fresh := New(testConfig(42))
	if m.Snapshot().Hash() != fresh.Snapshot().Hash() {
		t.Error("reset did not reproduce the initial state")
	}
	if m.Snapshot().Hash() == before {
		t.Error("reset left the played state in place")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := New(testConfig(7))
	for i := 0; i < 60; i++ {
		m.Tick(testDt)
	}
	m.Pause()
	before := m.Snapshot().Hash()

	for i := 0; i < 60; i++ {
		m.Tick(testDt)
	}
	if m.Snapshot().Hash() != before {
		t.Error("state changed while paused")
	}

	m.Resume()
	m.Tick(testDt)
	if m.Snapshot().Hash() == before {
		t.Error("state did not advance after resume")
	}
}

func TestScoresNonDecreasing(t *testing.T) {
	m := New(testConfig(99))
	prevHuman, prevAI := 0, 0

	for i := 0; i < 3000 && !m.GameOver; i++ {
		m.Tick(testDt)
		if m.Scores[SideHuman] < prevHuman || m.Scores[SideAI] < prevAI {
			t.Fatalf("score decreased at tick %d", i)
		}
		prevHuman, prevAI = m.Scores[SideHuman], m.Scores[SideAI]
	}
}

func TestBricksNeverReactivate(t *testing.T) {
	m := New(testConfig(5))
	dead := make(map[int]bool)

	for i := 0; i < 3000 && !m.GameOver; i++ {
		m.Tick(testDt)
		for j, br := range m.Bricks {
			if dead[j] && br.Active {
				t.Fatalf("brick %d came back to life at tick %d", j, i)
			}
			if !br.Active {
				dead[j] = true
			}
		}
	}
}

func TestTimeoutWinnerByScore(t *testing.T) {
	cfg := testConfig(3)
	cfg.Gameplay.Duration = 2
	m := New(cfg)

	// Force a score difference, then run the clock out.
	m.Scores[SideHuman] = 500
	m.Scores[SideAI] = 20

	var gameOvers []GameOverEvent
	m.OnEvent(func(e Event) {
		if ge, ok := e.(GameOverEvent); ok {
			gameOvers = append(gameOvers, ge)
		}
	})

	for i := 0; i < 200; i++ {
		m.Tick(testDt)
	}

	if !m.GameOver {
		t.Fatal("match did not end on timeout")
	}
	if m.TimeRemaining != 0 {
		t.Errorf("clock not clamped to zero: %f", m.TimeRemaining)
	}
	if len(gameOvers) != 1 {
		t.Fatalf("want exactly one game-over event, got %d", len(gameOvers))
	}
	if gameOvers[0].Winner != WinnerHuman {
		t.Errorf("winner=%v, want human", gameOvers[0].Winner)
	}
}

func TestTimeoutTie(t *testing.T) {
	cfg := testConfig(4)
	cfg.Gameplay.Duration = 1
	m := New(cfg)

	for i := 0; i < 100; i++ {
		m.Tick(testDt)
	}
	if !m.GameOver {
		t.Fatal("match did not end on timeout")
	}
	if m.Scores[SideHuman] == m.Scores[SideAI] && m.Winner != WinnerTie {
		t.Errorf("equal scores must tie, got %v", m.Winner)
	}
}

func TestLastLifeLossEndsMatch(t *testing.T) {
	cfg := testConfig(8)
	cfg.Gameplay.Lives = 1
	m := New(cfg)

	var lifeEvents []LifeLostEvent
	var gameOvers []GameOverEvent
	m.OnEvent(func(e Event) {
		switch ev := e.(type) {
		case LifeLostEvent:
			lifeEvents = append(lifeEvents, ev)
		case GameOverEvent:
			gameOvers = append(gameOvers, ev)
		}
	})

	// Park the human paddle in a corner and drop the human ball straight
	// past the bottom edge.
	ball := m.Balls[0]
	ball.Pos.X = 400
	ball.Pos.Y = 590
	ball.Vel.X = 0
	ball.Vel.Y = 400
	m.Balls[1].Active = false
	m.SetPlayerPaddle(0)

	for i := 0; i < 60 && !m.GameOver; i++ {
		m.Tick(testDt)
	}

	if !m.GameOver {
		t.Fatal("losing the last life did not end the match")
	}
	if len(lifeEvents) != 1 || lifeEvents[0].Side != SideHuman || lifeEvents[0].Remaining != 0 {
		t.Fatalf("want one human life-lost event with 0 remaining, got %+v", lifeEvents)
	}
	if len(gameOvers) != 1 || gameOvers[0].Winner != WinnerAI {
		t.Fatalf("want one game-over with winner ai, got %+v", gameOvers)
	}
	if m.Lives[SideHuman] != 0 {
		t.Errorf("human lives=%d, want 0", m.Lives[SideHuman])
	}
	// No respawn on the final life.
	if ball.Pos.Y < 590 {
		t.Errorf("ball respawned after the final life: y=%f", ball.Pos.Y)
	}
}

func TestLossRespawnsWithLivesLeft(t *testing.T) {
	cfg := testConfig(9)
	m := New(cfg)

	ball := m.Balls[0]
	ball.Pos.X = 400
	ball.Pos.Y = 590
	ball.Vel.X = 0
	ball.Vel.Y = 400
	m.Balls[1].Active = false
	m.SetPlayerPaddle(0)

	for i := 0; i < 60 && m.Lives[SideHuman] == cfg.Gameplay.Lives; i++ {
		m.Tick(testDt)
	}

	if m.Lives[SideHuman] != cfg.Gameplay.Lives-1 {
		t.Fatalf("lives=%d, want %d", m.Lives[SideHuman], cfg.Gameplay.Lives-1)
	}
	if m.GameOver {
		t.Fatal("match ended with lives remaining")
	}
	if !ball.Active {
		t.Fatal("lost ball was not respawned")
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("respawned human ball must launch upward, vy=%f", ball.Vel.Y)
	}
	if ball.Speed != 1.0 {
		t.Errorf("respawned ball speed=%f, want 1.0", ball.Speed)
	}
}

func TestBrickScoreCreditsBallDirection(t *testing.T) {
	m := New(testConfig(16))

	// An upward-moving ball destroying a brick credits the human side.
	up := m.Bricks[0]
	b := m.Balls[0]
	b.Pos = core.Vec2{X: up.Pos.X + up.Width/2, Y: up.Pos.Y + up.Height/2}
	b.Vel = core.Vec2{X: 0, Y: -300}
	m.hitBricks(b)

	if up.Active {
		t.Fatal("brick not deactivated")
	}
	if m.Scores[SideHuman] != up.Points || m.Scores[SideAI] != 0 {
		t.Errorf("upward destroyer credited wrong side: human=%d ai=%d, want human=%d ai=0",
			m.Scores[SideHuman], m.Scores[SideAI], up.Points)
	}

	// A downward-moving ball credits the AI side.
	down := m.Bricks[1]
	b.Pos = core.Vec2{X: down.Pos.X + down.Width/2, Y: down.Pos.Y + down.Height/2}
	b.Vel = core.Vec2{X: 0, Y: 300}
	m.hitBricks(b)

	if m.Scores[SideAI] != down.Points {
		t.Errorf("downward destroyer credited wrong side: ai=%d, want %d", m.Scores[SideAI], down.Points)
	}
}

func TestAILossRespawnsWithLivesLeft(t *testing.T) {
	cfg := testConfig(17)
	m := New(cfg)

	var lifeEvents []LifeLostEvent
	m.OnEvent(func(e Event) {
		if ev, ok := e.(LifeLostEvent); ok {
			lifeEvents = append(lifeEvents, ev)
		}
	})

	// Fire the AI's ball straight up past its paddle toward the top edge.
	ball := m.Balls[1]
	ball.Pos = core.Vec2{X: 400, Y: 20}
	ball.Vel = core.Vec2{X: 0, Y: -400}
	m.Balls[0].Active = false

	for i := 0; i < 60 && m.Lives[SideAI] == cfg.Gameplay.Lives; i++ {
		m.Tick(testDt)
	}

	if m.Lives[SideAI] != cfg.Gameplay.Lives-1 {
		t.Fatalf("ai lives=%d, want %d", m.Lives[SideAI], cfg.Gameplay.Lives-1)
	}
	if len(lifeEvents) != 1 || lifeEvents[0].Side != SideAI {
		t.Fatalf("want one ai life-lost event, got %+v", lifeEvents)
	}
	if m.GameOver {
		t.Fatal("match ended with ai lives remaining")
	}
	if !ball.Active {
		t.Fatal("lost ball was not respawned")
	}
	if ball.Vel.Y <= 0 {
		t.Errorf("respawned ai ball must launch downward, vy=%f", ball.Vel.Y)
	}
	if ball.Speed != 1.0 {
		t.Errorf("respawned ball speed=%f, want 1.0", ball.Speed)
	}
}

func TestAILastLifeLossEndsMatch(t *testing.T) {
	cfg := testConfig(18)
	cfg.Gameplay.Lives = 1
	m := New(cfg)

	var lifeEvents []LifeLostEvent
	var gameOvers []GameOverEvent
	m.OnEvent(func(e Event) {
		switch ev := e.(type) {
		case LifeLostEvent:
			lifeEvents = append(lifeEvents, ev)
		case GameOverEvent:
			gameOvers = append(gameOvers, ev)
		}
	})

	ball := m.Balls[1]
	ball.Pos = core.Vec2{X: 400, Y: 20}
	ball.Vel = core.Vec2{X: 0, Y: -400}
	m.Balls[0].Active = false

	for i := 0; i < 60 && !m.GameOver; i++ {
		m.Tick(testDt)
	}

	if !m.GameOver {
		t.Fatal("draining the ai's last life did not end the match")
	}
	if len(lifeEvents) != 1 || lifeEvents[0].Side != SideAI || lifeEvents[0].Remaining != 0 {
		t.Fatalf("want one ai life-lost event with 0 remaining, got %+v", lifeEvents)
	}
	if len(gameOvers) != 1 || gameOvers[0].Winner != WinnerHuman {
		t.Fatalf("want one game-over with winner human, got %+v", gameOvers)
	}
	if m.Lives[SideAI] != 0 {
		t.Errorf("ai lives=%d, want 0", m.Lives[SideAI])
	}
	// No respawn on the final life: the ball is not re-placed at the paddle.
	if ball.Pos.Y > 20 {
		t.Errorf("ball respawned after the final life: y=%f", ball.Pos.Y)
	}
}

func TestPostGameOverFreeze(t *testing.T) {
	cfg := testConfig(10)
	cfg.Gameplay.Duration = 1
	m := New(cfg)

	events := 0
	m.OnEvent(func(Event) { events++ })

	for i := 0; i < 100; i++ {
		m.Tick(testDt)
	}
	if !m.GameOver {
		t.Fatal("match did not end")
	}

	scoreH, scoreA := m.Scores[SideHuman], m.Scores[SideAI]
	livesH, livesA := m.Lives[SideHuman], m.Lives[SideAI]
	clock := m.TimeRemaining
	eventsAtEnd := events

	for i := 0; i < 100; i++ {
		m.Tick(testDt)
	}

	if m.Scores[SideHuman] != scoreH || m.Scores[SideAI] != scoreA {
		t.Error("scores changed after game over")
	}
	if m.Lives[SideHuman] != livesH || m.Lives[SideAI] != livesA {
		t.Error("lives changed after game over")
	}
	if m.TimeRemaining != clock {
		t.Error("clock moved after game over")
	}
	if events != eventsAtEnd {
		t.Error("events emitted after game over")
	}
}

func TestTimeTickOncePerSecond(t *testing.T) {
	cfg := testConfig(11)
	cfg.Gameplay.Duration = 5
	m := New(cfg)

	var ticks []int
	m.OnEvent(func(e Event) {
		if tt, ok := e.(TimeTickEvent); ok {
			ticks = append(ticks, tt.SecondsLeft)
		}
	})

	for i := 0; i < 150; i++ { // 2.5 seconds
		m.Tick(testDt)
	}

	if len(ticks) != 2 {
		t.Fatalf("want 2 time-tick events over 2.5 seconds, got %d (%v)", len(ticks), ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] != ticks[i-1]-1 {
			t.Errorf("seconds not strictly descending: %v", ticks)
		}
	}
}

func TestAIPaddleInBoundsDuringMatch(t *testing.T) {
	for _, tier := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard} {
		cfg := testConfig(13)
		cfg.AI.Tier = tier
		m := New(cfg)

		for i := 0; i < 1200 && !m.GameOver; i++ {
			m.Tick(testDt)
			if m.AIPaddle.X < 0 || m.AIPaddle.X > cfg.Arena.Width-m.AIPaddle.Width {
				t.Fatalf("tier %s: AI paddle out of bounds at tick %d: x=%f", tier, i, m.AIPaddle.X)
			}
		}
	}
}

func TestSetPlayerPaddleClamps(t *testing.T) {
	m := New(testConfig(14))

	m.SetPlayerPaddle(-50)
	if m.HumanPaddle.X != 0 {
		t.Errorf("negative x not clamped: %f", m.HumanPaddle.X)
	}
	m.SetPlayerPaddle(10000)
	if want := m.Cfg.Arena.Width - m.HumanPaddle.Width; m.HumanPaddle.X != want {
		t.Errorf("oversized x not clamped: got %f, want %f", m.HumanPaddle.X, want)
	}
}

func TestSpecialBrickSpawnsOnePowerUp(t *testing.T) {
	m := New(testConfig(15))

	var special *Brick
	for _, br := range m.Bricks {
		if br.Type == BrickSpecial {
			special = br
			break
		}
	}
	if special == nil {
		t.Skip("seed produced no special bricks")
	}

	// Isolate the special brick and drive a ball straight into it.
	for _, br := range m.Bricks {
		if br != special {
			br.Active = false
		}
	}
	b := m.Balls[0]
	b.Pos.X = special.Pos.X + special.Width/2
	b.Pos.Y = special.Pos.Y + special.Height + b.Radius + 2
	b.Vel.X = 0
	b.Vel.Y = -300
	m.Balls[1].Active = false

	for i := 0; i < 30 && special.Active; i++ {
		Integrate(b, testDt, 1.0)
		m.hitBricks(b)
	}

	if special.Active {
		t.Fatal("ball never reached the special brick")
	}
	if got := len(m.PowerUps.Pickups); got != 1 {
		t.Errorf("special brick spawned %d pickups, want 1", got)
	}
}
