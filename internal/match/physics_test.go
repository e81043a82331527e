package match

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/brick-duel/internal/core"
)

func TestIntegrate(t *testing.T) {
	b := &Ball{Pos: core.Vec2{X: 100, Y: 100}, Vel: core.Vec2{X: 60, Y: -120}, Speed: 1.0}
	Integrate(b, 0.5, 1.0)
	if b.Pos.X != 130 || b.Pos.Y != 40 {
		t.Errorf("integration wrong: got (%f, %f), want (130, 40)", b.Pos.X, b.Pos.Y)
	}
}

func TestIntegrateOvertimeDoubles(t *testing.T) {
	b := &Ball{Pos: core.Vec2{X: 0, Y: 0}, Vel: core.Vec2{X: 10, Y: 0}, Speed: 1.0}
	Integrate(b, 1.0, OvertimeMultiplier)
	if b.Pos.X != 20 {
		t.Errorf("overtime should double displacement: got %f, want 20", b.Pos.X)
	}
}

func TestResolveWallsTopBounce(t *testing.T) {
	// Ball above the top edge moving upward must come back down, clamped
	// to sit exactly on the wall.
	b := &Ball{Pos: core.Vec2{X: 400, Y: 4}, Vel: core.Vec2{X: 0, Y: -300}, Radius: 8, Speed: 1.0}
	ResolveWalls(b, 800)
	if b.Vel.Y != 300 {
		t.Errorf("top wall should invert vy: got %f, want 300", b.Vel.Y)
	}
	if b.Pos.Y != 8 {
		t.Errorf("top wall should clamp y to radius: got %f, want 8", b.Pos.Y)
	}
}

func TestResolveWallsKeepsBallInside(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const arenaW = 800.0

	for i := 0; i < 500; i++ {
		b := &Ball{
			Pos:    core.Vec2{X: rng.Float64()*1000 - 100, Y: rng.Float64()*200 - 100},
			Vel:    core.Vec2{X: rng.Float64()*400 - 200, Y: rng.Float64()*400 - 200},
			Radius: 8,
			Speed:  1.0,
		}
		ResolveWalls(b, arenaW)
		if b.Pos.X < b.Radius || b.Pos.X > arenaW-b.Radius {
			t.Fatalf("x out of bounds after resolution: %f", b.Pos.X)
		}
		if b.Pos.Y < b.Radius {
			t.Fatalf("y above top after resolution: %f", b.Pos.Y)
		}
	}
}

func TestResolveWallsBottomNotReflected(t *testing.T) {
	b := &Ball{Pos: core.Vec2{X: 400, Y: 1000}, Vel: core.Vec2{X: 0, Y: 300}, Radius: 8, Speed: 1.0}
	ResolveWalls(b, 800)
	if b.Vel.Y != 300 {
		t.Errorf("bottom edge must not reflect: vy changed to %f", b.Vel.Y)
	}
}

func TestBouncePaddlePreservesMagnitude(t *testing.T) {
	p := &Paddle{Side: SideHuman, X: 350, Y: 560, Width: 100, Height: 16}

	for _, hit := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		b := &Ball{
			Pos:    core.Vec2{X: p.X + hit*p.Width, Y: 558},
			Vel:    core.Vec2{X: 50, Y: 280},
			Radius: 8,
			Speed:  1.0,
		}
		before := b.Vel.Len()
		BouncePaddle(b, p)
		after := b.Vel.Len()
		if math.Abs(before-after) > 1e-9 {
			t.Errorf("hit=%f: magnitude changed from %f to %f", hit, before, after)
		}
	}
}

func TestBouncePaddleCenterHitIsVertical(t *testing.T) {
	p := &Paddle{Side: SideHuman, X: 350, Y: 560, Width: 100, Height: 16}
	b := &Ball{Pos: core.Vec2{X: 400, Y: 558}, Vel: core.Vec2{X: 0, Y: 300}, Radius: 8, Speed: 1.0}

	BouncePaddle(b, p)

	if math.Abs(b.Vel.X) > 1e-9 {
		t.Errorf("center hit should have zero vx, got %f", b.Vel.X)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("bottom-paddle bounce must send the ball upward, got vy=%f", b.Vel.Y)
	}
	if math.Abs(b.Vel.Len()-300) > 1e-9 {
		t.Errorf("magnitude changed: got %f, want 300", b.Vel.Len())
	}
}

func TestBouncePaddleTopPaddleSendsDownward(t *testing.T) {
	p := &Paddle{Side: SideAI, X: 350, Y: 40, Width: 100, Height: 16}
	b := &Ball{Pos: core.Vec2{X: 380, Y: 58}, Vel: core.Vec2{X: 30, Y: -290}, Radius: 8, Speed: 1.0}

	BouncePaddle(b, p)

	if b.Vel.Y <= 0 {
		t.Errorf("top-paddle bounce must send the ball downward, got vy=%f", b.Vel.Y)
	}
}

func TestBouncePaddleClampsCornerHits(t *testing.T) {
	// Ball slightly outside the paddle span must still leave inside the
	// bounce envelope: |angle| <= 0.35*pi means vy stays nonzero.
	p := &Paddle{Side: SideHuman, X: 350, Y: 560, Width: 100, Height: 16}
	b := &Ball{Pos: core.Vec2{X: 345, Y: 558}, Vel: core.Vec2{X: -40, Y: 290}, Radius: 8, Speed: 1.0}

	BouncePaddle(b, p)

	maxVX := math.Sin(BounceAngleSpan/2) * b.Vel.Len()
	if math.Abs(b.Vel.X) > maxVX+1e-9 {
		t.Errorf("corner hit escaped the bounce envelope: vx=%f max=%f", b.Vel.X, maxVX)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("corner hit must still go upward, got vy=%f", b.Vel.Y)
	}
}

func TestReflectBrickInvertsAcrossNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	br := &Brick{Pos: core.Vec2{X: 100, Y: 100}, Width: 90, Height: 20, Active: true}
	// Ball below the brick moving up: normal points down, vy inverts.
	b := &Ball{Pos: core.Vec2{X: 145, Y: 125}, Vel: core.Vec2{X: 0, Y: -300}, Radius: 8, Speed: 1.0}

	ReflectBrick(b, br, rng)

	if b.Vel.Y <= 0 {
		t.Errorf("reflection should send the ball back down, got vy=%f", b.Vel.Y)
	}
	// Jitter is bounded by 2.5% of the speed per axis.
	if math.Abs(b.Vel.X) > 0.025*310 {
		t.Errorf("jitter too large: vx=%f", b.Vel.X)
	}
}

func TestDetectLoss(t *testing.T) {
	cases := []struct {
		name string
		ball Ball
		side Side
		lost bool
	}{
		{"below bottom moving down", Ball{Pos: core.Vec2{X: 10, Y: 620}, Vel: core.Vec2{Y: 300}, Radius: 8}, SideHuman, true},
		{"bottom edge contact moving down", Ball{Pos: core.Vec2{X: 10, Y: 595}, Vel: core.Vec2{Y: 300}, Radius: 8}, SideHuman, true},
		{"above top moving up", Ball{Pos: core.Vec2{X: 10, Y: -20}, Vel: core.Vec2{Y: -300}, Radius: 8}, SideAI, true},
		{"top edge contact moving up", Ball{Pos: core.Vec2{X: 10, Y: 6}, Vel: core.Vec2{Y: -300}, Radius: 8}, SideAI, true},
		{"top edge contact moving down", Ball{Pos: core.Vec2{X: 10, Y: 6}, Vel: core.Vec2{Y: 300}, Radius: 8}, SideHuman, false},
		{"in play", Ball{Pos: core.Vec2{X: 10, Y: 300}, Vel: core.Vec2{Y: 300}, Radius: 8}, SideHuman, false},
	}
	for _, tc := range cases {
		b := tc.ball
		side, lost := DetectLoss(&b, 600)
		if lost != tc.lost {
			t.Errorf("%s: lost=%v, want %v", tc.name, lost, tc.lost)
		}
		if lost && side != tc.side {
			t.Errorf("%s: side=%v, want %v", tc.name, side, tc.side)
		}
	}
}
