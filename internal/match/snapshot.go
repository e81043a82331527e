package match

import (
	"hash/fnv"
	"math"
)

// BallView is a ball's externally visible state.
type BallView struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
}

// PaddleView is a paddle's externally visible state.
type PaddleView struct {
	X, Y   float64
	Width  float64
	Height float64
}

// BrickView is a brick's externally visible state.
type BrickView struct {
	Side   Side
	X, Y   float64
	Width  float64
	Height float64
	Type   BrickType
	Active bool
}

// PowerUpView is a falling pickup's externally visible state.
type PowerUpView struct {
	Type PowerUpType
	X, Y float64
	Size float64
}

// Snapshot is a point-in-time copy of the match for rendering and tests.
// It shares no memory with the live match.
type Snapshot struct {
	Balls       []BallView
	HumanPaddle PaddleView
	AIPaddle    PaddleView
	Bricks      []BrickView
	PowerUps    []PowerUpView

	HumanScore    int
	AIScore       int
	HumanLives    int
	AILives       int
	TimeRemaining float64
	Paused        bool
	GameOver      bool
	Winner        Winner
}

// Snapshot captures the current match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		HumanPaddle:   paddleView(m.HumanPaddle),
		AIPaddle:      paddleView(m.AIPaddle),
		HumanScore:    m.Scores[SideHuman],
		AIScore:       m.Scores[SideAI],
		HumanLives:    m.Lives[SideHuman],
		AILives:       m.Lives[SideAI],
		TimeRemaining: m.TimeRemaining,
		Paused:        m.Paused,
		GameOver:      m.GameOver,
		Winner:        m.Winner,
	}

	for _, b := range m.Balls {
		if !b.Active {
			continue
		}
		s.Balls = append(s.Balls, BallView{
			ID: b.ID, X: b.Pos.X, Y: b.Pos.Y,
			VX: b.Vel.X, VY: b.Vel.Y,
			Radius: b.Radius, Speed: b.Speed,
		})
	}
	for _, br := range m.Bricks {
		s.Bricks = append(s.Bricks, BrickView{
			Side: br.Side, X: br.Pos.X, Y: br.Pos.Y,
			Width: br.Width, Height: br.Height,
			Type: br.Type, Active: br.Active,
		})
	}
	for _, pu := range m.PowerUps.Pickups {
		if !pu.Active {
			continue
		}
		s.PowerUps = append(s.PowerUps, PowerUpView{
			Type: pu.Type, X: pu.Pos.X, Y: pu.Pos.Y, Size: pu.Width,
		})
	}
	return s
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Hash returns a digest of the snapshot. Two matches with the same config
// and seed, ticked identically, produce identical hashes tick for tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	writeInt := func(v int) {
		var buf [8]byte
		u := uint64(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		var buf [8]byte
		u := math.Float64bits(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeBool := func(v bool) {
		if v {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	for _, b := range s.Balls {
		writeInt(b.ID)
		writeFloat(b.X)
		writeFloat(b.Y)
		writeFloat(b.VX)
		writeFloat(b.VY)
		writeFloat(b.Speed)
	}
	writeFloat(s.HumanPaddle.X)
	writeFloat(s.HumanPaddle.Width)
	writeFloat(s.AIPaddle.X)
	writeFloat(s.AIPaddle.Width)
	for _, br := range s.Bricks {
		writeBool(br.Active)
	}
	for _, pu := range s.PowerUps {
		writeInt(int(pu.Type))
		writeFloat(pu.X)
		writeFloat(pu.Y)
	}
	writeInt(s.HumanScore)
	writeInt(s.AIScore)
	writeInt(s.HumanLives)
	writeInt(s.AILives)
	writeFloat(s.TimeRemaining)
	writeBool(s.GameOver)
	writeInt(int(s.Winner))

	return h.Sum64()
}
