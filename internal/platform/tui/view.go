package tui

import (
	"fmt"

	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/match"
)

// drawMatch renders a match snapshot onto the screen buffer.
// Row 0 and the last row carry the two HUD lines; the arena is scaled
// into the box between them.
func drawMatch(s *core.Screen, snap match.Snapshot, arenaW, arenaH float64) {
	s.Clear()

	w, h := s.Width(), s.Height()
	if w < 20 || h < 10 {
		s.DrawTextCentered(h/2, "terminal too small")
		return
	}

	// Arena box between the HUD rows.
	boxY := 1
	boxH := h - 2
	s.DrawBox(0, boxY, w, boxH)

	innerW := float64(w - 2)
	innerH := float64(boxH - 2)
	toX := func(x float64) int { return 1 + int(x/arenaW*innerW) }
	toY := func(y float64) int { return boxY + 1 + int(y/arenaH*innerH) }

	for _, br := range snap.Bricks {
		if !br.Active {
			continue
		}
		color := core.ColorRed
		if br.Side == match.SideHuman {
			color = core.ColorBlue
		}
		if br.Type == match.BrickSpecial {
			color = core.ColorOrange
		}
		x0, x1 := toX(br.X), toX(br.X+br.Width)
		y := toY(br.Y + br.Height/2)
		for x := x0; x < x1; x++ {
			s.SetColored(x, y, '▒', color)
		}
	}

	drawPaddle(s, snap.AIPaddle, core.ColorBrightRed, toX, toY)
	drawPaddle(s, snap.HumanPaddle, core.ColorBrightGreen, toX, toY)

	for _, pu := range snap.PowerUps {
		s.SetColored(toX(pu.X), toY(pu.Y), powerUpRune(pu.Type), core.ColorBrightYellow)
	}

	for _, b := range snap.Balls {
		s.SetColored(toX(b.X), toY(b.Y), '●', core.ColorBrightWhite)
	}

	// HUD: AI on top, human on the bottom, clock centered.
	aiHUD := fmt.Sprintf(" AI  score %d  lives %d", snap.AIScore, snap.AILives)
	s.DrawTextColored(0, 0, aiHUD, core.ColorBrightRed)
	clock := fmt.Sprintf("%d:%02d", int(snap.TimeRemaining)/60, int(snap.TimeRemaining)%60)
	s.DrawTextColored(w-len(clock)-1, 0, clock, core.ColorBrightYellow)

	humanHUD := fmt.Sprintf(" YOU score %d  lives %d", snap.HumanScore, snap.HumanLives)
	s.DrawTextColored(0, h-1, humanHUD, core.ColorBrightGreen)
	controls := "←/→ move  p pause  q quit "
	s.DrawTextColored(w-len([]rune(controls))-1, h-1, controls, core.ColorGray)

	if snap.Paused {
		s.DrawTextCentered(h/2, "── PAUSED ──")
	}
	if snap.GameOver {
		s.DrawTextCentered(h/2-1, "GAME OVER")
		s.DrawTextCentered(h/2, winnerLine(snap.Winner))
		s.DrawTextCentered(h/2+2, "r restart  q quit")
	}
}

func drawPaddle(s *core.Screen, p match.PaddleView, color core.Color, toX func(float64) int, toY func(float64) int) {
	y := toY(p.Y + p.Height/2)
	x0, x1 := toX(p.X), toX(p.X+p.Width)
	for x := x0; x <= x1; x++ {
		s.SetColored(x, y, '━', color)
	}
}

func powerUpRune(t match.PowerUpType) rune {
	switch t {
	case match.PowerExpandPaddle:
		return 'E'
	case match.PowerExtraBall:
		return 'X'
	case match.PowerSlowBall:
		return 'S'
	default:
		return '?'
	}
}

func winnerLine(w match.Winner) string {
	switch w {
	case match.WinnerHuman:
		return "you win!"
	case match.WinnerAI:
		return "the machine wins"
	default:
		return "it's a tie"
	}
}
