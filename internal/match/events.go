package match

// Side identifies one of the two players in a match.
type Side int

const (
	SideHuman Side = iota
	SideAI
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAI
	}
	return SideHuman
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "human"
}

// Winner identifies the outcome of a finished match.
type Winner int

const (
	WinnerNone Winner = iota // Match still running
	WinnerHuman
	WinnerAI
	WinnerTie
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerHuman:
		return "human"
	case WinnerAI:
		return "ai"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// Event is a discrete state-change notification emitted during a tick.
// Events are delivered synchronously, once per occurrence, to the single
// registered handler; they are dropped when no handler is registered.
type Event interface {
	matchEvent()
}

// ScoreChangedEvent is emitted when a side's score increases.
type ScoreChangedEvent struct {
	Side  Side
	Total int
}

func (ScoreChangedEvent) matchEvent() {}

// LifeLostEvent is emitted when a side loses a ball past its edge.
type LifeLostEvent struct {
	Side      Side
	Remaining int
}

func (LifeLostEvent) matchEvent() {}

// PowerUpCaughtEvent is emitted when a paddle catches a falling power-up.
type PowerUpCaughtEvent struct {
	Side Side
	Type PowerUpType
}

func (PowerUpCaughtEvent) matchEvent() {}

// TimeTickEvent is emitted once per whole second crossed on the clock.
type TimeTickEvent struct {
	SecondsLeft int
}

func (TimeTickEvent) matchEvent() {}

// GameOverEvent is emitted exactly once when the match ends.
type GameOverEvent struct {
	Winner Winner
}

func (GameOverEvent) matchEvent() {}
