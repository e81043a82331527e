// Package tui provides the Bubble Tea integration for the brick duel:
// the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/match"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model driving one interactive match.
type Model struct {
	game        *match.Match
	screen      *core.Screen
	store       *storage.Store
	runtime     core.RuntimeConfig
	dt          float64
	paddleStep  float64
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a Bubble Tea model for the given match.
func NewModel(game *match.Match, store *storage.Store, rt core.RuntimeConfig) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		runtime:    rt,
		dt:         1.0 / float64(rt.TickRate),
		paddleStep: game.Cfg.Paddle.PlayerSpeed / 10,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "left", "a", "h":
		m.game.SetPlayerPaddle(m.game.HumanPaddle.X - m.paddleStep)
	case "right", "d", "l":
		m.game.SetPlayerPaddle(m.game.HumanPaddle.X + m.paddleStep)

	case "p", "esc":
		if m.game.Paused {
			m.game.Resume()
		} else {
			m.game.Pause()
		}

	case "r":
		if m.game.GameOver {
			m.game.Cfg.Seed = 0 // Fresh seed for the rematch
			m.game = match.New(m.game.Cfg)
			m.resultSaved = false
		}
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick(m.dt)

	// Save the result on game over (once)
	if m.game.GameOver && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveResult(storage.MatchResult{
				Difficulty:  string(m.game.Cfg.AI.Tier),
				PlayerScore: m.game.Scores[match.SideHuman],
				AIScore:     m.game.Scores[match.SideAI],
				PlayerLives: m.game.Lives[match.SideHuman],
				AILives:     m.game.Lives[match.SideAI],
				Winner:      m.game.Winner.String(),
				Duration:    int(m.game.Cfg.Gameplay.Duration - m.game.TimeRemaining),
			})
		}
		m.resultSaved = true
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawMatch(m.screen, m.game.Snapshot(), m.game.Cfg.Arena.Width, m.game.Cfg.Arena.Height)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one match session.
// The runtime seed, when set, overrides the match config's seed.
func Run(cfg config.MatchConfig, store *storage.Store, rt core.RuntimeConfig) error {
	if rt.Seed != 0 {
		cfg.Seed = rt.Seed
	}
	model := NewModel(match.New(cfg), store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
