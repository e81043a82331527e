package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/platform/tui"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDuration   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the AI",
	Long: `Start a duel against the AI paddle.

Controls:
  Left/Right (or A/D)  - Move paddle
  P/Esc                - Pause
  R                    - Restart (after game over)
  Q/Ctrl+C             - Quit

Difficulty presets:
  easy   - Slow, sloppy opponent; extra lives and a wider paddle
  normal - Balanced opponent
  hard   - Fast, accurate opponent; fewer lives and a narrower paddle

Examples:
  brickduel play
  brickduel play --difficulty hard
  brickduel play --duration 60
  brickduel play --config ./my-match.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Float64Var(&flagDuration, "duration", 0, "Match duration in seconds (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
			config.ApplyPreset(&cfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
	}
	if flagDuration > 0 {
		cfg.Gameplay.Duration = flagDuration
	}

	// Terminal size for the screen buffer
	rt := core.DefaultRuntimeConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(cfg, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
