package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-duel/internal/platform/tui"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

var (
	flagScoresTier  string
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the results leaderboard",
	Long: `Display the best match results, ordered by your score.

Examples:
  brickduel scores
  brickduel scores --difficulty hard
  brickduel scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresTier, "difficulty", "", "Filter by difficulty tier (easy, normal, hard)")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse results in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresTier, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if flagScoresTier != "" {
		fmt.Printf("Best Results - %s\n", flagScoresTier)
	} else {
		fmt.Println("Best Results")
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickduel play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-8s  %-8s  %s\n", "Rank", "You", "AI", "Winner", "Tier", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-8s  %-8s  %s\n", "----", "---", "--", "------", "----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-7d  %-7d  %-8s  %-8s  %s\n",
			i+1, r.PlayerScore, r.AIScore, r.Winner, r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoresTier != "" {
		if stats, statsErr := store.GetStats(flagScoresTier); statsErr == nil && stats.Played > 0 {
			fmt.Println()
			fmt.Printf("Played %d  won %d  lost %d  tied %d  best %d\n",
				stats.Played, stats.Won, stats.Lost, stats.Tied, stats.BestScore)
		}
	}
}
