// brickduel is a terminal brick-breaking duel: you defend the bottom
// wall, an AI opponent defends the top one, and the clock decides who
// broke more.
//
// Usage:
//
//	brickduel play              - Play a match
//	brickduel scores            - Show the leaderboard
//	brickduel serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.brickduel/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickduel",
	Short: "Brick Duel - break the wall before the machine does",
	Long: `Brick Duel is a terminal game: two paddles, two brick walls, one clock.
You defend the bottom edge against an AI defending the top. Break bricks
for points, catch power-ups, and do not run out of lives.

Available commands:
  play     - Play a match against the AI
  scores   - View the results leaderboard
  serve    - Start SSH server for remote play

Examples:
  brickduel play
  brickduel play --difficulty hard
  brickduel scores --interactive
  brickduel serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickduel/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
