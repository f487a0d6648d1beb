package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs stored in the scores database, together with
overall statistics.

Examples:
  frogger scores
  frogger scores --limit 20
  frogger scores --recent
  frogger scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(frogger.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	var scores []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
		scores, err = store.RecentRuns(frogger.GameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(frogger.GameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Frogger\n", heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-9s  %s\n", "Rank", "Player", "Score", "Cross", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-9s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-9s  %s\n",
			i+1, entry.Player, entry.Score, entry.Crossings, entry.Difficulty, dateStr)
	}

	// Show totals
	stats, err := store.GetGameStats(frogger.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Players: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Players)
	fmt.Printf("Crossings: %d  Collisions: %d\n", stats.TotalCrossings, stats.TotalCollisions)
}
