package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top scores for the given level.

Examples:
  sokoban scores 01-first-push
  sokoban scores 02-two-boxes --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	a := mustApp(true)
	defer a.close()

	lvl, err := a.catalog.ByID(levelID)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	if a.store == nil {
		a.close()
		fmt.Fprintln(os.Stderr, "Error: scores database is not available")
		os.Exit(1)
	}

	// Get top scores
	scores, err := a.store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", lvl.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first high score!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %-12s  %s\n",
			i+1, entry.Score, entry.Moves, entry.Elapsed.Round(100*time.Millisecond).String(), entry.Player, dateStr)
	}

	// Show level stats
	fmt.Println()
	if stats, err := a.store.GetLevelStats(levelID); err == nil && stats != nil {
		fmt.Printf("Best: %d  Solves: %d  Fewest moves: %d\n", stats.HighScore, stats.Solves, stats.FewestMove)
	}
}
