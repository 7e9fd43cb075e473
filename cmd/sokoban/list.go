package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var flagListDifficulty string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus the levels found in the user
levels directory, with size, difficulty and best score.

Examples:
  sokoban list
  sokoban list --difficulty hard
  sokoban list --levels ./my-levels`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListDifficulty, "difficulty", "", "Only show levels rated easy, medium or hard")
}

func runList(_ *cobra.Command, _ []string) {
	filter := parseFilter(flagListDifficulty)
	a := mustApp(true)
	defer a.close()

	var lvls []levels.Level
	for _, lvl := range a.catalog.List() {
		if filter.Matches(lvl.Meta.Difficulty) {
			lvls = append(lvls, lvl)
		}
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	sort.SliceStable(lvls, func(i, j int) bool {
		return config.DifficultyPreset(lvls[i].Meta.Difficulty).Rank() <
			config.DifficultyPreset(lvls[j].Meta.Difficulty).Rank()
	})

	best := map[string]int{}
	if a.store != nil {
		if stats, err := a.store.GetAllLevelStats(); err == nil {
			for id, s := range stats {
				best[id] = s.HighScore
			}
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Size", "Difficulty", "Best", "Title")
	fmt.Printf("  %-*s  %-7s  %-10s  %-6s  %s\n", maxIDLen, "--", "----", "----------", "----", "-----")

	// Print levels
	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Data.Width, lvl.Data.Height)
		difficulty := lvl.Meta.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		score := "-"
		if b, ok := best[lvl.ID]; ok {
			score = fmt.Sprintf("%d", b)
		}
		fmt.Printf("  %-*s  %-7s  %-10s  %-6s  %s\n", maxIDLen, lvl.ID, size, difficulty, score, lvl.Title())
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
