package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var flagMenuDifficulty string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Sokoban with a level picker menu",
	Long: `Start Sokoban in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
After solving a level, press N to continue with the next one
or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  sokoban menu
  sokoban menu --difficulty easy
  sokoban menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "", "Only show levels rated easy, medium or hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	filter := parseFilter(flagMenuDifficulty)
	a := mustApp(true)
	defer a.close()

	if a.catalog.Len() == 0 {
		fmt.Println("No levels available.")
		return
	}

	if err := tui.RunSession(a.options(), filter); err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
