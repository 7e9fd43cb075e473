package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level|file.lvl>",
	Short: "Play a level",
	Long: `Start playing the given level. The argument is either a level ID
from 'sokoban list' or a path to a .lvl file.

Controls:
  Arrows/WASD/HJKL  - Move and push
  U/Z/Backspace     - Undo last move
  R                 - Restart level
  P/Space           - Pause
  N/Enter           - Next level (after solving)
  Ctrl+S            - Save current board as a level file
  Q/Ctrl+C/Esc      - Quit

Examples:
  sokoban play 01-first-push
  sokoban play ./levels/warehouse.lvl
  sokoban play 02-two-boxes --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	a := mustApp(true)
	defer a.close()

	lvl, err := a.catalog.Resolve(args[0])
	if err != nil {
		a.close()
		if errors.Is(err, core.ErrLevelNotFound) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		} else {
			fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		}
		os.Exit(1)
	}

	opts := a.options()
	factory := tui.SokobanFactory(opts)
	game, err := factory(lvl)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	a.logger.Info("playing", "level", lvl.ID, "source", lvl.Source)
	if err := tui.RunGame(game, opts); err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
