package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.lvl>...",
	Short: "Validate level files",
	Long: `Parse each level file, write it back out and report its size,
box count and maximum score. Exits with status 1 if any file is
malformed or does not survive the round trip unchanged.

Examples:
  sokoban check ./levels/warehouse.lvl
  sokoban check ~/.sokoban/levels/*.lvl`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d level(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lvl, err := core.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	puzzle, err := lvl.NewPuzzle(core.NopAudio{})
	if err != nil {
		return err
	}

	out, err := puzzle.MarshalText()
	if err != nil {
		return err
	}
	if string(out) != canonical(data) {
		return errors.New("round trip changed the level text")
	}

	boxes := 0
	puzzle.Grid().ForEachTile(func(_ core.Coord, kind core.TileKind) bool {
		if kind.HasBox() {
			boxes++
		}
		return true
	})
	fmt.Printf("OK    %s  %dx%d  boxes %d  stowed %d/%d\n",
		path, lvl.Width, lvl.Height, boxes, puzzle.Score(), puzzle.MaxScore())
	return nil
}

// canonical strips carriage returns and trailing blank lines, which the
// parser accepts but never writes.
func canonical(data []byte) string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	return s + "\n"
}
