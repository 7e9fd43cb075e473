// sokoban is a terminal Sokoban: push every box onto a storage tile.
//
// Usage:
//
//	sokoban list                - List available levels
//	sokoban play <level|file>   - Play a level by ID or from a .lvl file
//	sokoban menu                - Pick levels interactively
//	sokoban scores <level>      - Show high scores for a level
//	sokoban serve               - Start SSH server for remote play
//	sokoban check <file>        - Validate a level file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--db <path>          - Set database path (default: ~/.sokoban/scores.db)
//	--config <path>      - Use a custom config YAML
//	--levels <dir>       - Load user levels from dir (default: ~/.sokoban/levels)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes in your terminal",
	Long: `Sokoban is the warehouse puzzle: walk the keeper around the board
and push every box onto a storage tile. Boxes can only be pushed, one at
a time. Fewer moves and a faster solve give a higher score.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  check    - Validate a level file

Examples:
  sokoban list
  sokoban play 01-first-push
  sokoban play ./my-level.lvl
  sokoban menu --difficulty easy
  sokoban serve --port 2222
  sokoban scores 02-two-boxes`,
}

func init() {
	// Global persistent flags. Zero values mean "use the config file".
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with user levels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}
