// life is an interactive Conway's Game of Life viewer for the terminal.
//
// Usage:
//
//	life                 - Start the viewer (paused, draw cells with space)
//	life -r              - Start in random mode with pattern injection
//	life patterns        - List the pattern catalog
//	life stats           - Show statistics of past sessions
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: from config, 60)
//	--seed <value>  - Set RNG seed for reproducible random spawning
//	--db <path>     - Set database path (default: ~/.life/sessions.db)
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
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Life runs Conway's Game of Life on a grid that fills the terminal.
The edges wrap around, so patterns leaving one side re-enter on the other.

Controls:
  Arrows/hjkl  - Move cursor
  Space        - Toggle cell under cursor
  R            - Stamp a random pattern at the cursor
  P            - Pause/resume
  [ / ]        - Slower/faster
  X            - Clear the grid
  Ctrl+S       - Save a text screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  life
  life --random
  life --pattern pulsar
  life -r --speed fast --seed 42
  life stats`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/sessions.db", "Path to session database")

	// Add subcommands
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(statsCmd)
}
