package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the pattern catalog",
	Long: `Shows every pattern that can be stamped with R in the viewer
or with --pattern on start, together with a small preview.`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	patterns := life.Patterns()

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range patterns {
		if len(p.Name()) > maxNameLen {
			maxNameLen = len(p.Name())
		}
	}

	for _, p := range patterns {
		rows, cols := p.Size()
		fmt.Printf("  %-*s  %-11s  %dx%d\n", maxNameLen, p.Name(), p.Kind(), rows, cols)
		for _, line := range strings.Split(p.Preview(), "\n") {
			fmt.Printf("    %s\n", line)
		}
		fmt.Println()
	}

	fmt.Println("Run 'life --pattern <name>' to start with a pattern.")
}
