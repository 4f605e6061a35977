package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit int
	flagReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics of past sessions",
	Long: `Display totals and the most recent sessions recorded by the viewer.

Examples:
  life stats
  life stats --limit 20
  life stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of recent sessions to show")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded sessions")
}

func runStats(cmd *cobra.Command, args []string) {
	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions deleted.")
		return
	}

	summary, err := store.Summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading summary: %v\n", err)
		os.Exit(1)
	}

	if summary.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life' to start one.")
		return
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session Statistics")
	fmt.Println()
	fmt.Printf("  Sessions:          %d\n", summary.Sessions)
	fmt.Printf("  Total generations: %d\n", summary.TotalGenerations)
	fmt.Printf("  Best population:   %d\n", summary.BestPeak)
	fmt.Printf("  Longest session:   %s\n", summary.LongestRun.Round(time.Second))
	fmt.Printf("  Last played:       %s\n", summary.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	// Print header
	fmt.Printf("  %-16s  %-8s  %-11s  %-5s  %-6s  %s\n", "Date", "Duration", "Generations", "Peak", "Mode", "Grid")
	fmt.Printf("  %-16s  %-8s  %-11s  %-5s  %-6s  %s\n", "----", "--------", "-----------", "----", "----", "----")

	// Print sessions
	for _, s := range sessions {
		mode := "manual"
		if s.RandomMode {
			mode = "random"
		}
		fmt.Printf("  %-16s  %-8s  %-11d  %-5d  %-6s  %dx%d\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Duration.Round(time.Second),
			s.Generations,
			s.PeakPopulation,
			mode,
			s.Rows, s.Cols,
		)
	}
}
