package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-sim/internal/gridio"
	"github.com/vovakirdan/tilt-sim/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [file]",
	Short: "Show recorded simulation runs",
	Long: `Display recent recorded runs from the runs database.

With a platform file argument, only runs of that input are shown.

Examples:
  tiltsim runs
  tiltsim runs platform.txt
  tiltsim runs --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.RunEntry
	if len(args) == 1 {
		grid, err := gridio.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entries, err = store.RunsForInput(storage.HashInput(grid.Key()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		if len(entries) > flagRunsLimit {
			entries = entries[:flagRunsLimit]
		}
	} else {
		entries, err = store.RecentRuns(flagRunsLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tiltsim run <file>' to record the first one!")
		return
	}

	fmt.Println("Recorded runs:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-9s  %-12s  %-10s  %-6s  %s\n", "Input", "Size", "Cycles", "Load", "Period", "Date")
	fmt.Printf("  %-8s  %-9s  %-12s  %-10s  %-6s  %s\n", "-----", "----", "------", "----", "------", "----")

	// Print runs
	for _, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Cols, e.Rows)
		period := "-"
		if e.Period > 0 {
			period = fmt.Sprintf("%d", e.Period)
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-9s  %-12d  %-10d  %-6s  %s\n", e.InputHash, size, e.Cycles, e.Load, period, dateStr)
	}
}
