package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-sim/internal/config"
	"github.com/vovakirdan/tilt-sim/internal/gridio"
	"github.com/vovakirdan/tilt-sim/internal/platform"
	"github.com/vovakirdan/tilt-sim/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a platform file",
	Long: `Parse the platform file and print the grid together with its current
total load and rock counts.

Examples:
  tiltsim show platform.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	grid, err := gridio.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.RenderGrid(grid, cfg.Display.Color))
	fmt.Println()
	fmt.Printf("Size: %dx%d  Rolling rocks: %d\n", grid.W, grid.H, grid.CountRound())
	fmt.Printf("Total load: %d\n", platform.Load(grid))
}
