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

var flagDir string

var tiltCmd = &cobra.Command{
	Use:   "tilt <file>",
	Short: "Tilt the platform once and show the result",
	Long: `Parse the platform file, tilt it once in the given direction and print
the resulting grid together with its total load.

Examples:
  tiltsim tilt platform.txt --dir north
  tiltsim tilt platform.txt --dir west`,
	Args: cobra.ExactArgs(1),
	Run:  runTilt,
}

func init() {
	tiltCmd.Flags().StringVar(&flagDir, "dir", "north", "Tilt direction: north, west, south, east")
}

func runTilt(cmd *cobra.Command, args []string) {
	dir, err := platform.ParseDirection(flagDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	tilted := platform.Tilt(grid, dir)

	fmt.Printf("Tilted %s:\n\n", dir)
	fmt.Println(tui.RenderGrid(tilted, cfg.Display.Color))
	fmt.Println()
	fmt.Printf("Total load: %d\n", platform.Load(tilted))
}
