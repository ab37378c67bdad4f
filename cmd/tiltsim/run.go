package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-sim/internal/config"
	"github.com/vovakirdan/tilt-sim/internal/gridio"
	"github.com/vovakirdan/tilt-sim/internal/platform"
	"github.com/vovakirdan/tilt-sim/internal/storage"
)

var (
	flagCycles int
	flagNoSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run the spin-cycle simulation and print the total load",
	Long: `Parse the platform file, apply the configured number of spin cycles
(1,000,000,000 by default) and print the total load of the result.

The simulation shortcuts as soon as the sequence of platform states starts
repeating, so even a billion cycles finish in a few hundred steps.
Completed runs are recorded in the runs database unless --no-save is given.

Examples:
  tiltsim run platform.txt
  tiltsim run platform.txt --cycles 1000
  tiltsim run platform.txt --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagCycles, "cycles", 0, "Number of spin cycles (0 = use config default)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record this run in the database")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiltsim",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cycles := flagCycles
	if cycles <= 0 {
		cycles = cfg.Simulation.Cycles
	}

	grid, err := gridio.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation started",
		"file", args[0],
		"size", fmt.Sprintf("%dx%d", grid.W, grid.H),
		"cycles", cycles,
	)

	started := time.Now()
	final, report := platform.SpinN(grid, cycles)
	elapsed := time.Since(started)

	if report.LoopFound() {
		logger.Info("loop detected",
			"simulated", report.Simulated,
			"loop_start", report.LoopStart,
			"period", report.Period,
		)
	} else {
		logger.Info("no loop found", "simulated", report.Simulated)
	}
	logger.Info("simulation finished", "elapsed", elapsed)

	load := platform.Load(final)
	fmt.Printf("Total load: %d\n", load)

	if flagNoSave {
		return
	}

	// Record the run; a missing database degrades to a warning.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	entry := storage.RunEntry{
		InputHash:  storage.HashInput(grid.Key()),
		Rows:       grid.H,
		Cols:       grid.W,
		Cycles:     report.Cycles,
		Simulated:  report.Simulated,
		Load:       load,
		LoopStart:  report.LoopStart,
		Period:     report.Period,
		DurationMS: elapsed.Milliseconds(),
	}
	if _, err := store.SaveRun(entry); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
