// tiltsim simulates a platform of rolling and fixed rocks tilting under
// gravity.
//
// Usage:
//
//	tiltsim run <file>       - Run the full spin-cycle simulation and report the load
//	tiltsim tilt <file>      - Tilt the platform once in one direction
//	tiltsim show <file>      - Display a platform file
//	tiltsim runs             - Show recorded simulation runs
//	tiltsim watch <file>     - Step through spin cycles interactively
//	tiltsim serve <file>     - Start SSH server for remote watching
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.tiltsim/runs.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltsim",
	Short: "Tilting-platform simulator",
	Long: `tiltsim simulates a grid of rolling rocks ('O') and fixed rocks ('#')
that tilts under gravity in the four cardinal directions.

A "spin cycle" tilts the platform north, west, south, then east. The run
command applies a billion spin cycles in a few hundred simulated steps by
detecting when the sequence of platform states starts repeating.

Available commands:
  run      - Run the simulation and print the total load
  tilt     - Apply a single tilt and show the result
  show     - Display a platform file
  runs     - View recorded simulation runs
  watch    - Step through spin cycles interactively
  serve    - Start SSH server for remote watching

Examples:
  tiltsim run platform.txt
  tiltsim run platform.txt --cycles 1000
  tiltsim tilt platform.txt --dir west
  tiltsim watch platform.txt
  tiltsim serve platform.txt --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiltsim/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tiltCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}
