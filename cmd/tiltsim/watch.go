package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-sim/internal/config"
	"github.com/vovakirdan/tilt-sim/internal/gridio"
	"github.com/vovakirdan/tilt-sim/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Step through spin cycles interactively",
	Long: `Open an interactive session on the platform file.

Controls:
  Space/Enter - Apply one spin cycle
  A           - Toggle autoplay
  R           - Reset to the starting grid
  Q/Ctrl+C    - Quit

The header shows the cycle count and current load; once the sequence of
states starts repeating, the detected period is displayed.

Examples:
  tiltsim watch platform.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
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

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewModel(grid, cfg.Watch.TicksPerSecond, cfg.Display.Color, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running watch session: %v\n", err)
		os.Exit(1)
	}
}
