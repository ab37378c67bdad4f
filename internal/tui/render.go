// Package tui provides the interactive platform watcher: lipgloss grid
// rendering, a Bubble Tea model for stepping through spin cycles, and a
// Wish SSH server for remote viewing.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-sim/internal/platform"
)

// cellStyles maps platform cells to lipgloss styles.
var cellStyles = map[platform.Cell]lipgloss.Style{
	platform.CellEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	platform.CellRound: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	platform.CellCube:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderGrid converts a grid to a styled string for display.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
// With styled=false it falls back to the plain text form.
func RenderGrid(g platform.Grid, styled bool) string {
	if !styled {
		return g.String()
	}

	var sb strings.Builder
	sb.Grow(g.W*g.H*2 + g.H)

	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells of the same kind for efficiency
		x := 0
		for x < g.W {
			start := g.Get(x, y)

			var run strings.Builder
			for x < g.W && g.Get(x, y) == start {
				run.WriteRune(g.Get(x, y).Rune())
				x++
			}

			sb.WriteString(cellStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
