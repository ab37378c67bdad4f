// Package gridio reads platform grids from text. The format is a block of
// equal-length lines over the alphabet '.', '#', 'O' with no header or
// trailer.
package gridio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vovakirdan/tilt-sim/internal/platform"
)

// FormatError reports malformed grid input. Line and Col are 1-based;
// Col is 0 when the problem concerns a whole line or the whole input.
type FormatError struct {
	Line int
	Col  int
	Msg  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("gridio: %s", e.Msg)
	case e.Col == 0:
		return fmt.Sprintf("gridio: line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("gridio: line %d, column %d: %s", e.Line, e.Col, e.Msg)
	}
}

// Parse builds a grid from text lines, mapping '.' to empty, 'O' to a
// rolling rock and '#' to a fixed rock. Empty input, ragged lines and
// characters outside the alphabet yield a FormatError.
func Parse(lines []string) (platform.Grid, error) {
	if len(lines) == 0 {
		return platform.Grid{}, &FormatError{Msg: "empty grid"}
	}

	width := len(lines[0])
	if width == 0 {
		return platform.Grid{}, &FormatError{Line: 1, Msg: "empty line"}
	}

	g := platform.NewGrid(width, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return platform.Grid{}, &FormatError{
				Line: y + 1,
				Msg:  fmt.Sprintf("row length %d, want %d", len(line), width),
			}
		}
		for x := 0; x < width; x++ {
			var c platform.Cell
			switch line[x] {
			case '.':
				c = platform.CellEmpty
			case 'O':
				c = platform.CellRound
			case '#':
				c = platform.CellCube
			default:
				return platform.Grid{}, &FormatError{
					Line: y + 1,
					Col:  x + 1,
					Msg:  fmt.Sprintf("invalid character %q", line[x]),
				}
			}
			g.Set(x, y, c)
		}
	}

	return g, nil
}

// ReadFile loads and parses a grid from the file at path.
func ReadFile(path string) (platform.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return platform.Grid{}, fmt.Errorf("gridio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return platform.Grid{}, fmt.Errorf("gridio: cannot read %s: %w", path, err)
	}

	return Parse(lines)
}
