package platform

import (
	"strconv"
	"strings"
)

// Grid is the platform state: a rectangular grid of cells stored in
// row-major order (index = y*W + x). Grids are treated as values; every
// operation returns a fresh Grid and leaves its input untouched.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

func (g Grid) index(x, y int) int {
	return y*g.W + x
}

// Get returns the cell at (x, y). The caller must stay in bounds.
func (g Grid) Get(x, y int) Cell {
	return g.Cells[g.index(x, y)]
}

// Set overwrites the cell at (x, y).
func (g Grid) Set(x, y int, c Cell) {
	g.Cells[g.index(x, y)] = c
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if both grids have the same dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Key returns a snapshot usable as a map key. Two grids of equal
// dimensions share a key iff they are Equal.
func (g Grid) Key() string {
	var sb strings.Builder
	sb.Grow(len(g.Cells) + 16)
	sb.WriteString(strconv.Itoa(g.W))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(g.H))
	sb.WriteByte(':')
	for _, c := range g.Cells {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// CountRound returns the number of rolling rocks on the grid.
func (g Grid) CountRound() int {
	n := 0
	for _, c := range g.Cells {
		if c == CellRound {
			n++
		}
	}
	return n
}

// String renders the grid with '.', 'O' and '#', rows joined by newlines.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Get(x, y).Rune())
		}
	}
	return sb.String()
}

// Load returns the weighted rolling-rock count: each rock contributes the
// number of rows between it and the south edge, inclusive, so rocks on
// the top row weigh H and rocks on the bottom row weigh 1.
func Load(g Grid) int {
	total := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == CellRound {
				total += g.H - y
			}
		}
	}
	return total
}
