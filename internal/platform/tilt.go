package platform

// tiltTurns maps a direction to the number of clockwise quarter-turns
// that bring its edge to the left side of each row, so a single leftward
// row compaction implements the tilt.
var tiltTurns = map[Direction]int{
	West:  0,
	South: 1,
	East:  2,
	North: 3,
}

// tiltRow compacts one row leftward in place: within every maximal run
// between cubes, rolling rocks pack against the left end followed by the
// empty cells. Cubes stay where they are.
func tiltRow(row []Cell) {
	rounds := 0
	empties := 0
	write := 0

	flush := func() {
		for ; rounds > 0; rounds-- {
			row[write] = CellRound
			write++
		}
		for ; empties > 0; empties-- {
			row[write] = CellEmpty
			write++
		}
	}

	for _, c := range row {
		switch c {
		case CellRound:
			rounds++
		case CellEmpty:
			empties++
		case CellCube:
			flush()
			row[write] = CellCube
			write++
		}
	}
	flush()
}

// Tilt moves every rolling rock as far as possible toward the given edge.
// Rocks stop at cubes, at rocks already at rest, or at the boundary, and
// never pass each other. Returns a new grid; the input is not modified.
func Tilt(g Grid, dir Direction) Grid {
	turns := tiltTurns[dir]
	out := Rotate(g, turns)
	for y := 0; y < out.H; y++ {
		tiltRow(out.Cells[y*out.W : (y+1)*out.W])
	}
	return Rotate(out, 4-turns)
}
