package platform_test

import (
	"testing"

	"github.com/vovakirdan/tilt-sim/internal/platform"
)

// cellCounts returns the number of empty, round and cube cells.
func cellCounts(g platform.Grid) (empty, round, cube int) {
	for _, c := range g.Cells {
		switch c {
		case platform.CellEmpty:
			empty++
		case platform.CellRound:
			round++
		case platform.CellCube:
			cube++
		}
	}
	return empty, round, cube
}

func TestTiltWestSingleRow(t *testing.T) {
	g := mustParse(t, "..#..O..")

	got := platform.Tilt(g, platform.West)
	want := mustParse(t, "..#O....")

	if !got.Equal(want) {
		t.Errorf("Tilt west = %q, want %q", got, want)
	}
}

func TestTiltDirections(t *testing.T) {
	start := []string{
		"O..",
		".#.",
		"..O",
	}

	tests := []struct {
		name string
		dir  platform.Direction
		want []string
	}{
		{
			name: "north",
			dir:  platform.North,
			want: []string{
				"O.O",
				".#.",
				"...",
			},
		},
		{
			name: "south",
			dir:  platform.South,
			want: []string{
				"...",
				".#.",
				"O.O",
			},
		},
		{
			name: "west",
			dir:  platform.West,
			want: []string{
				"O..",
				".#.",
				"O..",
			},
		},
		{
			name: "east",
			dir:  platform.East,
			want: []string{
				"..O",
				".#.",
				"..O",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, start...)
			got := platform.Tilt(g, tt.dir)
			want := mustParse(t, tt.want...)
			if !got.Equal(want) {
				t.Errorf("Tilt %s =\n%s\nwant\n%s", tt.dir, got, want)
			}
		})
	}
}

func TestTiltRocksDoNotPassEachOther(t *testing.T) {
	g := mustParse(t, "O.O.O#..O")

	got := platform.Tilt(g, platform.West)
	want := mustParse(t, "OOO..#O..")

	if !got.Equal(want) {
		t.Errorf("Tilt west = %q, want %q", got, want)
	}
}

func TestTiltDoesNotMutateInput(t *testing.T) {
	g := mustParse(t, "..O", "...")
	before := g.Clone()

	platform.Tilt(g, platform.West)

	if !g.Equal(before) {
		t.Error("Tilt modified its input grid")
	}
}

func TestTiltFixedPoint(t *testing.T) {
	g := canonicalGrid(t)

	for _, dir := range []platform.Direction{platform.North, platform.West, platform.South, platform.East} {
		once := platform.Tilt(g, dir)
		twice := platform.Tilt(once, dir)
		if !twice.Equal(once) {
			t.Errorf("tilting %s twice should be a fixed point", dir)
		}
	}
}

func TestTiltConservesRocks(t *testing.T) {
	g := canonicalGrid(t)
	wantEmpty, wantRound, wantCube := cellCounts(g)

	for _, dir := range []platform.Direction{platform.North, platform.West, platform.South, platform.East} {
		tilted := platform.Tilt(g, dir)
		empty, round, cube := cellCounts(tilted)
		if empty != wantEmpty || round != wantRound || cube != wantCube {
			t.Errorf("tilt %s changed cell counts: got (%d,%d,%d), want (%d,%d,%d)",
				dir, empty, round, cube, wantEmpty, wantRound, wantCube)
		}
	}
}

func TestTiltNorthCanonical(t *testing.T) {
	g := canonicalGrid(t)

	got := platform.Tilt(g, platform.North)
	want := mustParse(t,
		"OOOO.#.O..",
		"OO..#....#",
		"OO..O##..O",
		"O..#.OO...",
		"........#.",
		"..#....#.#",
		"..O..#.O.O",
		"..O.......",
		"#....###..",
		"#....#....",
	)

	if !got.Equal(want) {
		t.Errorf("Tilt north =\n%s\nwant\n%s", got, want)
	}
	if load := platform.Load(got); load != 136 {
		t.Errorf("load after tilting north = %d, want 136", load)
	}
}
