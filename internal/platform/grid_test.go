package platform_test

import (
	"testing"

	"github.com/vovakirdan/tilt-sim/internal/gridio"
	"github.com/vovakirdan/tilt-sim/internal/platform"
)

// mustParse builds a grid from lines, failing the test on bad input.
func mustParse(t *testing.T, lines ...string) platform.Grid {
	t.Helper()
	g, err := gridio.Parse(lines)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return g
}

// canonicalGrid is the 10x10 reference platform used across the tests.
func canonicalGrid(t *testing.T) platform.Grid {
	t.Helper()
	return mustParse(t,
		"O....#....",
		"O.OO#....#",
		".....##...",
		"OO.#O....O",
		".O.....O#.",
		"O.#..O.#.#",
		"..O..#O..O",
		".......O..",
		"#....###..",
		"#OO..#....",
	)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustParse(t,
		"O.#",
		"...",
	)

	clone := g.Clone()
	clone.Set(1, 1, platform.CellRound)

	if g.Get(1, 1) != platform.CellEmpty {
		t.Error("mutating a clone changed the original grid")
	}
	if !g.Equal(g.Clone()) {
		t.Error("clone should compare equal to its source")
	}
}

func TestGridEqual(t *testing.T) {
	a := mustParse(t, "O.#", "..O")
	b := mustParse(t, "O.#", "..O")
	c := mustParse(t, "O.#", "..#")
	d := mustParse(t, "O.#")

	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	if a.Equal(c) {
		t.Error("grids with different cells should not be equal")
	}
	if a.Equal(d) {
		t.Error("grids with different dimensions should not be equal")
	}
}

func TestGridKeyMatchesEqual(t *testing.T) {
	a := mustParse(t, "O.#", "..O")
	b := mustParse(t, "O.#", "..O")
	c := mustParse(t, "O.#", "O..")

	if a.Key() != b.Key() {
		t.Error("equal grids should share a key")
	}
	if a.Key() == c.Key() {
		t.Error("different grids should have different keys")
	}
}

func TestGridStringRoundTrip(t *testing.T) {
	lines := []string{
		"O....#....",
		"O.OO#....#",
		".....##...",
	}
	g := mustParse(t, lines...)

	want := "O....#....\nO.OO#....#\n.....##..."
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRotateIdentity(t *testing.T) {
	g := canonicalGrid(t)

	for _, turns := range []int{0, 4, 8} {
		rotated := platform.Rotate(g, turns)
		if !rotated.Equal(g) {
			t.Errorf("Rotate(g, %d) should equal the original grid", turns)
		}
	}

	// Rotate(g, 0) must be a defensive copy, not an alias.
	rotated := platform.Rotate(g, 0)
	rotated.Set(0, 0, platform.CellCube)
	if g.Get(0, 0) == platform.CellCube {
		t.Error("Rotate(g, 0) aliases the input grid")
	}
}

func TestRotateComposes(t *testing.T) {
	g := canonicalGrid(t)

	tests := []struct {
		name string
		got  platform.Grid
		want platform.Grid
	}{
		{"1+1 = 2", platform.Rotate(platform.Rotate(g, 1), 1), platform.Rotate(g, 2)},
		{"1+2 = 3", platform.Rotate(platform.Rotate(g, 1), 2), platform.Rotate(g, 3)},
		{"2+2 = 0", platform.Rotate(platform.Rotate(g, 2), 2), g},
		{"3+1 = 0", platform.Rotate(platform.Rotate(g, 3), 1), g},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("composed rotation differs from direct rotation")
			}
		})
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	g := mustParse(t,
		"O.#",
		"...",
	)

	// Clockwise: the bottom-left corner moves to the top-left corner.
	want := mustParse(t,
		".O",
		"..",
		".#",
	)

	got := platform.Rotate(g, 1)
	if !got.Equal(want) {
		t.Errorf("Rotate(g, 1) =\n%s\nwant\n%s", got, want)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{
			name:  "single rock on top row",
			lines: []string{"O..", "...", "..."},
			want:  3,
		},
		{
			name:  "single rock on bottom row",
			lines: []string{"...", "...", "O.."},
			want:  1,
		},
		{
			name:  "cubes carry no load",
			lines: []string{"###", "###", "###"},
			want:  0,
		},
		{
			name: "canonical grid",
			lines: []string{
				"O....#....",
				"O.OO#....#",
				".....##...",
				"OO.#O....O",
				".O.....O#.",
				"O.#..O.#.#",
				"..O..#O..O",
				".......O..",
				"#....###..",
				"#OO..#....",
			},
			want: 104,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.lines...)
			if got := platform.Load(g); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountRound(t *testing.T) {
	g := canonicalGrid(t)
	if got := g.CountRound(); got != 18 {
		t.Errorf("CountRound() = %d, want 18", got)
	}
}
