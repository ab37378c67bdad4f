package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tilt-sim/internal/gridio"
)

func TestRenderGridPlain(t *testing.T) {
	g, err := gridio.Parse([]string{
		"O.#",
		"..O",
	})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := "O.#\n..O"
	if got := RenderGrid(g, false); got != want {
		t.Errorf("RenderGrid(plain) = %q, want %q", got, want)
	}
}

func TestRenderGridStyledShape(t *testing.T) {
	g, err := gridio.Parse([]string{
		"O.#",
		"..O",
		"###",
	})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	got := RenderGrid(g, true)

	// Styling may add escape sequences but never lines.
	if lines := strings.Count(got, "\n"); lines != g.H-1 {
		t.Errorf("styled output has %d newlines, want %d", lines, g.H-1)
	}

	// Every glyph survives styling.
	for _, r := range []string{"O", ".", "#"} {
		if !strings.Contains(got, r) {
			t.Errorf("styled output missing %q", r)
		}
	}
}
