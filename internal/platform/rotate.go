package platform

// Rotate returns the grid rotated clockwise by turns quarter-turns.
// Rotations compose: Rotate(Rotate(g, a), b) equals Rotate(g, a+b).
// Rotate(g, 0) is a deep copy, never an alias of the input.
func Rotate(g Grid, turns int) Grid {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return rotateCW(g)
	case 2:
		return rotateHalf(g)
	case 3:
		return rotateHalf(rotateCW(g))
	default:
		return g.Clone()
	}
}

// rotateCW rotates 90 degrees clockwise: the bottom-left corner becomes
// the top-left corner, and a WxH grid becomes HxW.
func rotateCW(g Grid) Grid {
	out := NewGrid(g.H, g.W)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			out.Set(x, y, g.Get(y, g.H-1-x))
		}
	}
	return out
}

// rotateHalf rotates 180 degrees, keeping the dimensions.
func rotateHalf(g Grid) Grid {
	out := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.Set(x, y, g.Get(g.W-1-x, g.H-1-y))
		}
	}
	return out
}
