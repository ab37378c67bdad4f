package platform

// spinOrder is the fixed tilt sequence of one spin cycle.
var spinOrder = [4]Direction{North, West, South, East}

// Spin applies one full spin cycle: tilt North, West, South, East.
func Spin(g Grid) Grid {
	out := g
	for _, dir := range spinOrder {
		out = Tilt(out, dir)
	}
	return out
}

// SpinReport describes how a SpinN call resolved.
type SpinReport struct {
	Cycles    int // requested spin cycles
	Simulated int // spin cycles actually executed
	LoopStart int // 1-based cycle at which the repeated state first appeared; 0 if no loop was found
	Period    int // length of the detected loop; 0 if none was found
}

// LoopFound reports whether SpinN resolved via a detected loop.
func (r SpinReport) LoopFound() bool {
	return r.Period > 0
}

// SpinN applies n spin cycles, shortcutting as soon as a previously seen
// state recurs. The reachable state space is finite, so the sequence of
// grids is eventually periodic; once the grid after the current cycle
// matches the grid recorded after some earlier cycle, the remaining
// iterations collapse to an index into the recorded history modulo the
// loop length. Cost is bounded by pre-period plus period regardless of n.
//
// n <= 0 returns a copy of the input unchanged.
func SpinN(g Grid, n int) (Grid, SpinReport) {
	report := SpinReport{Cycles: n}
	if n <= 0 {
		return g.Clone(), report
	}

	// states[k] holds the grid after k+1 spin cycles; seen maps a grid
	// snapshot to its index in states for O(1) recurrence lookup.
	var states []Grid
	seen := make(map[string]int)

	cur := g
	for it := 0; it < n; it++ {
		cur = Spin(cur)
		report.Simulated = it + 1

		if i, ok := seen[cur.Key()]; ok {
			// cur equals states[i], so cycles i+1 and it+1 coincide.
			// A match always has i < len(states), hence period >= 1 and
			// the modulo below cannot divide by zero.
			period := len(states) - i
			remaining := n - (it + 1)
			report.LoopStart = i + 1
			report.Period = period
			return states[i+remaining%period], report
		}

		seen[cur.Key()] = len(states)
		states = append(states, cur)
	}

	return cur, report
}
