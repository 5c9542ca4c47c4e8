package engine

// MinRunLength is the shortest run that clears.
const MinRunLength = 3

// Run is a maximal line of identical plain symbols along one axis.
type Run struct {
	Symbol      Symbol
	Orientation Orientation
	Start       Addr // First cell (leftmost or topmost)
	End         Addr // Last cell; special tiles spawn here
	Length      int
}

// Addrs returns the cells covered by the run, from Start to End.
func (r Run) Addrs() []Addr {
	addrs := make([]Addr, r.Length)
	for k := range r.Length {
		if r.Orientation == OrientRow {
			addrs[k] = r.Start.Add(0, k)
		} else {
			addrs[k] = r.Start.Add(k, 0)
		}
	}
	return addrs
}

// Reward returns the special tile a run of this length creates.
func (r Run) Reward() Special {
	switch {
	case r.Length == 4:
		return SpecialBomb
	case r.Length >= 5:
		return RocketFor(r.Orientation)
	default:
		return SpecialNone
	}
}

// Placement records a special tile created at an address.
type Placement struct {
	At      Addr
	Special Special
}

// ScanResult summarizes one match pass.
type ScanResult struct {
	Matched  bool
	Score    int // One point per cleared cell, per run
	Stars    int // Star symbols cleared
	Runs     []Run
	Specials []Placement
}

// FindRuns returns every run of length >= MinRunLength. Rows are scanned
// first (top to bottom), then columns (left to right). A cell may belong to
// both a row run and a column run.
func FindRuns(g *Grid) []Run {
	var runs []Run

	for r := 0; r < g.rows; r++ {
		runs = appendLineRuns(runs, g, A(r, 0), 0, 1, g.cols, OrientRow)
	}
	for c := 0; c < g.cols; c++ {
		runs = appendLineRuns(runs, g, A(0, c), 1, 0, g.rows, OrientColumn)
	}

	return runs
}

// appendLineRuns scans one line of n cells starting at origin and stepping by
// (dr, dc).
func appendLineRuns(runs []Run, g *Grid, origin Addr, dr, dc, n int, o Orientation) []Run {
	i := 0
	for i < n {
		start := origin.Add(dr*i, dc*i)
		sym, ok := g.Get(start).matchKey()
		if !ok {
			i++
			continue
		}

		j := i + 1
		for j < n {
			next, ok := g.Get(origin.Add(dr*j, dc*j)).matchKey()
			if !ok || next != sym {
				break
			}
			j++
		}

		if length := j - i; length >= MinRunLength {
			runs = append(runs, Run{
				Symbol:      sym,
				Orientation: o,
				Start:       start,
				End:         origin.Add(dr*(j-1), dc*(j-1)),
				Length:      length,
			})
		}
		i = j
	}
	return runs
}

// HasRun reports whether the grid holds any run.
func HasRun(g *Grid) bool {
	return len(FindRuns(g)) > 0
}

// Scan detects runs on the current grid, then clears them by rerolling each
// run cell in place with a fresh symbol. Runs of 4 leave a bomb at their end
// address, runs of 5+ leave a rocket along the run's axis. Detection happens
// before any reroll, so row and column passes see the same grid, and specials
// are placed only after all runs have been rerolled.
// A grid without runs is left untouched.
func Scan(g *Grid, src Source) ScanResult {
	runs := FindRuns(g)
	if len(runs) == 0 {
		return ScanResult{}
	}

	res := ScanResult{Matched: true, Runs: runs}
	for _, run := range runs {
		res.Score += run.Length
		if run.Symbol == StarSymbol {
			res.Stars += run.Length
		}

		for _, a := range run.Addrs() {
			g.Set(a, randomTile(src))
		}
	}

	// Specials go down after every reroll so a crossing run cannot overwrite them.
	for _, run := range runs {
		if kind := run.Reward(); kind != SpecialNone {
			cell := g.Get(run.End)
			cell.Special = kind
			g.Set(run.End, cell)
			res.Specials = append(res.Specials, Placement{At: run.End, Special: kind})
		}
	}

	return res
}
