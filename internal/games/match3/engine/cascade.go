package engine

// DefaultMaxCascadeRounds bounds a single cascade. Real sources settle in a
// handful of rounds; only a degenerate source can chain this long.
const DefaultMaxCascadeRounds = 256

// CascadeResult aggregates every round of one cascade.
type CascadeResult struct {
	Rounds    int // Scans performed
	Score     int
	Stars     int
	Refilled  int // Fresh symbols drawn by gravity passes
	Runs      []Run
	Specials  []Placement
	Truncated bool // Round limit reached while runs remained
}

// ApplyGravity drops every filled cell down its column as far as it goes and
// fills the remaining top cells with fresh symbols. Columns are processed left
// to right, fresh cells top to bottom. Returns the number of symbols drawn.
func ApplyGravity(g *Grid, src Source) int {
	drawn := 0
	for c := 0; c < g.cols; c++ {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			cell := g.Get(A(r, c))
			if cell.IsEmpty() {
				continue
			}
			if r != write {
				g.Set(A(write, c), cell)
				g.Clear(A(r, c))
			}
			write--
		}
		for r := 0; r <= write; r++ {
			g.Set(A(r, c), randomTile(src))
			drawn++
		}
	}
	return drawn
}

// Resolve repeats gravity then Scan until a scan finds nothing or maxRounds
// scans have run (maxRounds <= 0 means DefaultMaxCascadeRounds). The grid is
// fully populated when Resolve returns. It is run-free unless Truncated is set,
// in which case runs left by the last round's rerolls remain on the board.
func Resolve(g *Grid, src Source, maxRounds int) CascadeResult {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxCascadeRounds
	}

	var res CascadeResult
	for {
		res.Refilled += ApplyGravity(g, src)

		scan := Scan(g, src)
		res.Rounds++
		if !scan.Matched {
			return res
		}

		res.Score += scan.Score
		res.Stars += scan.Stars
		res.Runs = append(res.Runs, scan.Runs...)
		res.Specials = append(res.Specials, scan.Specials...)

		if res.Rounds >= maxRounds {
			res.Truncated = HasRun(g)
			return res
		}
	}
}
