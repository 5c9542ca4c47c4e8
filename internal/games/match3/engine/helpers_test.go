package engine

import "testing"

// seqSource replays a fixed sequence, wrapping around.
type seqSource struct {
	vals []int
	pos  int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

// constSource always draws the same value.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

// gridFrom builds a grid from rows of digits ('0'-'7' symbols, '.' empty).
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d cells, want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			switch {
			case ch == '.':
				g.Clear(A(r, c))
			case ch >= '0' && ch <= '7':
				g.Set(A(r, c), Tile(Symbol(ch-'0')))
			default:
				t.Fatalf("bad cell %q at %d,%d", ch, r, c)
			}
		}
	}
	return g
}

// quietGrid returns a full grid with no runs: (r*3+c)%8 never repeats
// horizontally or vertically.
func quietGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(A(r, c), Tile(Symbol((r*3+c)%int(SymbolCount))))
		}
	}
	return g
}

// setRow overwrites row r with digits.
func setRow(t *testing.T, g *Grid, r int, digits string) {
	t.Helper()
	for c, ch := range digits {
		g.Set(A(r, c), Tile(Symbol(ch-'0')))
	}
}

func assertFull(t *testing.T, g *Grid) {
	t.Helper()
	if n := g.EmptyCount(); n != 0 {
		t.Fatalf("grid has %d empty cells:\n%s", n, g)
	}
}
