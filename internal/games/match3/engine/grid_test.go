package engine

import "testing"

func TestGridBounds(t *testing.T) {
	g := quietGrid(4, 5)

	if g.Rows() != 4 || g.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 4x5", g.Rows(), g.Cols())
	}

	tests := []struct {
		name string
		addr Addr
		in   bool
	}{
		{"origin", A(0, 0), true},
		{"last", A(3, 4), true},
		{"negative row", A(-1, 0), false},
		{"negative col", A(0, -1), false},
		{"row overflow", A(4, 0), false},
		{"col overflow", A(0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InBounds(tt.addr); got != tt.in {
				t.Errorf("InBounds(%v) = %v, want %v", tt.addr, got, tt.in)
			}
			if !tt.in && !g.Get(tt.addr).IsEmpty() {
				t.Errorf("Get(%v) out of bounds should be empty", tt.addr)
			}
		})
	}
}

func TestGridSetOutOfBoundsIgnored(t *testing.T) {
	g := quietGrid(3, 3)
	before := g.Clone()

	g.Set(A(5, 5), Tile(SymbolHeart))
	g.Clear(A(-1, 2))
	g.Swap(A(0, 0), A(0, 9))

	if !g.Equal(before) {
		t.Errorf("out-of-bounds writes changed the grid:\n%s", g)
	}
}

func TestGridSwap(t *testing.T) {
	g := gridFrom(t, "12", "34")
	g.Swap(A(0, 0), A(1, 1))

	if g.Get(A(0, 0)).Symbol != 4 || g.Get(A(1, 1)).Symbol != 1 {
		t.Errorf("swap failed:\n%s", g)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := quietGrid(3, 3)
	c := g.Clone()
	c.Clear(A(1, 1))

	if g.Get(A(1, 1)).IsEmpty() {
		t.Error("clearing the clone touched the original")
	}
	if g.Equal(c) {
		t.Error("clone should differ after clear")
	}
}

func TestAddrAdjacent(t *testing.T) {
	tests := []struct {
		a, b Addr
		want bool
	}{
		{A(2, 2), A(2, 3), true},
		{A(2, 2), A(1, 2), true},
		{A(2, 2), A(3, 3), false},
		{A(2, 2), A(2, 2), false},
		{A(0, 0), A(0, 2), false},
	}
	for _, tt := range tests {
		if got := tt.a.Adjacent(tt.b); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	for _, s := range Symbols() {
		if got, ok := ParseSymbol(s.String()); !ok || got != s {
			t.Errorf("ParseSymbol(%q) = %v, %v", s.String(), got, ok)
		}
		if got, ok := ParseSymbol(string(s.Glyph())); !ok || got != s {
			t.Errorf("ParseSymbol(%q) = %v, %v", string(s.Glyph()), got, ok)
		}
	}
	if _, ok := ParseSymbol("bogus"); ok {
		t.Error("ParseSymbol accepted an unknown name")
	}
	if len(Symbols()) != int(SymbolCount) {
		t.Errorf("palette has %d symbols, want %d", len(Symbols()), SymbolCount)
	}
}
