package engine

import "testing"

func TestDetonateBomb(t *testing.T) {
	tests := []struct {
		name  string
		at    Addr
		score int
	}{
		{"center", A(3, 3), 9},
		{"corner", A(0, 0), 4},
		{"edge", A(7, 4), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := quietGrid(8, 8)
			det := DetonateBomb(g, tt.at)

			if det.Score != tt.score || len(det.Cleared) != tt.score {
				t.Errorf("score = %d, cleared = %d, want %d", det.Score, len(det.Cleared), tt.score)
			}
			if g.EmptyCount() != tt.score {
				t.Errorf("empty cells = %d, want %d", g.EmptyCount(), tt.score)
			}
		})
	}
}

func TestDetonateBombCountsOnlyFilled(t *testing.T) {
	g := quietGrid(8, 8)
	g.Clear(A(2, 2))
	g.Clear(A(4, 4))

	det := DetonateBomb(g, A(3, 3))
	if det.Score != 7 {
		t.Errorf("score = %d, want 7", det.Score)
	}
}

func TestDetonateRocket(t *testing.T) {
	g := quietGrid(8, 6)

	row := DetonateRocket(g, A(2, 5), OrientRow)
	if row.Score != 6 || row.Special != SpecialRocketRow {
		t.Errorf("row rocket = %+v", row)
	}
	for c := 0; c < 6; c++ {
		if !g.Get(A(2, c)).IsEmpty() {
			t.Errorf("cell (2,%d) not cleared", c)
		}
	}

	g = quietGrid(8, 6)
	col := DetonateRocket(g, A(2, 5), OrientColumn)
	if col.Score != 8 || col.Special != SpecialRocketColumn {
		t.Errorf("column rocket = %+v", col)
	}
}

func TestDetonateOutOfBounds(t *testing.T) {
	g := quietGrid(4, 4)
	if det := DetonateBomb(g, A(9, 9)); det.Score != 0 || len(det.Cleared) != 0 {
		t.Errorf("bomb out of bounds = %+v", det)
	}
	if g.EmptyCount() != 0 {
		t.Error("out-of-bounds detonation cleared cells")
	}
}

func TestBoost(t *testing.T) {
	g := quietGrid(8, 8)
	det := Boost(g, NewSource(7), DefaultBoosterCells)

	if len(det.Cleared) != DefaultBoosterCells {
		t.Fatalf("cleared = %d, want %d", len(det.Cleared), DefaultBoosterCells)
	}
	seen := make(map[Addr]bool)
	for _, a := range det.Cleared {
		if !g.InBounds(a) {
			t.Errorf("picked out-of-bounds %v", a)
		}
		if seen[a] {
			t.Errorf("picked %v twice", a)
		}
		seen[a] = true
	}
	if det.Score != DefaultBoosterCells {
		t.Errorf("score = %d, want %d", det.Score, DefaultBoosterCells)
	}
	assertFull(t, g)
}

func TestBoostSmallGrid(t *testing.T) {
	g := quietGrid(3, 3)
	det := Boost(g, NewSource(8), DefaultBoosterCells)

	if len(det.Cleared) != 9 || det.Score != 9 {
		t.Errorf("cleared = %d, score = %d, want 9", len(det.Cleared), det.Score)
	}
	assertFull(t, g)
}
