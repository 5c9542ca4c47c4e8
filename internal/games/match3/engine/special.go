package engine

// DefaultBoosterCells is how many cells one booster clears.
const DefaultBoosterCells = 10

// Detonation describes the cells cleared by a bomb, rocket or booster.
type Detonation struct {
	Origin  Addr
	Special Special // SpecialNone for the booster
	Cleared []Addr  // Affected addresses
	Score   int     // Previously non-empty cells among Cleared
}

// BombArea returns the 3x3 block centered on a, clamped to the grid.
func BombArea(g *Grid, a Addr) []Addr {
	var addrs []Addr
	for r := max(0, a.Row-1); r <= min(g.rows-1, a.Row+1); r++ {
		for c := max(0, a.Col-1); c <= min(g.cols-1, a.Col+1); c++ {
			addrs = append(addrs, A(r, c))
		}
	}
	return addrs
}

// LineArea returns every address on the row or column through a.
func LineArea(g *Grid, a Addr, o Orientation) []Addr {
	var addrs []Addr
	if o == OrientRow {
		for c := 0; c < g.cols; c++ {
			addrs = append(addrs, A(a.Row, c))
		}
		return addrs
	}
	for r := 0; r < g.rows; r++ {
		addrs = append(addrs, A(r, a.Col))
	}
	return addrs
}

// clearArea empties every address and counts the cells that were filled.
func clearArea(g *Grid, addrs []Addr) int {
	cleared := 0
	for _, a := range addrs {
		if !g.Get(a).IsEmpty() {
			cleared++
		}
		g.Clear(a)
	}
	return cleared
}

// DetonateBomb empties the 3x3 block around a. Refill is left to the cascade.
func DetonateBomb(g *Grid, a Addr) Detonation {
	if !g.InBounds(a) {
		return Detonation{Origin: a, Special: SpecialBomb}
	}
	area := BombArea(g, a)
	return Detonation{
		Origin:  a,
		Special: SpecialBomb,
		Cleared: area,
		Score:   clearArea(g, area),
	}
}

// DetonateRocket empties the full row or column through a.
func DetonateRocket(g *Grid, a Addr, o Orientation) Detonation {
	kind := RocketFor(o)
	if !g.InBounds(a) {
		return Detonation{Origin: a, Special: kind}
	}
	area := LineArea(g, a, o)
	return Detonation{
		Origin:  a,
		Special: kind,
		Cleared: area,
		Score:   clearArea(g, area),
	}
}

// Boost clears count distinct random cells and immediately rerolls them.
// Grids smaller than count are cleared entirely.
func Boost(g *Grid, src Source, count int) Detonation {
	picks := pickDistinct(src, g.Size(), count)

	area := make([]Addr, len(picks))
	for i, idx := range picks {
		area[i] = g.addrAt(idx)
	}

	score := clearArea(g, area)
	for _, a := range area {
		g.Set(a, randomTile(src))
	}

	return Detonation{
		Special: SpecialNone,
		Cleared: area,
		Score:   score,
	}
}
