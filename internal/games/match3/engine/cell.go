package engine

// Special is the detonation behavior carried by a tile.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialBomb
	SpecialRocketRow
	SpecialRocketColumn
)

// String returns the special kind name.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialBomb:
		return "bomb"
	case SpecialRocketRow:
		return "rocket-row"
	case SpecialRocketColumn:
		return "rocket-column"
	default:
		return "unknown"
	}
}

// IsRocket reports whether s is a rocket of either orientation.
func (s Special) IsRocket() bool {
	return s == SpecialRocketRow || s == SpecialRocketColumn
}

// Orientation returns the axis a rocket clears. Only meaningful for rockets.
func (s Special) Orientation() Orientation {
	if s == SpecialRocketColumn {
		return OrientColumn
	}
	return OrientRow
}

// RocketFor returns the rocket kind that clears along o.
func RocketFor(o Orientation) Special {
	if o == OrientColumn {
		return SpecialRocketColumn
	}
	return SpecialRocketRow
}

// Glyph returns the character drawn for a special tile.
func (s Special) Glyph() rune {
	switch s {
	case SpecialBomb:
		return '✸'
	case SpecialRocketRow:
		return '↔'
	case SpecialRocketColumn:
		return '↕'
	default:
		return ' '
	}
}

// Cell is a single grid slot: either Empty or Filled with a symbol and an
// optional special kind. Empty only exists between a clear and its refill.
type Cell struct {
	Filled  bool
	Symbol  Symbol  // Valid only when Filled is true
	Special Special // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns a plain filled cell with the given symbol.
func Tile(s Symbol) Cell {
	return Cell{Filled: true, Symbol: s}
}

// SpecialTile returns a filled cell carrying a special kind.
func SpecialTile(s Symbol, kind Special) Cell {
	return Cell{Filled: true, Symbol: s, Special: kind}
}

// IsEmpty reports whether the cell awaits refill.
func (c Cell) IsEmpty() bool {
	return !c.Filled
}

// IsBomb reports whether the cell is a bomb.
func (c Cell) IsBomb() bool {
	return c.Filled && c.Special == SpecialBomb
}

// IsRocket reports whether the cell is a rocket.
func (c Cell) IsRocket() bool {
	return c.Filled && c.Special.IsRocket()
}

// IsSpecial reports whether the cell carries any special kind.
func (c Cell) IsSpecial() bool {
	return c.Filled && c.Special != SpecialNone
}

// Color returns the display color, ColorNone for empty cells.
func (c Cell) Color() Color {
	if !c.Filled {
		return ColorNone
	}
	return c.Symbol.Color()
}

// Glyph returns the character drawn for this cell.
func (c Cell) Glyph() rune {
	switch {
	case !c.Filled:
		return ' '
	case c.Special != SpecialNone:
		return c.Special.Glyph()
	default:
		return c.Symbol.Glyph()
	}
}

// matchKey returns the symbol this cell contributes to runs.
// Empty and special cells never take part in a run.
func (c Cell) matchKey() (Symbol, bool) {
	if !c.Filled || c.Special != SpecialNone {
		return 0, false
	}
	return c.Symbol, true
}
