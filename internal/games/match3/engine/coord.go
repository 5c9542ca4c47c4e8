package engine

import "fmt"

// Addr is a cell address. Row grows downward, Col grows to the right.
type Addr struct {
	Row int
	Col int
}

// A is a convenience constructor for Addr.
func A(row, col int) Addr {
	return Addr{Row: row, Col: col}
}

// String returns a string representation of the address.
func (a Addr) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

// Add returns the address offset by (dr, dc).
func (a Addr) Add(dr, dc int) Addr {
	return Addr{Row: a.Row + dr, Col: a.Col + dc}
}

// Manhattan returns the Manhattan distance to another address.
func (a Addr) Manhattan(other Addr) int {
	dr := a.Row - other.Row
	dc := a.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether the two addresses share an edge.
func (a Addr) Adjacent(other Addr) bool {
	return a.Manhattan(other) == 1
}

// Orientation is the axis of a run or a rocket.
type Orientation uint8

const (
	OrientRow Orientation = iota
	OrientColumn
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientRow:
		return "row"
	case OrientColumn:
		return "column"
	default:
		return "unknown"
	}
}
