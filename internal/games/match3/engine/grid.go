package engine

// Grid is the fixed-size board. Cells are stored in row-major order:
// index = row*cols + col. Dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// NewRandomGrid creates a grid filled with uniformly random plain tiles.
func NewRandomGrid(rows, cols int, src Source) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = randomTile(src)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) index(a Addr) int {
	return a.Row*g.cols + a.Col
}

func (g *Grid) addrAt(i int) Addr {
	return Addr{Row: i / g.cols, Col: i % g.cols}
}

// InBounds reports whether the address lies on the grid.
func (g *Grid) InBounds(a Addr) bool {
	return a.Row >= 0 && a.Row < g.rows && a.Col >= 0 && a.Col < g.cols
}

// Get returns the cell at a. Out-of-bounds addresses read as empty.
func (g *Grid) Get(a Addr) Cell {
	if !g.InBounds(a) {
		return Empty()
	}
	return g.cells[g.index(a)]
}

// Set stores cell at a. Out-of-bounds addresses are ignored.
func (g *Grid) Set(a Addr, cell Cell) {
	if g.InBounds(a) {
		g.cells[g.index(a)] = cell
	}
}

// Clear empties the cell at a, dropping any special kind.
func (g *Grid) Clear(a Addr) {
	g.Set(a, Empty())
}

// Swap exchanges two cells. It is a no-op if either address is off the grid.
func (g *Grid) Swap(a, b Addr) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// EmptyCount returns the number of cells awaiting refill.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, c := range g.cells {
		if !c.Filled {
			count++
		}
	}
	return count
}

// Addrs returns every address, ordered by row then column.
func (g *Grid) Addrs() []Addr {
	addrs := make([]Addr, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			addrs = append(addrs, A(r, c))
		}
	}
	return addrs
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using cell glyphs, '.' for empty.
func (g *Grid) String() string {
	out := make([]rune, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			out = append(out, '\n')
		}
		for c := 0; c < g.cols; c++ {
			cell := g.Get(A(r, c))
			if cell.IsEmpty() {
				out = append(out, '.')
				continue
			}
			out = append(out, cell.Glyph())
		}
	}
	return string(out)
}
