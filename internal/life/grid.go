// Package life implements the Game of Life simulation and the interaction
// state that drives it. It has no terminal dependencies: the platform layer
// feeds it abstract events and renders the View it hands back.
package life

// Grid is a rectangular matrix of cells stored in row-major order:
// index = row*cols + col. The row count is derived from the buffer length.
type Grid struct {
	cells []bool
	cols  int
}

// NewGrid creates an all-dead grid. Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == 0 {
		cols = 0
	}
	return &Grid{
		cells: make([]bool, rows*cols),
		cols:  cols,
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g.cols == 0 {
		return 0
	}
	return len(g.cells) / g.cols
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Empty reports whether the grid has zero area.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0
}

// InBounds returns true if (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.cols
}

// Get returns the cell state. Out-of-range coordinates read as dead.
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Set assigns the cell state. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = alive
}

// Toggle flips the cell state. Out-of-range coordinates are ignored.
func (g *Grid) Toggle(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	i := row*g.cols + col
	g.cells[i] = !g.cells[i]
}

// wrapped reads a cell with toroidal addressing. Callers guarantee a
// non-empty grid.
func (g *Grid) wrapped(row, col int) bool {
	rows := g.Rows()
	row = ((row % rows) + rows) % rows
	col = ((col % g.cols) + g.cols) % g.cols
	return g.cells[row*g.cols+col]
}

// Clear kills every cell, keeping the dimensions.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Resize reallocates the grid. The overlapping top-left rectangle keeps its
// content and every new cell starts dead.
func (g *Grid) Resize(rows, cols int) {
	next := NewGrid(rows, cols)

	copyRows := min(g.Rows(), next.Rows())
	copyCols := min(g.cols, next.cols)
	for r := 0; r < copyRows; r++ {
		copy(next.cells[r*next.cols:r*next.cols+copyCols], g.cells[r*g.cols:r*g.cols+copyCols])
	}

	g.cells = next.cells
	g.cols = next.cols
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, cols: g.cols}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.cols != other.cols || len(g.cells) != len(other.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
