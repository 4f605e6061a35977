package life

// Direction is a cursor movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Cursor is the grid cell targeted by toggle and spawn operations.
type Cursor struct {
	Row int
	Col int
}

// CenteredCursor returns a cursor at the centre of a rows x cols grid.
func CenteredCursor(rows, cols int) Cursor {
	if rows <= 0 || cols <= 0 {
		return Cursor{}
	}
	return Cursor{Row: rows / 2, Col: cols / 2}
}

// At reports whether the cursor sits on (row, col).
func (c Cursor) At(row, col int) bool {
	return c.Row == row && c.Col == col
}

// Move returns the cursor shifted one cell in dir. Movement wraps around the
// grid edges, mirroring the toroidal neighbour topology.
func (c Cursor) Move(dir Direction, rows, cols int) Cursor {
	if rows <= 0 || cols <= 0 {
		return Cursor{}
	}
	switch dir {
	case DirLeft:
		c.Col = (c.Col + cols - 1) % cols
	case DirRight:
		c.Col = (c.Col + 1) % cols
	case DirUp:
		c.Row = (c.Row + rows - 1) % rows
	case DirDown:
		c.Row = (c.Row + 1) % rows
	}
	return c
}
