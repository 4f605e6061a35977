package life

import "time"

// View is the read-only picture of a State handed to the render sink once
// per frame. It is only valid until the state is next mutated.
type View struct {
	grid       *Grid
	Cursor     Cursor
	Paused     bool
	TickRate   TickRate
	FrameTime  time.Duration
	Generation uint64
	Population int
}

// View captures the current state for rendering.
func (s *State) View() View {
	return View{
		grid:       s.grid,
		Cursor:     s.cursor,
		Paused:     s.paused,
		TickRate:   s.rate,
		FrameTime:  s.frameTime,
		Generation: s.generation,
		Population: s.grid.Population(),
	}
}

// Rows returns the grid height.
func (v View) Rows() int {
	if v.grid == nil {
		return 0
	}
	return v.grid.Rows()
}

// Cols returns the grid width.
func (v View) Cols() int {
	if v.grid == nil {
		return 0
	}
	return v.grid.Cols()
}

// Alive reports whether the cell at (row, col) is alive.
func (v View) Alive(row, col int) bool {
	if v.grid == nil {
		return false
	}
	return v.grid.Get(row, col)
}
