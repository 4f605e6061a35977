package life

// neighborOffsets lists the eight Moore-neighbourhood offsets.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Next computes the following generation of g under B3/S23 with toroidal
// neighbour lookup. g is not modified.
func Next(g *Grid) *Grid {
	next := NewGrid(g.Rows(), g.Cols())
	step(g, next)
	return next
}

// step writes the next generation of cur into dst. Both grids must have the
// same dimensions and must not alias. Only cur is read.
func step(cur, dst *Grid) {
	if cur.Empty() {
		return
	}

	rows, cols := cur.Rows(), cur.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := 0
			for _, d := range neighborOffsets {
				if cur.wrapped(r+d[0], c+d[1]) {
					neighbors++
				}
			}
			alive := cur.cells[r*cols+c]
			dst.cells[r*cols+c] = neighbors == 3 || (alive && neighbors == 2)
		}
	}
}

// Engine advances grids using two alternating buffers so that steady-state
// stepping allocates nothing.
type Engine struct {
	spare *Grid
}

// Step computes the next generation of g and returns it. The returned grid
// replaces g for the caller; g itself becomes the engine's spare buffer and
// must not be used afterwards.
func (e *Engine) Step(g *Grid) *Grid {
	if g.Empty() {
		return g
	}

	dst := e.spare
	if dst == nil || dst == g || dst.cols != g.cols || len(dst.cells) != len(g.cells) {
		dst = NewGrid(g.Rows(), g.Cols())
	}

	step(g, dst)
	e.spare = g
	return dst
}
