package life

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 7)

	if g.Rows() != 4 {
		t.Errorf("Rows() = %d, expected 4", g.Rows())
	}
	if g.Cols() != 7 {
		t.Errorf("Cols() = %d, expected 7", g.Cols())
	}
	if g.Population() != 0 {
		t.Errorf("Population() = %d, expected 0 for a new grid", g.Population())
	}
}

func TestGridDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"zero both", 0, 0},
		{"negative", -3, -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.rows, tc.cols)
			if !g.Empty() {
				t.Fatalf("NewGrid(%d, %d) should be empty", tc.rows, tc.cols)
			}
			if g.Rows() != 0 {
				t.Errorf("Rows() = %d, expected 0", g.Rows())
			}

			// None of these may panic
			g.Set(0, 0, true)
			g.Toggle(0, 0)
			g.Clear()
			if g.Get(0, 0) {
				t.Error("Get on an empty grid should return false")
			}
		})
	}
}

func TestGridSetGetOutOfRange(t *testing.T) {
	g := NewGrid(3, 3)

	g.Set(1, 2, true)
	if !g.Get(1, 2) {
		t.Error("Get(1, 2) should be true after Set")
	}

	g.Set(-1, 0, true)
	g.Set(3, 0, true)
	g.Set(0, -1, true)
	g.Set(0, 3, true)
	if g.Population() != 1 {
		t.Errorf("out-of-range Set should be ignored, Population() = %d", g.Population())
	}

	if g.Get(-1, 0) || g.Get(0, 3) {
		t.Error("out-of-range Get should return false")
	}
}

func TestGridToggle(t *testing.T) {
	g := NewGrid(2, 2)

	g.Toggle(1, 1)
	if !g.Get(1, 1) {
		t.Error("Toggle should make a dead cell alive")
	}
	g.Toggle(1, 1)
	if g.Get(1, 1) {
		t.Error("second Toggle should make the cell dead again")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(0, 0, true)
	g.Set(2, 3, true)

	g.Clear()

	if g.Population() != 0 {
		t.Errorf("Population() = %d after Clear, expected 0", g.Population())
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("Clear changed dimensions to %dx%d", g.Rows(), g.Cols())
	}
}

func TestGridResizeShrinkPreservesOverlap(t *testing.T) {
	g := NewGrid(6, 8)
	for r := 0; r < 6; r++ {
		for c := 0; c < 8; c++ {
			g.Set(r, c, (r+c)%3 == 0)
		}
	}
	orig := g.Clone()

	g.Resize(4, 5)

	if g.Rows() != 4 || g.Cols() != 5 {
		t.Fatalf("after Resize dimensions = %dx%d, expected 4x5", g.Rows(), g.Cols())
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			if g.Get(r, c) != orig.Get(r, c) {
				t.Errorf("cell (%d, %d) = %v, expected %v", r, c, g.Get(r, c), orig.Get(r, c))
			}
		}
	}
}

func TestGridResizeGrowAddsDeadCells(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)
	g.Set(1, 1, true)

	g.Resize(4, 5)

	if !g.Get(0, 0) || !g.Get(1, 1) {
		t.Error("Resize should keep the original cells")
	}
	if g.Population() != 2 {
		t.Errorf("new cells should be dead, Population() = %d", g.Population())
	}
}

func TestGridResizeToZeroAndBack(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)

	g.Resize(0, 0)
	if !g.Empty() {
		t.Fatal("Resize(0, 0) should produce an empty grid")
	}

	g.Resize(3, 3)
	if g.Population() != 0 {
		t.Errorf("content cannot survive a zero-area resize, Population() = %d", g.Population())
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(0, 0, true)

	if g.Get(0, 0) {
		t.Error("modifying a clone should not affect the original")
	}
	if g.Equal(c) {
		t.Error("Equal() should be false for different content")
	}
}
