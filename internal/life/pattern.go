package life

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	Row int
	Col int
}

// Pattern is a named, immutable template of live cells.
type Pattern struct {
	name  string
	kind  string
	cells []Offset
}

// Name returns the display name of the pattern.
func (p Pattern) Name() string { return p.name }

// Kind returns the pattern family, "oscillator" or "spaceship".
func (p Pattern) Kind() string { return p.kind }

// Cells returns a copy of the pattern's offsets.
func (p Pattern) Cells() []Offset {
	out := make([]Offset, len(p.cells))
	copy(out, p.cells)
	return out
}

// Size returns the height and width of the pattern's bounding box.
func (p Pattern) Size() (rows, cols int) {
	for _, o := range p.cells {
		rows = max(rows, o.Row+1)
		cols = max(cols, o.Col+1)
	}
	return rows, cols
}

// Stamp sets the pattern's cells alive with its anchor at (row, col).
// Offsets that land outside the grid are dropped; stamping never wraps.
func (p Pattern) Stamp(g *Grid, row, col int) {
	for _, o := range p.cells {
		g.Set(row+o.Row, col+o.Col, true)
	}
}

// Preview renders the pattern as text using '#' for live and '.' for dead.
func (p Pattern) Preview() string {
	rows, cols := p.Size()
	g := NewGrid(rows, cols)
	p.Stamp(g, 0, 0)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			if g.Get(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// catalog is the fixed, ordered set of patterns. Random selection indexes
// into it, so adding an entry here is all a new pattern needs.
var catalog = []Pattern{
	{
		name: "Glider",
		kind: "spaceship",
		cells: []Offset{
			{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
		},
	},
	{
		name: "Blinker",
		kind: "oscillator",
		cells: []Offset{
			{1, 0}, {1, 1}, {1, 2},
		},
	},
	{
		name: "Toad",
		kind: "oscillator",
		cells: []Offset{
			{1, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 2},
		},
	},
	{
		name: "Beacon",
		kind: "oscillator",
		cells: []Offset{
			{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3},
		},
	},
	{
		name: "Pulsar",
		kind: "oscillator",
		cells: []Offset{
			{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
			{2, 0}, {2, 5}, {2, 7}, {2, 12},
			{3, 0}, {3, 5}, {3, 7}, {3, 12},
			{4, 0}, {4, 5}, {4, 7}, {4, 12},
			{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
			{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
			{8, 0}, {8, 5}, {8, 7}, {8, 12},
			{9, 0}, {9, 5}, {9, 7}, {9, 12},
			{10, 0}, {10, 5}, {10, 7}, {10, 12},
			{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
		},
	},
	{
		name: "Lightweight Spaceship",
		kind: "spaceship",
		cells: []Offset{
			{0, 1}, {0, 4}, {1, 0}, {2, 0}, {2, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3},
		},
	},
}

// Patterns returns the catalog in its fixed order.
func Patterns() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

// PatternByName looks up a pattern by name, ignoring case, spaces, dashes
// and underscores. "lwss" is accepted for the lightweight spaceship.
func PatternByName(name string) (Pattern, error) {
	key := normalizeName(name)
	if key == "lwss" {
		key = normalizeName("Lightweight Spaceship")
	}
	for _, p := range catalog {
		if normalizeName(p.name) == key {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("life: unknown pattern %q", name)
}

// RandomPattern picks a catalog entry uniformly at random.
func RandomPattern(rng *rand.Rand) Pattern {
	return catalog[rng.IntN(len(catalog))]
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
