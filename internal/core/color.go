package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for cells and overlays.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorCyan
	ColorYellow
	ColorDarkGray
)
