package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// statusHeight is the number of terminal rows reserved below the grid.
const statusHeight = 1

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var (
	statusBarStyle = lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15"))
	runningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	speedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	helpBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 2)
	helpTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).MarginBottom(1)
)

// Glyphs selects the runes used for cells.
type Glyphs struct {
	Live rune
	Dead rune
}

// DefaultGlyphs returns filled and hollow dot glyphs.
func DefaultGlyphs() Glyphs {
	return Glyphs{Live: '●', Dead: '·'}
}

// DrawView paints the grid of v into dst, one terminal cell per grid cell.
// The cursor is highlighted by color: cyan over a live cell, yellow over a
// dead one.
func DrawView(dst *core.Screen, v life.View, g Glyphs) {
	dst.Clear()
	rows := min(v.Rows(), dst.Height())
	cols := min(v.Cols(), dst.Width())

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			alive := v.Alive(r, c)
			cell := core.Cell{Rune: g.Dead, Color: core.ColorDarkGray}
			if alive {
				cell = core.Cell{Rune: g.Live, Color: core.ColorWhite}
			}
			if v.Cursor.At(r, c) {
				if alive {
					cell.Color = core.ColorCyan
				} else {
					cell.Color = core.ColorYellow
				}
			}
			dst.SetCell(c, r, cell)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// StatusText returns the plain status segment for v.
func StatusText(v life.View) string {
	state := "RUNNING"
	if v.Paused {
		state = "PAUSED"
	}
	return fmt.Sprintf("%s | speed %s | gen %d | pop %d | %s",
		state, v.TickRate, v.Generation, v.Population, formatFrameTime(v.FrameTime))
}

// renderStatusBar renders the one-line status bar: simulation state on the
// left, short key help on the right, clipped to width.
func renderStatusBar(v life.View, h help.Model, keys KeyMap, width int) string {
	state := runningStyle.Render("▶ RUNNING")
	if v.Paused {
		state = pausedStyle.Render("⏸ PAUSED")
	}

	line := fmt.Sprintf(" %s  %s  gen %d  pop %d  %s  │ %s",
		state,
		speedStyle.Render(v.TickRate.String()),
		v.Generation,
		v.Population,
		formatFrameTime(v.FrameTime),
		h.ShortHelpView(keys.ShortHelp()),
	)

	return statusBarStyle.Width(width).MaxWidth(width).MaxHeight(statusHeight).Render(line)
}

// renderHelp renders the full key help centered in a width x height area.
func renderHelp(h help.Model, keys KeyMap, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Game of Life"),
		h.FullHelpView(keys.FullHelp()),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(body))
}

func formatFrameTime(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
