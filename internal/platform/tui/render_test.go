package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

func TestDrawViewColorsCursor(t *testing.T) {
	opts := life.DefaultOptions()
	opts.Seed = 3
	state := life.NewState(3, 4, opts)
	state.Grid().Set(0, 0, true)
	cur := state.Cursor()

	screen := core.NewScreen(4, 3)
	DrawView(screen, state.View(), DefaultGlyphs())

	if c := screen.GetCell(0, 0); c.Rune != '●' || c.Color != core.ColorWhite {
		t.Errorf("live cell = %+v, expected white ●", c)
	}
	if c := screen.GetCell(3, 2); c.Rune != '·' || c.Color != core.ColorDarkGray {
		t.Errorf("dead cell = %+v, expected dark gray ·", c)
	}
	if c := screen.GetCell(cur.Col, cur.Row); c.Color != core.ColorYellow {
		t.Errorf("cursor on dead cell color = %v, expected yellow", c.Color)
	}

	state.Apply(life.NewEvent(life.EventToggle))
	DrawView(screen, state.View(), DefaultGlyphs())
	if c := screen.GetCell(cur.Col, cur.Row); c.Rune != '●' || c.Color != core.ColorCyan {
		t.Errorf("cursor on live cell = %+v, expected cyan ●", c)
	}
}

func TestDrawViewClipsToScreen(t *testing.T) {
	state := life.NewState(10, 10, life.DefaultOptions())
	screen := core.NewScreen(4, 2)

	DrawView(screen, state.View(), Glyphs{Live: '#', Dead: '.'})

	if screen.String() != "....\n...." {
		t.Errorf("String() = %q, expected clipped dots", screen.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.SetCell(0, 0, core.Cell{Rune: '●', Color: core.ColorCyan})
	screen.SetCell(1, 0, core.Cell{Rune: '·', Color: core.ColorDarkGray})

	out := RenderScreen(screen)

	if !strings.Contains(out, "●") || !strings.Contains(out, "·") {
		t.Errorf("RenderScreen() lost glyphs: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have 2 lines, got %q", out)
	}
}

func TestStatusText(t *testing.T) {
	v := life.View{
		Paused:     false,
		TickRate:   life.Fast,
		Generation: 42,
		Population: 7,
		FrameTime:  16*time.Millisecond + 700*time.Microsecond,
	}

	expected := "RUNNING | speed fast | gen 42 | pop 7 | 16.7ms"
	if got := StatusText(v); got != expected {
		t.Errorf("StatusText() = %q, expected %q", got, expected)
	}
}
