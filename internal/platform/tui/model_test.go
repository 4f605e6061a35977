package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

func newTestModel(w, h int) (Model, *life.State) {
	opts := life.DefaultOptions()
	opts.Seed = 1
	state := life.NewState(h-statusHeight, w, opts)
	cfg := Config{
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, FrameRate: 60, Seed: 1},
	}
	return NewModel(state, cfg), state
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysApplyOnNextFrame(t *testing.T) {
	m, state := newTestModel(20, 11)
	cur := state.Cursor()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if state.Grid().Get(cur.Row, cur.Col) {
		t.Fatal("key should not take effect before the frame")
	}

	m, cmd := update(t, m, FrameMsg(time.Now()))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if !state.Grid().Get(cur.Row, cur.Col) {
		t.Error("toggle should be applied on the frame")
	}
	if len(m.pending) != 0 {
		t.Errorf("pending events = %d after frame, expected 0", len(m.pending))
	}
}

func TestQuitEndsOnFrame(t *testing.T) {
	m, state := newTestModel(20, 11)
	cur := state.Cursor()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, FrameMsg(time.Now()))

	if !isQuit(cmd) {
		t.Error("frame after ctrl+c should quit")
	}
	if !m.Quitting() {
		t.Error("Quitting() should be true")
	}
	if state.Grid().Get(cur.Row, cur.Col) {
		t.Error("events queued after quit should be discarded")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestResizeReservesStatusLine(t *testing.T) {
	m, state := newTestModel(20, 11)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 25})
	update(t, m, FrameMsg(time.Now()))

	if state.Grid().Rows() != 24 || state.Grid().Cols() != 40 {
		t.Errorf("grid is %dx%d, expected 24x40", state.Grid().Rows(), state.Grid().Cols())
	}
	if state.Cursor() != (life.Cursor{Row: 12, Col: 20}) {
		t.Errorf("Cursor() = %+v, expected recentred (12, 20)", state.Cursor())
	}
}

func TestFramesAdvanceSimulation(t *testing.T) {
	m, state := newTestModel(20, 11)
	blinker, _ := life.PatternByName("blinker")
	state.Stamp(blinker, 3, 3)

	m, _ = update(t, m, runeKey('p')) // unpause
	start := time.Unix(0, 0)
	m, _ = update(t, m, FrameMsg(start))
	m, _ = update(t, m, FrameMsg(start.Add(250*time.Millisecond)))

	if state.Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1 after 250ms at normal speed", state.Generation())
	}
	if state.View().FrameTime != 250*time.Millisecond {
		t.Errorf("FrameTime = %v, expected 250ms", state.View().FrameTime)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(60, 20)

	m, _ = update(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("? should show help")
	}
	if !strings.Contains(m.View(), "Game of Life") {
		t.Error("help view should contain the title")
	}
	if len(m.pending) != 0 {
		t.Error("help key should not queue a simulation event")
	}

	m, _ = update(t, m, runeKey('?'))
	if m.showHelp {
		t.Error("second ? should hide help")
	}
}

func TestViewHasGridAndStatus(t *testing.T) {
	m, state := newTestModel(60, 6)
	state.Grid().Set(0, 0, true)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 6 {
		t.Fatalf("View() has %d lines, expected 6", len(lines))
	}
	if !strings.Contains(lines[0], "●") {
		t.Errorf("first line should contain a live cell, got %q", lines[0])
	}
	if !strings.Contains(lines[5], "PAUSED") {
		t.Errorf("status line should show PAUSED, got %q", lines[5])
	}
}
