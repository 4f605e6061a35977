package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Config bundles everything a Model needs besides the simulation state.
type Config struct {
	Runtime core.RuntimeConfig
	Glyphs  Glyphs
	Store   *storage.Store // optional session journal
	Logger  *log.Logger    // must not write to the terminal owned by the program
}

// Model is the Bubble Tea model for the viewer. Key presses are queued and
// drained once per frame, so input, stepping and rendering follow a fixed
// per-frame order.
type Model struct {
	state     *life.State
	screen    *core.Screen
	config    Config
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	pending   []life.Event
	lastFrame time.Time
	interval  time.Duration
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model driving state.
func NewModel(state *life.State, cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Glyphs == (Glyphs{}) {
		cfg.Glyphs = DefaultGlyphs()
	}
	keys := DefaultKeyMap()

	return Model{
		state:     state,
		screen:    core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH-statusHeight),
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		interval:  frameInterval(cfg.Runtime.FrameRate),
		width:     cfg.Runtime.ScreenW,
		height:    cfg.Runtime.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(time.Now(), m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the event for a key press. UI-only keys act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.config.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.config.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if ev, ok := m.keyMapper.MapKey(msg); ok {
		m.pending = append(m.pending, ev)
	}
	return m, nil
}

// handleResize queues a grid resize; one row is kept for the status bar.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.Runtime.ScreenW = msg.Width
	m.config.Runtime.ScreenH = msg.Height

	rows := max(msg.Height-statusHeight, 0)
	m.screen.Resize(msg.Width, rows)
	m.pending = append(m.pending, life.ResizeEvent(rows, msg.Width))
	m.config.Logger.Debug("resize", "rows", rows, "cols", msg.Width)

	return m, nil
}

// handleFrame drains queued input, advances the simulation by the elapsed
// time and schedules the next frame. The view is rendered by Bubble Tea
// after this returns.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.state.SetFrameTime(now.Sub(m.lastFrame))
	}
	m.lastFrame = now

	events := m.pending
	m.pending = nil
	if m.state.Frame(events, now) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(now, m.interval)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	DrawView(m.screen, m.state.View(), m.config.Glyphs)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".life", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("life_%s.txt", timestamp))

	content := m.screen.String() + "\n" + StatusText(m.state.View()) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return renderHelp(m.help, m.keys, m.width, m.height)
	}

	v := m.state.View()
	DrawView(m.screen, v, m.config.Glyphs)
	return RenderScreen(m.screen) + "\n" + renderStatusBar(v, m.help, m.keys, m.width)
}

// Quitting reports whether the model has ended the session.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for state and blocks until the user
// quits. The program owns the terminal for its whole lifetime and restores
// it on every exit path. A summary of the session is journaled to the
// configured store, if any.
func Run(state *life.State, cfg Config) error {
	model := NewModel(state, cfg)
	logger := model.config.Logger
	started := time.Now()
	logger.Info("session started", "rows", state.Grid().Rows(), "cols", state.Grid().Cols(), "random", state.RandomMode())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()

	rec := storage.SessionRecord{
		StartedAt:       started,
		Duration:        time.Since(started),
		Generations:     state.Generation(),
		PeakPopulation:  state.PeakPopulation(),
		FinalPopulation: state.Grid().Population(),
		Spawns:          state.Spawns(),
		RandomMode:      state.RandomMode(),
		Rows:            state.Grid().Rows(),
		Cols:            state.Grid().Cols(),
	}
	logger.Info("session ended", "generations", rec.Generations, "peak", rec.PeakPopulation, "duration", rec.Duration)

	if cfg.Store != nil {
		if _, saveErr := cfg.Store.SaveSession(rec); saveErr != nil {
			logger.Warn("could not journal session", "error", saveErr)
		}
	}

	return err
}
