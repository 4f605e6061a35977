package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
)

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Spawn      key.Binding
	Pause      key.Binding
	Slower     key.Binding
	Faster     key.Binding
	Clear      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Spawn, k.Pause, k.Faster, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Spawn, k.Clear},
		{k.Pause, k.Slower, k.Faster},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Spawn: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random pattern"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Slower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "faster"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c/q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to simulation events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a simulation event.
// Returns false for keys that carry no simulation meaning.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (life.Event, bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return life.NewEvent(life.EventQuit), true
	case key.Matches(msg, k.Up):
		return life.NewEvent(life.EventMoveUp), true
	case key.Matches(msg, k.Down):
		return life.NewEvent(life.EventMoveDown), true
	case key.Matches(msg, k.Left):
		return life.NewEvent(life.EventMoveLeft), true
	case key.Matches(msg, k.Right):
		return life.NewEvent(life.EventMoveRight), true
	case key.Matches(msg, k.Toggle):
		return life.NewEvent(life.EventToggle), true
	case key.Matches(msg, k.Spawn):
		return life.NewEvent(life.EventSpawnPattern), true
	case key.Matches(msg, k.Pause):
		return life.NewEvent(life.EventPause), true
	case key.Matches(msg, k.Faster):
		return life.NewEvent(life.EventSpeedUp), true
	case key.Matches(msg, k.Slower):
		return life.NewEvent(life.EventSpeedDown), true
	case key.Matches(msg, k.Clear):
		return life.NewEvent(life.EventClear), true
	}
	return life.Event{}, false
}
