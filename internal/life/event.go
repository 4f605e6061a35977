package life

import "fmt"

// EventKind identifies an abstract input event, decoupled from any key
// encoding.
type EventKind int

const (
	EventNone EventKind = iota
	EventMoveLeft
	EventMoveRight
	EventMoveUp
	EventMoveDown
	EventToggle
	EventPause
	EventSpeedUp
	EventSpeedDown
	EventClear
	EventSpawnPattern
	EventResize
	EventQuit
)

var eventNames = [...]string{
	EventNone:         "None",
	EventMoveLeft:     "MoveLeft",
	EventMoveRight:    "MoveRight",
	EventMoveUp:       "MoveUp",
	EventMoveDown:     "MoveDown",
	EventToggle:       "Toggle",
	EventPause:        "Pause",
	EventSpeedUp:      "SpeedUp",
	EventSpeedDown:    "SpeedDown",
	EventClear:        "Clear",
	EventSpawnPattern: "SpawnPattern",
	EventResize:       "Resize",
	EventQuit:         "Quit",
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[k]
}

// Event is one input event. Rows and Cols are only meaningful for
// EventResize.
type Event struct {
	Kind EventKind
	Rows int
	Cols int
}

// NewEvent creates an event without payload.
func NewEvent(kind EventKind) Event {
	return Event{Kind: kind}
}

// ResizeEvent creates a resize event for the new grid dimensions.
func ResizeEvent(rows, cols int) Event {
	return Event{Kind: EventResize, Rows: rows, Cols: cols}
}

// String formats the event, including the payload for resizes.
func (e Event) String() string {
	if e.Kind == EventResize {
		return fmt.Sprintf("Resize(%d, %d)", e.Rows, e.Cols)
	}
	return e.Kind.String()
}
