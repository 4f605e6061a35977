package life

import (
	"fmt"
	"strings"
	"time"
)

// TickRate selects how long one simulation step lasts.
type TickRate int

const (
	Slow TickRate = iota
	Normal
	Fast
)

// tickRates is indexed by TickRate. Cycling is modulo its length.
var tickRates = []struct {
	name     string
	duration time.Duration
}{
	Slow:   {"slow", time.Second},
	Normal: {"normal", 200 * time.Millisecond},
	Fast:   {"fast", 100 * time.Millisecond},
}

// Duration returns the wall-clock length of one simulation step.
func (t TickRate) Duration() time.Duration {
	return tickRates[t.index()].duration
}

// Faster returns the next rate, wrapping from Fast to Slow.
func (t TickRate) Faster() TickRate {
	return TickRate((t.index() + 1) % len(tickRates))
}

// Slower returns the previous rate, wrapping from Slow to Fast.
func (t TickRate) Slower() TickRate {
	return TickRate((t.index() + len(tickRates) - 1) % len(tickRates))
}

// String returns the lowercase rate name.
func (t TickRate) String() string {
	return tickRates[t.index()].name
}

func (t TickRate) index() int {
	i := int(t)
	if i < 0 || i >= len(tickRates) {
		return int(Normal)
	}
	return i
}

// ParseTickRate parses a rate name (case-insensitive).
func ParseTickRate(s string) (TickRate, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, r := range tickRates {
		if r.name == name {
			return TickRate(i), nil
		}
	}
	return Normal, fmt.Errorf("life: unknown tick rate %q", s)
}
