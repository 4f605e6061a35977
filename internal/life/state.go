package life

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultSpawnChance is N in the 1-in-N chance of a random spawn per step.
	DefaultSpawnChance = 10

	// DefaultSpawnMargin keeps random anchors this far from the bottom and
	// right edges so that most of a pattern lands on the grid.
	DefaultSpawnMargin = 15
)

// Options configures a new State.
type Options struct {
	// RandomMode starts the simulation unpaused and enables random pattern
	// injection after each step.
	RandomMode bool

	// TickRate is the initial simulation speed.
	TickRate TickRate

	// SpawnChance is N in the 1-in-N per-step spawn probability.
	// Values <= 0 select DefaultSpawnChance.
	SpawnChance int

	// SpawnMargin is the edge margin for random anchors. Negative values
	// select DefaultSpawnMargin.
	SpawnMargin int

	// Seed seeds the RNG. Zero means seed from the current time.
	Seed int64
}

// DefaultOptions returns options for a paused, normal-speed session.
func DefaultOptions() Options {
	return Options{
		TickRate:    Normal,
		SpawnChance: DefaultSpawnChance,
		SpawnMargin: DefaultSpawnMargin,
	}
}

// State is the whole simulation and interaction state. It is owned by a
// single goroutine; nothing in it is safe for concurrent use.
type State struct {
	grid   *Grid
	cursor Cursor
	rate   TickRate
	paused bool
	engine Engine
	rng    *rand.Rand

	randomMode  bool
	spawnChance int
	spawnMargin int

	accumulator time.Duration
	lastFrame   time.Time
	frameTime   time.Duration

	generation     uint64
	peakPopulation int
	spawns         int
}

// NewState creates an all-dead rows x cols grid with a centred cursor.
func NewState(rows, cols int, opts Options) *State {
	if opts.SpawnChance <= 0 {
		opts.SpawnChance = DefaultSpawnChance
	}
	if opts.SpawnMargin < 0 {
		opts.SpawnMargin = DefaultSpawnMargin
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := NewGrid(rows, cols)
	return &State{
		grid:        grid,
		cursor:      CenteredCursor(grid.Rows(), grid.Cols()),
		rate:        opts.TickRate,
		paused:      !opts.RandomMode,
		rng:         rand.New(rand.NewPCG(uint64(seed), 0)),
		randomMode:  opts.RandomMode,
		spawnChance: opts.SpawnChance,
		spawnMargin: opts.SpawnMargin,
	}
}

// Apply performs the mutation mapped to ev. It returns true for a quit
// event. Apply does no I/O.
func (s *State) Apply(ev Event) (quit bool) {
	rows, cols := s.grid.Rows(), s.grid.Cols()

	switch ev.Kind {
	case EventMoveLeft:
		s.cursor = s.cursor.Move(DirLeft, rows, cols)
	case EventMoveRight:
		s.cursor = s.cursor.Move(DirRight, rows, cols)
	case EventMoveUp:
		s.cursor = s.cursor.Move(DirUp, rows, cols)
	case EventMoveDown:
		s.cursor = s.cursor.Move(DirDown, rows, cols)
	case EventToggle:
		s.grid.Toggle(s.cursor.Row, s.cursor.Col)
		s.trackPopulation()
	case EventPause:
		s.paused = !s.paused
	case EventSpeedUp:
		s.rate = s.rate.Faster()
	case EventSpeedDown:
		s.rate = s.rate.Slower()
	case EventClear:
		s.grid.Clear()
	case EventSpawnPattern:
		s.SpawnAtCursor()
	case EventResize:
		s.Resize(ev.Rows, ev.Cols)
	case EventQuit:
		return true
	}
	return false
}

// Frame runs the input and simulation phases of one frame. Events are
// applied in order; a quit event stops processing immediately and the rest
// are discarded. The elapsed time since the previous frame then feeds the
// step accumulator. Frame returns true if the session should end.
func (s *State) Frame(events []Event, now time.Time) (quit bool) {
	for _, ev := range events {
		if s.Apply(ev) {
			return true
		}
	}

	var delta time.Duration
	if !s.lastFrame.IsZero() {
		delta = now.Sub(s.lastFrame)
	}
	s.lastFrame = now

	s.Advance(delta)
	return false
}

// Advance adds delta to the accumulator and performs one step for every
// whole tick it holds. While paused the accumulator is left untouched, so
// resuming continues from the stored remainder. It returns the number of
// steps taken.
func (s *State) Advance(delta time.Duration) int {
	if s.paused || delta <= 0 {
		return 0
	}

	tick := s.rate.Duration()
	s.accumulator += delta

	steps := 0
	for s.accumulator >= tick {
		s.Step()
		if s.randomMode {
			s.maybeSpawnRandom()
		}
		s.accumulator -= tick
		steps++
	}
	return steps
}

// Step advances the grid one generation regardless of the paused flag.
func (s *State) Step() {
	s.grid = s.engine.Step(s.grid)
	s.generation++
	s.trackPopulation()
}

// Resize resizes the grid, keeping the overlapping top-left content, and
// recentres the cursor.
func (s *State) Resize(rows, cols int) {
	s.grid.Resize(rows, cols)
	s.cursor = CenteredCursor(s.grid.Rows(), s.grid.Cols())
}

// SpawnAtCursor stamps a uniformly chosen pattern anchored at the cursor.
func (s *State) SpawnAtCursor() Pattern {
	p := RandomPattern(s.rng)
	s.Stamp(p, s.cursor.Row, s.cursor.Col)
	return p
}

// Stamp places p with its anchor at (row, col).
func (s *State) Stamp(p Pattern, row, col int) {
	p.Stamp(s.grid, row, col)
	s.spawns++
	s.trackPopulation()
}

// maybeSpawnRandom spawns a random pattern with probability 1/spawnChance.
func (s *State) maybeSpawnRandom() {
	if s.grid.Empty() || s.rng.IntN(s.spawnChance) != 0 {
		return
	}

	p := RandomPattern(s.rng)
	row := s.rng.IntN(anchorRange(s.grid.Rows(), s.spawnMargin))
	col := s.rng.IntN(anchorRange(s.grid.Cols(), s.spawnMargin))
	s.Stamp(p, row, col)
}

// anchorRange returns the exclusive upper bound for a random anchor. When
// the dimension does not exceed the margin the whole dimension is used.
func anchorRange(n, margin int) int {
	if n > margin {
		return n - margin
	}
	return n
}

func (s *State) trackPopulation() {
	if p := s.grid.Population(); p > s.peakPopulation {
		s.peakPopulation = p
	}
}

// SetFrameTime records how long the last frame took, including rendering
// and the wait for the next frame.
func (s *State) SetFrameTime(d time.Duration) {
	s.frameTime = d
}

// Grid returns the live grid. Callers must not retain it across steps.
func (s *State) Grid() *Grid { return s.grid }

// Cursor returns the cursor position.
func (s *State) Cursor() Cursor { return s.cursor }

// TickRate returns the current simulation speed.
func (s *State) TickRate() TickRate { return s.rate }

// Paused reports whether stepping is suspended.
func (s *State) Paused() bool { return s.paused }

// RandomMode reports whether random spawning is enabled.
func (s *State) RandomMode() bool { return s.randomMode }

// Accumulated returns the time banked toward the next step.
func (s *State) Accumulated() time.Duration { return s.accumulator }

// Generation returns the number of steps taken so far.
func (s *State) Generation() uint64 { return s.generation }

// PeakPopulation returns the largest population seen so far.
func (s *State) PeakPopulation() int { return s.peakPopulation }

// Spawns returns how many patterns have been stamped.
func (s *State) Spawns() int { return s.spawns }
