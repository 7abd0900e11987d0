package sim

import "github.com/ametelin/tui-simlab/internal/core"

// Speed multiplier bounds and adjustment step.
const (
	SpeedMin  = 0.01
	SpeedMax  = 10.0
	SpeedStep = 0.5

	// DefaultRecordInterval is how many simulated seconds pass between
	// history snapshots while running.
	DefaultRecordInterval = 0.5
)

// Session owns all mutable loop state of one running simulation: the working
// State, the rewind History, the speed multiplier, the pause flag and the
// history cursor. Simulations pass it by reference into update, render and
// persistence code instead of sharing ambient mutable captures.
type Session struct {
	State          State
	History        *History
	Speed          float64
	Paused         bool
	Cursor         int
	RecordInterval float64

	Tick    uint64  // Ticks advanced since reset
	SimTime float64 // Accumulated simulated seconds

	elapsed float64 // Sim-seconds since the last snapshot
}

// NewSession creates a session around the initial state. The history starts
// with a snapshot of that state at index 0 and the cursor points at it.
func NewSession(initial State, recordInterval float64) *Session {
	if recordInterval <= 0 {
		recordInterval = DefaultRecordInterval
	}
	return &Session{
		State:          initial,
		History:        NewHistory(initial),
		Speed:          1.0,
		RecordInterval: recordInterval,
	}
}

// Advance moves the simulation forward by one frame. frameDt is the raw
// frame delta in wall-clock seconds; it is scaled by the speed multiplier
// before stepping. While running, a snapshot is recorded every
// RecordInterval simulated seconds and the cursor tracks the newest entry.
// A no-op while paused.
func (s *Session) Advance(frameDt float64, step Stepper) {
	if s.Paused {
		return
	}

	dt := frameDt * s.Speed
	s.elapsed += dt
	if s.elapsed >= s.RecordInterval {
		s.History.Record(s.State)
		s.elapsed = 0
	}
	s.Cursor = s.History.MaxIndex()

	step(&s.State, dt)
	s.Tick++
	s.SimTime += dt
}

// TogglePause flips between running and paused. Resuming after a scrub
// re-synchronizes the working state from the cursor entry and truncates the
// now-stale tail, so history stays a single linear timeline.
func (s *Session) TogglePause() {
	if s.Paused {
		if s.Cursor != s.History.MaxIndex() {
			s.History.TruncateAfter(s.Cursor)
			s.State = s.History.At(s.Cursor)
		}
		s.elapsed = 0
	}
	s.Paused = !s.Paused
}

// SetCursor moves the history cursor to index i and replaces the working
// state with a clone of that snapshot. Only meaningful while paused; the
// index is clamped to the valid range.
func (s *Session) SetCursor(i int) {
	if !s.Paused {
		return
	}
	i = core.Clamp(i, 0, s.History.MaxIndex())
	s.Cursor = i
	s.State = s.History.At(i)
}

// Scrub moves the history cursor by delta entries while paused.
func (s *Session) Scrub(delta int) {
	s.SetCursor(s.Cursor + delta)
}

// AdjustSpeed changes the speed multiplier by delta, clamped to
// [SpeedMin, SpeedMax].
func (s *Session) AdjustSpeed(delta float64) {
	s.Speed = core.ClampF(s.Speed+delta, SpeedMin, SpeedMax)
}

// ReplaceState swaps in a freshly loaded working state. The history buffer
// and cursor are deliberately left untouched: loading never appends to,
// truncates, or otherwise mutates recorded history.
func (s *Session) ReplaceState(st State) {
	s.State = st
}

// Snapshots returns the number of recorded history entries.
func (s *Session) Snapshots() int {
	return s.History.Len()
}
