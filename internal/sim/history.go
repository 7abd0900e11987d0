package sim

// History is the ordered record of full-state snapshots used to scrub
// backward in time. Entries are appended while the simulation runs and
// indexed in place while it is paused. The buffer only ever shrinks through
// TruncateAfter, which implements the explicit resume-after-scrub policy.
type History struct {
	snaps []State
}

// NewHistory creates a history seeded with a snapshot of the initial state,
// so index 0 is always valid.
func NewHistory(initial State) *History {
	return &History{snaps: []State{initial.Clone()}}
}

// Record appends a snapshot of the given state.
func (h *History) Record(st State) {
	h.snaps = append(h.snaps, st.Clone())
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	return len(h.snaps)
}

// MaxIndex returns the highest valid snapshot index.
func (h *History) MaxIndex() int {
	return len(h.snaps) - 1
}

// At returns a clone of the snapshot at index i. Callers always produce i
// from the cursor bounds, so out-of-range access cannot occur; a defensive
// clamp keeps a programming error from panicking the loop.
func (h *History) At(i int) State {
	if i < 0 {
		i = 0
	}
	if i > h.MaxIndex() {
		i = h.MaxIndex()
	}
	return h.snaps[i].Clone()
}

// TruncateAfter drops every snapshot past index i. Called when the
// simulation resumes from a scrubbed position: the abandoned "future"
// entries are discarded instead of lingering unreferenced.
func (h *History) TruncateAfter(i int) {
	if i < 0 {
		i = 0
	}
	if i >= h.MaxIndex() {
		return
	}
	h.snaps = h.snaps[:i+1]
}
