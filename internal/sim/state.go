// Package sim provides the shared simulation engine: entity state, the
// rewind history buffer, the session that owns the interactive loop state,
// and the pan/zoom camera. It contains no terminal dependencies so every
// behavior is unit-testable.
package sim

// Entity is a simulated point with a 2D position and no other state.
type Entity struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// State holds the full working state of a simulation: the ordered entity
// collection plus a time scalar. It is cloned wholesale for history
// snapshots and for persistence.
type State struct {
	Entities []Entity `json:"entities"`
	Time     float64  `json:"time"`
}

// NewState creates a state with entities at the given positions.
func NewState(positions ...Entity) State {
	st := State{Entities: make([]Entity, len(positions))}
	copy(st.Entities, positions)
	return st
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	clone := State{
		Entities: make([]Entity, len(s.Entities)),
		Time:     s.Time,
	}
	copy(clone.Entities, s.Entities)
	return clone
}

// Equal reports whether two states match entity-by-entity, field-by-field,
// including the time scalar.
func (s State) Equal(other State) bool {
	if s.Time != other.Time || len(s.Entities) != len(other.Entities) {
		return false
	}
	for i, e := range s.Entities {
		if e != other.Entities[i] {
			return false
		}
	}
	return true
}

// Stepper advances every entity of a state by one tick.
// dt is the scaled time delta in simulated seconds; steppers are free to
// ignore it (the random walk does).
type Stepper func(st *State, dt float64)
