package sim

import "testing"

func TestStateClone(t *testing.T) {
	st := NewState(Entity{X: 50, Y: 50}, Entity{X: 100, Y: 100})
	st.Time = 3.5

	clone := st.Clone()
	if !st.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	// Mutating the clone must not leak into the original
	clone.Entities[0].X = 999
	clone.Time = 7

	if st.Entities[0].X != 50 {
		t.Error("mutating the clone changed the original entity")
	}
	if st.Time != 3.5 {
		t.Error("mutating the clone changed the original time")
	}
}

func TestStateEqual(t *testing.T) {
	base := NewState(Entity{X: 1, Y: 2}, Entity{X: 3, Y: 4})

	tests := []struct {
		name     string
		other    State
		expected bool
	}{
		{"identical", NewState(Entity{X: 1, Y: 2}, Entity{X: 3, Y: 4}), true},
		{"different position", NewState(Entity{X: 1, Y: 2}, Entity{X: 3, Y: 5}), false},
		{"fewer entities", NewState(Entity{X: 1, Y: 2}), false},
		{"more entities", NewState(Entity{X: 1, Y: 2}, Entity{X: 3, Y: 4}, Entity{}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Equal(tc.other); got != tc.expected {
				t.Errorf("Equal() = %v, expected %v", got, tc.expected)
			}
		})
	}

	withTime := base.Clone()
	withTime.Time = 1.0
	if base.Equal(withTime) {
		t.Error("states with different time scalars should not be equal")
	}
}
