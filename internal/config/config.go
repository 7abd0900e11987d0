// Package config loads per-simulation YAML configuration with embedded
// defaults and scenario presets.
package config

// EntityPos is an initial entity position.
type EntityPos struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DriftConfig tunes the deterministic drift simulation.
type DriftConfig struct {
	Entities       []EntityPos `yaml:"entities"`
	Rate           float64     `yaml:"rate"`            // World units per simulated second, both axes
	RecordInterval float64     `yaml:"record_interval"` // Simulated seconds between history snapshots
	WorldScale     float64     `yaml:"world_scale"`     // Screen cells per world unit on the x axis
	EntityRadius   float64     `yaml:"entity_radius"`   // Entity circle radius in world units
}

// GridConfig tunes the reference grid of the walk simulation.
type GridConfig struct {
	Step float64 `yaml:"step"` // World units between grid lines
}

// CameraConfig tunes the walk simulation's pan/zoom camera.
type CameraConfig struct {
	ZoomMin        float64 `yaml:"zoom_min"`
	ZoomMax        float64 `yaml:"zoom_max"`
	ZoomStep       float64 `yaml:"zoom_step"`
	PanSensitivity float64 `yaml:"pan_sensitivity"`
	FocusX         float64 `yaml:"focus_x"` // World point the focus control returns to
	FocusY         float64 `yaml:"focus_y"`
}

// WalkConfig tunes the stochastic walk simulation.
type WalkConfig struct {
	Entities       []EntityPos  `yaml:"entities"`
	StepSize       float64      `yaml:"step_size"`       // World units per unit move
	RecordInterval float64      `yaml:"record_interval"` // Simulated seconds between history snapshots
	EntityRadius   float64      `yaml:"entity_radius"`   // Entity circle radius in world units
	Grid           GridConfig   `yaml:"grid"`
	Camera         CameraConfig `yaml:"camera"`
}
