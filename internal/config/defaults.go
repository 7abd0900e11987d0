package config

import (
	_ "embed"
)

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultDriftConfig returns the hardcoded drift defaults, used as the last
// fallback when the embedded YAML cannot be parsed.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Entities: []EntityPos{
			{X: 50, Y: 50},
			{X: 100, Y: 100},
			{X: 200, Y: 200},
		},
		Rate:           10.0,
		RecordInterval: 0.5,
		WorldScale:     0.1,
		EntityRadius:   10.0,
	}
}

// DefaultWalkConfig returns the hardcoded walk defaults.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		Entities: []EntityPos{
			{X: -20, Y: -20},
			{X: 0, Y: 0},
			{X: 20, Y: 20},
			{X: -20, Y: 20},
			{X: 20, Y: -20},
		},
		StepSize:       1.0,
		RecordInterval: 0.5,
		EntityRadius:   1.5,
		Grid:           GridConfig{Step: 10.0},
		Camera: CameraConfig{
			ZoomMin:        0.1,
			ZoomMax:        8.0,
			ZoomStep:       0.25,
			PanSensitivity: 1.0,
		},
	}
}
