package core

// RuntimeConfig contains configuration passed to simulations at
// initialization. Simulations use this to adapt to screen size, for
// deterministic stepping and to locate the persisted state file.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	TickRate  int    // Simulation ticks per second (default 60)
	Seed      int64  // RNG seed for stochastic simulations
	StatePath string // Path of the JSON state snapshot file
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		StatePath: "simulation_state.json",
	}
}

// SimState reports the current state of a simulation to the platform.
type SimState struct {
	Tick      uint64  // Ticks stepped since reset
	Time      float64 // Accumulated simulated seconds
	Paused    bool    // Whether the simulation is paused
	Speed     float64 // Current speed multiplier
	Cursor    int     // Current history cursor index
	MaxIndex  int     // Highest valid history index
	Entities  int     // Number of live entities
	CameraHUD string  // Camera debug readout, empty for sims without a camera
}

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	State SimState

	// Err is non-nil when an unrecoverable failure occurred (state file
	// read/write/parse). The platform terminates the program with it.
	Err error
}
