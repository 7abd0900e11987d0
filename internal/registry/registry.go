// Package registry provides a global registry for simulation factories.
// Simulations register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ametelin/tui-simlab/internal/core"
)

// Simulation is the core interface every registered simulation implements.
// Simulations contain pure logic with no external dependencies (especially
// no Bubble Tea). The platform handles input mapping, timing and display.
type Simulation interface {
	// ID returns a unique identifier (e.g. "drift", "walk").
	// Used for CLI commands and the session log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the simulation state.
	// The RuntimeConfig provides screen dimensions, the RNG seed and the
	// state file path.
	Reset(cfg core.RuntimeConfig)

	// Resize informs the simulation of a new screen size without
	// resetting its state.
	Resize(width, height int)

	// Step advances the simulation by one frame. dt is the raw frame
	// delta in seconds; the simulation scales it by its own speed
	// multiplier. Input is abstracted to platform-level actions and
	// pointer state.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The simulation owns the full frame and clears the buffer itself.
	Render(dst *core.Screen)

	// State returns the current simulation state summary.
	State() core.SimState
}

// SimInfo contains metadata about a registered simulation.
type SimInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a simulation.
type Factory func() Simulation

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Typically called from a simulation's init() function.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered simulations, sorted by ID.
func List() []SimInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SimInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SimInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Simulation, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown simulation %q", id)
	}

	return f(), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
