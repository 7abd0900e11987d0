// Package drift implements the deterministic drift simulation: every entity
// moves diagonally at a fixed rate on both axes.
package drift

import (
	"fmt"

	"github.com/ametelin/tui-simlab/internal/config"
	"github.com/ametelin/tui-simlab/internal/core"
	"github.com/ametelin/tui-simlab/internal/persist"
	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/sim"
)

// hudHeight is the number of overlay rows at the top of the screen.
const hudHeight = 3

// Package-level config path, set by the CLI before creation.
var configPath string

// SetConfigPath sets the config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// scenario is the entity layout preset, set by the CLI before creation.
var scenario = config.ScenarioDefault

// SetScenario sets the entity layout preset for the next Reset.
func SetScenario(preset config.ScenarioPreset) {
	scenario = preset
}

// Sim implements the drift simulation.
type Sim struct {
	cfg     config.DriftConfig
	runtime core.RuntimeConfig
	session *sim.Session

	screenW int
	screenH int
}

// New creates a new drift simulation.
func New() *Sim {
	return &Sim{}
}

func init() {
	registry.Register("drift", func() registry.Simulation {
		return New()
	})
}

// ID returns the simulation identifier.
func (s *Sim) ID() string {
	return "drift"
}

// Title returns the display name.
func (s *Sim) Title() string {
	return "Diagonal Drift"
}

// Reset initializes/restarts the simulation.
func (s *Sim) Reset(cfg core.RuntimeConfig) {
	driftCfg, err := config.LoadDrift(configPath)
	if err != nil {
		driftCfg = config.DefaultDriftConfig()
	}
	driftCfg.Entities = config.ApplyScenario(driftCfg.Entities, scenario)

	s.cfg = driftCfg
	s.runtime = cfg
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH

	entities := make([]sim.Entity, len(driftCfg.Entities))
	for i, e := range driftCfg.Entities {
		entities[i] = sim.Entity{X: e.X, Y: e.Y}
	}
	s.session = sim.NewSession(sim.NewState(entities...), driftCfg.RecordInterval)
}

// Resize updates the screen dimensions without resetting the run.
func (s *Sim) Resize(width, height int) {
	s.screenW = width
	s.screenH = height
}

// Step advances the simulation by one frame.
func (s *Sim) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		s.session.TogglePause()
	}
	if in.Has(core.ActionSpeedUp) {
		s.session.AdjustSpeed(sim.SpeedStep)
	}
	if in.Has(core.ActionSpeedDown) {
		s.session.AdjustSpeed(-sim.SpeedStep)
	}
	if s.session.Paused {
		if in.Has(core.ActionScrubBack) {
			s.session.Scrub(-1)
		}
		if in.Has(core.ActionScrubForward) {
			s.session.Scrub(1)
		}
	}

	if in.Has(core.ActionSave) {
		if err := persist.Save(s.runtime.StatePath, s.session.State); err != nil {
			return core.StepResult{State: s.State(), Err: err}
		}
	}
	if in.Has(core.ActionLoad) {
		st, err := persist.Load(s.runtime.StatePath)
		if err != nil {
			return core.StepResult{State: s.State(), Err: err}
		}
		s.session.ReplaceState(st)
	}

	s.session.Advance(dt, s.step)

	return core.StepResult{State: s.State()}
}

// step moves every entity by rate world units per simulated second on both
// axes. Entities do not interact and there is no bounds checking.
func (s *Sim) step(st *sim.State, dt float64) {
	for i := range st.Entities {
		st.Entities[i].X += dt * s.cfg.Rate
		st.Entities[i].Y += dt * s.cfg.Rate
	}
}

// Render draws the entities at a fixed world-to-cell scale, then the overlay.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()

	rx := s.cfg.EntityRadius * s.cfg.WorldScale
	ry := rx * 0.5 // terminal cells are about twice as tall as wide

	for _, e := range s.session.State.Entities {
		cx := int(e.X * s.cfg.WorldScale)
		cy := hudHeight + int(e.Y*s.cfg.WorldScale*0.5)
		dst.FillEllipse(cx, cy, rx, ry, '●', core.ColorBlue)
	}

	s.drawHUD(dst)
}

// drawHUD draws the top control overlay.
func (s *Sim) drawHUD(dst *core.Screen) {
	status := "▶ running"
	if s.session.Paused {
		status = "⏸ paused "
	}
	line := fmt.Sprintf("%s  speed %.2fx  t %.1fs  history %d/%d  entities %d",
		status, s.session.Speed, s.session.SimTime,
		s.session.Cursor, s.session.History.MaxIndex(),
		len(s.session.State.Entities))
	dst.DrawText(1, 0, line, core.ColorBrightWhite)

	hints := "[space] pause  [+/-] speed  [[/]] scrub  [s] save  [l] load  [q] quit"
	dst.DrawText(1, 1, hints, core.ColorGray)
	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// State returns the current simulation state summary.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Tick:     s.session.Tick,
		Time:     s.session.SimTime,
		Paused:   s.session.Paused,
		Speed:    s.session.Speed,
		Cursor:   s.session.Cursor,
		MaxIndex: s.session.History.MaxIndex(),
		Entities: len(s.session.State.Entities),
	}
}
