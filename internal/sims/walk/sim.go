// Package walk implements the stochastic walk simulation: every entity takes
// one unit step per tick along a uniformly random axis direction, viewed
// through a pan/zoom camera over a world-space reference grid.
package walk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ametelin/tui-simlab/internal/config"
	"github.com/ametelin/tui-simlab/internal/core"
	"github.com/ametelin/tui-simlab/internal/persist"
	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/sim"
)

const (
	hudHeight = 3 // Overlay rows at the top
	debugRows = 1 // Camera readout row at the bottom

	// keyPanCells is the screen-cell pan distance per arrow key press.
	keyPanCells = 2.0
)

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

// Sim implements the walk simulation.
type Sim struct {
	cfg     config.WalkConfig
	runtime core.RuntimeConfig
	session *sim.Session
	camera  *sim.Camera
	rng     *rand.Rand

	screenW int
	screenH int
}

// New creates a new walk simulation.
func New() *Sim {
	return &Sim{}
}

func init() {
	registry.Register("walk", func() registry.Simulation {
		return New()
	})
}

// ID returns the simulation identifier.
func (s *Sim) ID() string {
	return "walk"
}

// Title returns the display name.
func (s *Sim) Title() string {
	return "Random Walk"
}

// Reset initializes/restarts the simulation.
func (s *Sim) Reset(cfg core.RuntimeConfig) {
	walkCfg, err := config.LoadWalk(configPath)
	if err != nil {
		walkCfg = config.DefaultWalkConfig()
	}
	walkCfg.Entities = config.ApplyScenario(walkCfg.Entities, scenario)

	s.cfg = walkCfg
	s.runtime = cfg
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.rng = rand.New(rand.NewSource(cfg.Seed))

	entities := make([]sim.Entity, len(walkCfg.Entities))
	for i, e := range walkCfg.Entities {
		entities[i] = sim.Entity{X: e.X, Y: e.Y}
	}
	s.session = sim.NewSession(sim.NewState(entities...), walkCfg.RecordInterval)

	s.camera = sim.NewCamera(sim.CameraConfig{
		ZoomMin:        walkCfg.Camera.ZoomMin,
		ZoomMax:        walkCfg.Camera.ZoomMax,
		ZoomStep:       walkCfg.Camera.ZoomStep,
		PanSensitivity: walkCfg.Camera.PanSensitivity,
		Home:           core.V(walkCfg.Camera.FocusX, walkCfg.Camera.FocusY),
	}, cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without resetting the run.
func (s *Sim) Resize(width, height int) {
	s.screenW = width
	s.screenH = height
	s.camera.Resize(width, height)
}

// Step advances the simulation by one frame.
func (s *Sim) Step(in core.InputFrame, dt float64) core.StepResult {
	s.updateCamera(in)

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

// updateCamera applies pan, zoom and focus input. Camera controls work in
// both running and paused modes.
func (s *Sim) updateCamera(in core.InputFrame) {
	if in.Pointer.Dragging && (in.Pointer.DX != 0 || in.Pointer.DY != 0) {
		s.camera.Pan(float64(in.Pointer.DX), float64(in.Pointer.DY))
	}
	if in.Pointer.Wheel != 0 {
		s.camera.ZoomAt(in.Pointer.X, in.Pointer.Y, in.Pointer.Wheel)
	}

	if in.Has(core.ActionPanLeft) {
		s.camera.Pan(keyPanCells, 0)
	}
	if in.Has(core.ActionPanRight) {
		s.camera.Pan(-keyPanCells, 0)
	}
	if in.Has(core.ActionPanUp) {
		s.camera.Pan(0, keyPanCells)
	}
	if in.Has(core.ActionPanDown) {
		s.camera.Pan(0, -keyPanCells)
	}
	if in.Has(core.ActionFocus) {
		s.camera.Focus()
	}
}

// step moves every entity one unit along a uniformly random axis direction.
// The time delta is ignored: one update is one step.
func (s *Sim) step(st *sim.State, _ float64) {
	for i := range st.Entities {
		switch s.rng.Intn(4) {
		case 0:
			st.Entities[i].X -= s.cfg.StepSize
		case 1:
			st.Entities[i].X += s.cfg.StepSize
		case 2:
			st.Entities[i].Y -= s.cfg.StepSize
		case 3:
			st.Entities[i].Y += s.cfg.StepSize
		}
	}
}

// Render draws the grid, the entities under the camera transform, and the
// overlays.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()
	s.drawGrid(dst)

	rx, ry := s.camera.CellRadii(s.cfg.EntityRadius)
	for _, e := range s.session.State.Entities {
		cx, cy := s.camera.WorldToScreen(core.V(e.X, e.Y))
		dst.FillEllipse(cx, cy, rx, ry, '●', core.ColorBlue)
	}

	s.drawHUD(dst)
	s.drawDebug(dst)
}

// drawGrid draws the visible portion of the infinite reference grid.
func (s *Sim) drawGrid(dst *core.Screen) {
	step := s.cfg.Grid.Step
	if step <= 0 {
		return
	}
	min, max := s.camera.VisibleRect()
	top := hudHeight
	bottom := dst.Height() - debugRows

	for gy := math.Floor(min.Y/step) * step; gy <= max.Y; gy += step {
		_, sy := s.camera.WorldToScreen(core.V(min.X, gy))
		if sy < top || sy >= bottom {
			continue
		}
		dst.DrawHLine(0, sy, dst.Width(), '─', core.ColorGray)
	}
	for gx := math.Floor(min.X/step) * step; gx <= max.X; gx += step {
		sx, _ := s.camera.WorldToScreen(core.V(gx, min.Y))
		if sx < 0 || sx >= dst.Width() {
			continue
		}
		for y := top; y < bottom; y++ {
			if dst.Get(sx, y) == '─' {
				dst.SetCell(sx, y, '┼', core.ColorGray)
			} else {
				dst.SetCell(sx, y, '│', core.ColorGray)
			}
		}
	}
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

	hints := "[space] pause  [+/-] speed  [[/]] scrub  [s] save  [l] load  [f] focus  [arrows] pan  [wheel] zoom  [q] quit"
	dst.DrawText(1, 1, hints, core.ColorGray)
	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// drawDebug draws the bottom camera readout.
func (s *Sim) drawDebug(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	dst.DrawText(1, y, s.camera.HUD(), core.ColorCyan)
}

// State returns the current simulation state summary.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Tick:      s.session.Tick,
		Time:      s.session.SimTime,
		Paused:    s.session.Paused,
		Speed:     s.session.Speed,
		Cursor:    s.session.Cursor,
		MaxIndex:  s.session.History.MaxIndex(),
		Entities:  len(s.session.State.Entities),
		CameraHUD: s.camera.HUD(),
	}
}
