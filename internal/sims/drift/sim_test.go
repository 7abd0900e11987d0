package drift

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ametelin/tui-simlab/internal/core"
)

func testConfig(t *testing.T) core.RuntimeConfig {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.StatePath = filepath.Join(t.TempDir(), "simulation_state.json")
	return cfg
}

func TestDriftExactIncrements(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))

	// Exact binary fractions keep the expectation exact.
	deltas := []float64{0.25, 0.5, 0.125}

	input := core.NewInputFrame()
	for _, dt := range deltas {
		expected := make([]struct{ x, y float64 }, len(s.session.State.Entities))
		for i, e := range s.session.State.Entities {
			expected[i].x = e.X + dt*10.0
			expected[i].y = e.Y + dt*10.0
		}

		s.Step(input, dt)

		for i, e := range s.session.State.Entities {
			if e.X != expected[i].x || e.Y != expected[i].y {
				t.Errorf("dt=%v entity %d = (%v, %v), expected (%v, %v)",
					dt, i, e.X, e.Y, expected[i].x, expected[i].y)
			}
		}
	}
}

func TestDriftSpeedScalesIncrement(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))
	s.session.Speed = 2.0

	x0 := s.session.State.Entities[0].X
	s.Step(core.NewInputFrame(), 0.25)

	// dt 0.25 at speed 2 covers 0.5 simulated seconds: +5 world units.
	if got := s.session.State.Entities[0].X; got != x0+5.0 {
		t.Errorf("entity X = %v, expected %v", got, x0+5.0)
	}
}

func TestDriftDeterminism(t *testing.T) {
	cfg := testConfig(t)

	s1 := New()
	s1.Reset(cfg)
	s2 := New()
	s2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		s1.Step(input, 1.0/60.0)
		s2.Step(input, 1.0/60.0)
	}

	if !s1.session.State.Equal(s2.session.State) {
		t.Error("two drift runs with identical input diverged")
	}
	if s1.session.History.Len() != s2.session.History.Len() {
		t.Error("history lengths diverged")
	}
}

func TestDriftPauseAndScrub(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		s.Step(input, 1.0/60.0)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause, 1.0/60.0)

	if !s.session.Paused {
		t.Fatal("simulation should be paused")
	}

	max := s.session.History.MaxIndex()
	if max < 2 {
		t.Fatalf("expected several snapshots, got max index %d", max)
	}

	back := core.NewInputFrame()
	back.Set(core.ActionScrubBack)
	s.Step(back, 1.0/60.0)

	if s.session.Cursor != max-1 {
		t.Errorf("cursor = %d, expected %d", s.session.Cursor, max-1)
	}
	if !s.session.State.Equal(s.session.History.At(max - 1)) {
		t.Error("scrubbing should replace the working state with the snapshot")
	}
}

func TestDriftSaveLoadThroughActions(t *testing.T) {
	cfg := testConfig(t)
	s := New()
	s.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		s.Step(input, 1.0/60.0)
	}

	save := core.NewInputFrame()
	save.Set(core.ActionSave)
	// Pause first so positions stay put between save and load.
	save.Set(core.ActionPause)
	if res := s.Step(save, 1.0/60.0); res.Err != nil {
		t.Fatalf("save failed: %v", res.Err)
	}

	saved := s.session.State.Clone()
	histLen := s.session.History.Len()

	load := core.NewInputFrame()
	load.Set(core.ActionLoad)
	if res := s.Step(load, 1.0/60.0); res.Err != nil {
		t.Fatalf("load failed: %v", res.Err)
	}

	if !s.session.State.Equal(saved) {
		t.Error("loaded state should equal the saved state")
	}
	if s.session.History.Len() != histLen {
		t.Error("loading must not alter history")
	}
}

func TestDriftLoadMissingFileIsFatal(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))

	load := core.NewInputFrame()
	load.Set(core.ActionLoad)

	if res := s.Step(load, 1.0/60.0); res.Err == nil {
		t.Error("loading a missing state file should surface a fatal error")
	}
}

func TestDriftStateSummary(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		s.Step(input, 1.0/60.0)
	}

	st := s.State()
	if st.Entities != 3 {
		t.Errorf("entities = %d, expected 3", st.Entities)
	}
	if st.Tick != 60 {
		t.Errorf("tick = %d, expected 60", st.Tick)
	}
	if st.CameraHUD != "" {
		t.Error("drift has no camera; CameraHUD should be empty")
	}
}

func TestDriftRender(t *testing.T) {
	s := New()
	s.Reset(testConfig(t))

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	// HUD occupies the top rows.
	if strings.TrimSpace(screen.Row(0)) == "" {
		t.Error("HUD row should not be empty")
	}
	// Entity at (50, 50) maps to cell (5, hud+2) at the default scale.
	if screen.Get(5, hudHeight+2) != '●' {
		t.Errorf("expected entity glyph at (5, %d), got %q", hudHeight+2, screen.Get(5, hudHeight+2))
	}
}
