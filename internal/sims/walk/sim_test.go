package walk

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/ametelin/tui-simlab/internal/core"
	"github.com/ametelin/tui-simlab/internal/sim"
)

func testConfig(t *testing.T, seed int64) core.RuntimeConfig {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.StatePath = filepath.Join(t.TempDir(), "simulation_state.json")
	return cfg
}

func TestWalkUnitStepOnOneAxis(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 12345))

	input := core.NewInputFrame()
	for tick := 0; tick < 50; tick++ {
		before := s.session.State.Clone()
		s.Step(input, 1.0/60.0)

		for i, e := range s.session.State.Entities {
			dx := math.Abs(e.X - before.Entities[i].X)
			dy := math.Abs(e.Y - before.Entities[i].Y)
			if !((dx == 1 && dy == 0) || (dx == 0 && dy == 1)) {
				t.Fatalf("tick %d entity %d moved (%v, %v), expected one unit on one axis",
					tick, i, e.X-before.Entities[i].X, e.Y-before.Entities[i].Y)
			}
		}
	}
}

func TestWalkAllFourDirectionsReachable(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 42))

	seen := map[[2]int]int{}
	input := core.NewInputFrame()
	for tick := 0; tick < 400; tick++ {
		before := s.session.State.Clone()
		s.Step(input, 1.0/60.0)

		for i, e := range s.session.State.Entities {
			move := [2]int{
				int(e.X - before.Entities[i].X),
				int(e.Y - before.Entities[i].Y),
			}
			seen[move]++
		}
	}

	for _, dir := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if seen[dir] == 0 {
			t.Errorf("direction %v never taken over %d moves", dir, 400*5)
		}
	}
}

func TestWalkDeterministicUnderSeed(t *testing.T) {
	cfg := testConfig(t, 999)

	s1 := New()
	s1.Reset(cfg)
	s2 := New()
	s2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		s1.Step(input, 1.0/60.0)
		s2.Step(input, 1.0/60.0)
	}

	if !s1.session.State.Equal(s2.session.State) {
		t.Error("two walk runs with the same seed diverged")
	}
}

func TestWalkIgnoresTimeDelta(t *testing.T) {
	cfg := testConfig(t, 7)

	s1 := New()
	s1.Reset(cfg)
	s2 := New()
	s2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		s1.Step(input, 1.0/60.0)
		s2.Step(input, 1.0/30.0) // different frame delta, same tick count
	}

	if !s1.session.State.Equal(s2.session.State) {
		t.Error("entity positions should depend on tick count, not the time delta")
	}
}

func TestWalkWheelZoomStaysClamped(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	in := core.NewInputFrame()
	in.Pointer.X = 40
	in.Pointer.Y = 12
	in.Pointer.Wheel = 1
	for i := 0; i < 500; i++ {
		s.Step(in, 1.0/60.0)
		if s.camera.Zoom.X > s.cfg.Camera.ZoomMax || s.camera.Zoom.Y > s.cfg.Camera.ZoomMax {
			t.Fatalf("zoom exceeded max: %v", s.camera.Zoom)
		}
	}

	in.Pointer.Wheel = -1
	for i := 0; i < 500; i++ {
		s.Step(in, 1.0/60.0)
		if s.camera.Zoom.X < s.cfg.Camera.ZoomMin || s.camera.Zoom.Y < s.cfg.Camera.ZoomMin {
			t.Fatalf("zoom fell below min: %v", s.camera.Zoom)
		}
	}
}

func TestWalkDragPansCamera(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	targetBefore := s.camera.Target

	in := core.NewInputFrame()
	in.Pointer.Dragging = true
	in.Pointer.DX = 10
	in.Pointer.DY = 0
	s.Step(in, 1.0/60.0)

	if s.camera.Target.X >= targetBefore.X {
		t.Error("dragging right should move the camera target in -x")
	}
}

func TestWalkFocusResetsTargetKeepsZoom(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	// Pan and zoom away from home.
	in := core.NewInputFrame()
	in.Pointer.Dragging = true
	in.Pointer.DX = 25
	in.Pointer.DY = 8
	s.Step(in, 1.0/60.0)

	wheel := core.NewInputFrame()
	wheel.Pointer.Wheel = 2
	s.Step(wheel, 1.0/60.0)
	zoomBefore := s.camera.Zoom

	focus := core.NewInputFrame()
	focus.Set(core.ActionFocus)
	s.Step(focus, 1.0/60.0)

	home := core.V(s.cfg.Camera.FocusX, s.cfg.Camera.FocusY)
	if s.camera.Target != home {
		t.Errorf("target = %v, expected home %v", s.camera.Target, home)
	}
	if s.camera.Zoom != zoomBefore {
		t.Error("focus must not change zoom")
	}
}

func TestWalkScrubRestoresSnapshot(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 321))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		s.Step(input, 1.0/60.0)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause, 1.0/60.0)

	max := s.session.History.MaxIndex()
	if max < 2 {
		t.Fatalf("expected several snapshots, got max index %d", max)
	}

	back := core.NewInputFrame()
	back.Set(core.ActionScrubBack)
	s.Step(back, 1.0/60.0)
	s.Step(back, 1.0/60.0)

	if s.session.Cursor != max-2 {
		t.Errorf("cursor = %d, expected %d", s.session.Cursor, max-2)
	}
	if !s.session.State.Equal(s.session.History.At(max - 2)) {
		t.Error("scrubbing should restore the selected snapshot")
	}
}

func TestWalkResumeAfterScrubTruncates(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 321))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		s.Step(input, 1.0/60.0)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause, 1.0/60.0)

	scrubTo := s.session.History.MaxIndex() / 2
	for s.session.Cursor > scrubTo {
		back := core.NewInputFrame()
		back.Set(core.ActionScrubBack)
		s.Step(back, 1.0/60.0)
	}

	resume := core.NewInputFrame()
	resume.Set(core.ActionPause)
	s.Step(resume, 1.0/60.0)

	// The stale tail is gone; appends continue from the scrub point.
	if s.session.History.MaxIndex() > scrubTo+1 {
		t.Errorf("max index = %d, expected at most %d right after resume",
			s.session.History.MaxIndex(), scrubTo+1)
	}
}

func TestWalkStateSummaryCarriesCameraHUD(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	st := s.State()
	if st.CameraHUD == "" {
		t.Error("walk should expose a camera debug readout")
	}
}

func TestWalkRenderDrawsGridAndEntities(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	text := screen.String()
	gridRunes := 0
	entityRunes := 0
	for _, r := range text {
		switch r {
		case '│', '─', '┼':
			gridRunes++
		case '●':
			entityRunes++
		}
	}

	if gridRunes == 0 {
		t.Error("render should draw reference grid lines")
	}
	if entityRunes == 0 {
		t.Error("render should draw entity circles")
	}
}

// Guard against the engine and the sim disagreeing about the record interval.
func TestWalkRecordIntervalFromConfig(t *testing.T) {
	s := New()
	s.Reset(testConfig(t, 1))

	if s.session.RecordInterval != s.cfg.RecordInterval {
		t.Errorf("session interval %v != config interval %v",
			s.session.RecordInterval, s.cfg.RecordInterval)
	}
	if s.session.RecordInterval != sim.DefaultRecordInterval {
		t.Errorf("default interval should be %v", sim.DefaultRecordInterval)
	}
}
