package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ametelin/tui-simlab/internal/sim"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation_state.json")

	st := sim.NewState(
		sim.Entity{X: 50, Y: 50},
		sim.Entity{X: 100.25, Y: -3.5},
		sim.Entity{X: 200, Y: 200},
	)
	st.Time = 12.75

	if err := Save(path, st); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !loaded.Equal(st) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", st, loaded)
	}
}

func TestSaveWritesPrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if err := Save(path, sim.NewState(sim.Entity{X: 1, Y: 2})); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "\n  ") {
		t.Error("saved JSON should be indented")
	}
	for _, field := range []string{`"entities"`, `"x"`, `"y"`, `"time"`} {
		if !strings.Contains(text, field) {
			t.Errorf("saved JSON missing field %s", field)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if err := Save(path, sim.NewState(sim.Entity{X: 1, Y: 1})); err != nil {
		t.Fatalf("first Save() failed: %v", err)
	}
	second := sim.NewState(sim.Entity{X: 9, Y: 9})
	if err := Save(path, second); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !loaded.Equal(second) {
		t.Error("second save should fully replace the first")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !strings.Contains(err.Error(), "persist:") {
		t.Errorf("error should carry the package prefix, got %q", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() of malformed JSON should fail")
	}
}
