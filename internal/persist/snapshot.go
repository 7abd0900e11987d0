// Package persist reads and writes the JSON state snapshot file.
// The file holds one State document, pretty-printed, and is replaced
// wholesale on every save. Failures are surfaced to the caller, which
// treats them as fatal.
package persist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ametelin/tui-simlab/internal/sim"
)

// Save serializes the state to indented JSON and writes it to path,
// overwriting any existing content.
func Save(path string, st sim.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: cannot encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("persist: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads the file at path and parses it back into a State.
func Load(path string) (sim.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.State{}, fmt.Errorf("persist: cannot read %s: %w", path, err)
	}
	var st sim.State
	if err := json.Unmarshal(data, &st); err != nil {
		return sim.State{}, fmt.Errorf("persist: cannot parse %s: %w", path, err)
	}
	return st, nil
}
