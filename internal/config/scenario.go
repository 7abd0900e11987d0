package config

import "fmt"

// ScenarioPreset selects an initial entity layout without editing YAML.
type ScenarioPreset string

const (
	ScenarioDefault ScenarioPreset = "default" // Layout from the config file
	ScenarioSparse  ScenarioPreset = "sparse"  // Single entity
	ScenarioDense   ScenarioPreset = "dense"   // Config layout replicated on a 3x3 offset grid
)

// denseGridSpacing is the world-space offset between replicated layouts.
const denseGridSpacing = 40.0

// ParseScenario validates a scenario preset name. An empty string means
// default.
func ParseScenario(name string) (ScenarioPreset, error) {
	switch ScenarioPreset(name) {
	case "", ScenarioDefault:
		return ScenarioDefault, nil
	case ScenarioSparse:
		return ScenarioSparse, nil
	case ScenarioDense:
		return ScenarioDense, nil
	default:
		return ScenarioDefault, fmt.Errorf("config: unknown scenario %q (want default, sparse or dense)", name)
	}
}

// ApplyScenario rewrites an entity layout according to the preset.
func ApplyScenario(entities []EntityPos, preset ScenarioPreset) []EntityPos {
	switch preset {
	case ScenarioSparse:
		if len(entities) > 1 {
			return entities[:1]
		}
		return entities
	case ScenarioDense:
		dense := make([]EntityPos, 0, len(entities)*9)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, e := range entities {
					dense = append(dense, EntityPos{
						X: e.X + float64(dx)*denseGridSpacing,
						Y: e.Y + float64(dy)*denseGridSpacing,
					})
				}
			}
		}
		return dense
	default:
		return entities
	}
}
