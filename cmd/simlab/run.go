package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ametelin/tui-simlab/internal/config"
	"github.com/ametelin/tui-simlab/internal/core"
	"github.com/ametelin/tui-simlab/internal/platform/tui"
	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/sims/drift"
	"github.com/ametelin/tui-simlab/internal/sims/walk"
	"github.com/ametelin/tui-simlab/internal/storage"
)

var (
	flagConfig   string
	flagScenario string
)

var runCmd = &cobra.Command{
	Use:   "run <sim>",
	Short: "Run a simulation",
	Long: `Start the specified simulation.

Controls:
  Space/P    - Pause/Resume
  +/-        - Speed up/down
  [ ]        - Scrub history (while paused)
  S          - Save state to disk
  L          - Load state from disk
  F          - Reset camera (camera sims)
  Arrows     - Pan camera (camera sims)
  Mouse      - Drag to pan, wheel to zoom (camera sims)
  Q/Ctrl+C   - Quit

Scenario options:
  default - The entity layout from the config file
  sparse  - A single entity
  dense   - A 3x3 cluster around each configured entity

Examples:
  simlab run drift
  simlab run walk --seed 42
  simlab run walk --scenario dense
  simlab run drift --config ./my-drift.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	runCmd.Flags().StringVar(&flagScenario, "scenario", "", "Entity layout preset: default, sparse, dense")
}

func runRun(cmd *cobra.Command, args []string) {
	simID := args[0]

	// Check if sim exists
	if !registry.Exists(simID) {
		fmt.Fprintf(os.Stderr, "Error: unknown simulation %q\n", simID)
		fmt.Fprintln(os.Stderr, "Run 'simlab list' to see available simulations.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		StatePath: flagStatePath,
	}

	// Parse the scenario preset, if given
	scenario := config.ScenarioDefault
	if flagScenario != "" {
		var err error
		scenario, err = config.ParseScenario(flagScenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set config path and scenario before creation
	switch simID {
	case "drift":
		drift.SetConfigPath(flagConfig)
		drift.SetScenario(scenario)
	case "walk":
		walk.SetConfigPath(flagConfig)
		walk.SetScenario(scenario)
	}

	// Create the simulation instance
	sim, err := registry.Create(simID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	// Open the session log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	// Run the simulation
	runErr := tui.Run(sim, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
