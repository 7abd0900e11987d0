package main

import (
	"fmt"
	"os"
	"time"

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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lab with a simulation picker menu",
	Long: `Start the lab in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a simulation.
After a run ends, you return to the menu to start another.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select simulation
  Tab          - Session log
  Q            - Quit

Examples:
  simlab menu
  simlab menu --fps 30
  simlab menu --db ./sessions.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --state)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open the session log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the session log
		if menuResult.WantsSessions {
			goBack, slErr := tui.RunSessions(store, cfg.ScreenW, cfg.ScreenH)
			if slErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", slErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the session log
		}

		simID := menuResult.SimID
		if simID == "" {
			break
		}

		// Set config path and scenario before creation
		switch simID {
		case "drift":
			drift.SetConfigPath(flagConfig)
			drift.SetScenario(config.ScenarioDefault)
		case "walk":
			walk.SetConfigPath(flagConfig)
			walk.SetScenario(config.ScenarioDefault)
		}

		// Create the simulation instance
		sim, err := registry.Create(simID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
			continue
		}

		// Fresh seed per run
		cfg.Seed = time.Now().UnixNano()

		// Run the simulation
		if err := tui.Run(sim, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
