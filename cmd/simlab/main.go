// simlab is a TUI platform for running small 2D simulations in the terminal.
//
// Usage:
//
//	simlab list              - List available simulations
//	simlab run <sim>         - Run a simulation
//	simlab menu              - Start menu to pick simulations interactively
//	simlab serve             - Start SSH server for remote access
//	simlab sessions <sim>    - Show the recorded run log for a simulation
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.simlab/sessions.db)
//	--state <path>   - Set state snapshot path (default: simulation_state.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import simulations to register them
	_ "github.com/ametelin/tui-simlab/internal/sims/drift"
	_ "github.com/ametelin/tui-simlab/internal/sims/walk"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagStatePath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simlab",
	Short: "TUI SimLab - Run 2D simulations in your terminal",
	Long: `TUI SimLab is a terminal-based simulation platform with pause,
speed control, history scrubbing, and state snapshots.

Available commands:
  list      - Show all available simulations
  run       - Run a specific simulation directly
  menu      - Interactive simulation picker menu
  serve     - Start SSH server for remote access
  sessions  - View the recorded run log

Examples:
  simlab list
  simlab run drift
  simlab run walk --seed 42
  simlab menu
  simlab serve --ssh :2222
  simlab sessions walk`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simlab/sessions.db", "Path to session log database")
	rootCmd.PersistentFlags().StringVar(&flagStatePath, "state", "simulation_state.json", "Path to the JSON state snapshot file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}
