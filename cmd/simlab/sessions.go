package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <sim>",
	Short: "Show the recorded run log for a simulation",
	Long: `Display the most recent runs of the specified simulation.

Examples:
  simlab sessions drift
  simlab sessions walk`,
	Args: cobra.ExactArgs(1),
	Run:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) {
	simID := args[0]

	// Check if sim exists
	if !registry.Exists(simID) {
		fmt.Fprintf(os.Stderr, "Error: unknown simulation %q\n", simID)
		fmt.Fprintln(os.Stderr, "Run 'simlab list' to see available simulations.")
		os.Exit(1)
	}

	// Get the sim title
	sim, err := registry.Create(simID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}
	title := sim.Title()

	// Open the session log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get recent sessions
	sessions, err := store.RecentSessions(simID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	// Display sessions
	fmt.Printf("Session Log - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'simlab run %s' to record the first one!\n", simID)
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-10s  %-10s  %s\n", "Ticks", "Sim Time", "Snapshots", "Date")
	fmt.Printf("  %-10s  %-10s  %-10s  %s\n", "-----", "--------", "---------", "----")

	// Print sessions
	for _, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-10s  %-10d  %s\n",
			entry.Ticks, fmt.Sprintf("%.1fs", entry.SimSeconds), entry.Snapshots, dateStr)
	}

	// Show longest run
	fmt.Println()
	longest, err := store.LongestSession(simID)
	if err == nil && longest > 0 {
		fmt.Printf("Longest run: %.1fs\n", longest)
	}
}
