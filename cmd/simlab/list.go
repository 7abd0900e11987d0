package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ametelin/tui-simlab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available simulations",
	Long:  `Shows a list of all simulations registered in the lab.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	sims := registry.List()

	if len(sims) == 0 {
		fmt.Println("No simulations available.")
		return
	}

	fmt.Println("Available simulations:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sims {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print sims
	for _, s := range sims {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'simlab run <id>' to start a simulation.")
}
