// Command crewspp drives the two halves of the crew-pairing pipeline:
//
//	crewspp generate — expand a seed solution into candidate-pool files
//	crewspp solve    — select a minimum-cost exact cover from a CSV instance
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands; initialized in main before
// Execute so RunE bodies can rely on it.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "crewspp",
	Short: "Crew-pairing candidate generation and set-partitioning selection",
	Long: `crewspp expands a seed crew-pairing solution into candidate pools via
cheap heuristic perturbations, and selects a minimum-cost subset of
candidate pairings covering every leg exactly once.`,
	SilenceUsage: true,
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
}
