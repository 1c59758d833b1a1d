package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crewspp/spp"
)

var solveInstance string

// solveCmd runs the full ingestion-and-solve pipeline against one CSV
// instance directory.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the set-partitioning selection for a CSV instance",
	Long: `Solve the set-partitioning selection for a CSV instance directory.

Loads legs.csv and pairings.csv (required), incidence.csv and costs.csv
(optional, with inference and leg-count fallbacks), builds the binary
program and solves it. Prints the selected pairing indices on an optimal
outcome; otherwise prints the structural infeasibility diagnosis.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveInstance, "instance", "", "instance directory (required)")
	_ = solveCmd.MarkFlagRequired("instance")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := spp.NewInstance(solveInstance, spp.WithLogger(logger))
	if err := in.Load(); err != nil {
		return err
	}

	selected, diagnosis, err := in.Solve(spp.NewPBSolver())
	if err != nil {
		return err
	}

	if diagnosis != nil {
		fmt.Println("Problem is not optimal. No solution available.")
		fmt.Println()
		fmt.Print(diagnosis.String())
		return nil
	}

	logger.Info("solved instance",
		zap.Int("selected", len(selected)),
		zap.Int("pairings", len(in.Pairings)))

	fmt.Printf("Selected %d pairings out of %d:\n", len(selected), len(in.Pairings))
	for _, j := range selected {
		p := in.Pairings[j]
		fmt.Printf("  [%d] %s (base=%s, legs=%d, cost=%.2f)\n", j, p.ID, p.Base, len(p.Legs), in.Costs[j])
	}

	return nil
}
