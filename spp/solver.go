package spp

import (
	"math"

	"github.com/crillab/gophersat/solver"
)

// costScale converts float costs to the integer weights gophersat
// optimizes over: weights = round(cost · costScale). Three decimal
// places comfortably cover the crude proxy costs this model carries.
const costScale = 1000

// PBSolver solves the partitioning model with gophersat's pseudo-boolean
// engine: one exactly-one cardinality constraint per leg row and the
// scaled cost vector as the objective. It is the default backend behind
// the Solver interface; swapping in another ILP engine touches neither
// model construction nor diagnostics.
//
// Costs are assumed non-negative (both proxy cost models are). The solve
// runs to the engine's own completion; there is no cancellation.
type PBSolver struct{}

// NewPBSolver returns the gophersat-backed Solver.
func NewPBSolver() *PBSolver { return &PBSolver{} }

// Solve encodes m as pseudo-boolean constraints and interprets the
// engine's verdict: Sat with a proven optimum → StatusOptimal plus the
// selected pairing indices; Unsat → StatusInfeasible; anything else →
// StatusUnknown. A leg row with zero coverage is structurally
// unsatisfiable, so it short-circuits to StatusInfeasible without
// invoking the engine.
//
// Complexity: encoding O(m·n); the solve itself is the engine's.
func (*PBSolver) Solve(m *Model) (Result, error) {
	rows, n := m.Inc.Rows(), m.Inc.Cols()

	var constrs []solver.PBConstr
	for i := 0; i < rows; i++ {
		var lits []int
		for j := 0; j < n; j++ {
			if m.Inc.At(i, j) {
				lits = append(lits, j+1) // variable j+1 ⇔ pairing index j
			}
		}
		if len(lits) == 0 {
			// No pairing covers leg i: exactly-one can never hold.
			return Result{Status: StatusInfeasible}, nil
		}
		coeffs := make([]int, len(lits))
		for k := range coeffs {
			coeffs[k] = 1
		}
		constrs = append(constrs, solver.Eq(lits, coeffs, 1)...)
	}

	if n == 0 || len(constrs) == 0 {
		// Nothing to choose and nothing to cover: the empty selection is
		// trivially optimal.
		return Result{Status: StatusOptimal}, nil
	}

	pb := solver.ParsePBConstrs(constrs)

	weights := make([]int, n)
	lits := make([]solver.Lit, n)
	nonZero := false
	for j := 0; j < n; j++ {
		lits[j] = solver.IntToLit(int32(j + 1))
		weights[j] = int(math.Round(m.Costs[j] * costScale))
		if weights[j] != 0 {
			nonZero = true
		}
	}
	if nonZero {
		pb.SetCostFunc(lits, weights)
	}

	s := solver.New(pb)
	res := s.Optimal(nil, nil)

	switch res.Status {
	case solver.Sat:
		out := Result{Status: StatusOptimal}
		for j := 0; j < n; j++ {
			// Model is indexed by variable order, 0-based: entry j holds
			// the assignment of variable j+1, i.e. pairing j.
			if res.Model[j] {
				out.Selected = append(out.Selected, j)
				out.Objective += m.Costs[j]
			}
		}
		return out, nil

	case solver.Unsat:
		return Result{Status: StatusInfeasible}, nil

	default:
		return Result{Status: StatusUnknown}, nil
	}
}
