package spp

import "errors"

// ErrMissingLegsFile is returned when legs.csv does not exist in the
// instance directory. Legs are the coverage universe; there is no
// fallback.
var ErrMissingLegsFile = errors.New("spp: legs.csv not found")

// ErrMissingPairingsFile is returned when pairings.csv does not exist in
// the instance directory.
var ErrMissingPairingsFile = errors.New("spp: pairings.csv not found")

// ErrMissingLegColumn is returned when legs.csv has no column named
// leg_id or leg (case-insensitive).
var ErrMissingLegColumn = errors.New("spp: legs.csv must contain a leg_id column")

// ErrMissingIncidenceColumns is returned when incidence.csv exists but
// lacks a resolvable leg_index or pairing_index column.
var ErrMissingIncidenceColumns = errors.New("spp: incidence.csv must contain leg_index and pairing_index columns")

// ErrLegsNotLoaded is returned by stages that require LoadLegs first.
var ErrLegsNotLoaded = errors.New("spp: legs not loaded")

// ErrPairingsNotLoaded is returned by stages that require LoadPairings
// first.
var ErrPairingsNotLoaded = errors.New("spp: pairings not loaded")

// Status classifies a solver outcome. Only StatusOptimal carries a
// usable selection; every other status is handled uniformly as "no
// usable solution" (no intermediate feasible-but-suboptimal handling).
type Status int

const (
	// StatusOptimal: the solver proved optimality; Result.Selected holds
	// the chosen pairing indices.
	StatusOptimal Status = iota

	// StatusInfeasible: the solver proved no assignment satisfies the
	// partitioning constraints.
	StatusInfeasible

	// StatusUnknown: the solver stopped without a verdict (its own
	// internal time or resource limit; not configured or observed here).
	StatusUnknown
)

// String returns a stable lowercase label for s.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Sense is the coverage constraint sense of a built model.
type Sense int

// SenseExactlyOne is the only sense this package builds: every leg is
// covered by exactly one selected pairing (true set partitioning, not
// mere covering). See the package note on the ">= 1" discrepancy.
const SenseExactlyOne Sense = iota

// Model is the normalized binary program handed to a Solver:
// minimize Costs·x subject to, for every leg row i of Inc,
// Σ_j Inc[i][j]·x[j] == 1, with x binary, one variable per pairing index.
type Model struct {
	// Costs holds one cost per pairing index (aligned 1:1 with matrix
	// columns, not with pairing IDs).
	Costs []float64

	// Inc is the legs × pairings 0/1 coverage matrix.
	Inc *Incidence

	// Sense is the coverage constraint sense (always SenseExactlyOne).
	Sense Sense
}

// Result is the interpreted outcome of one solve.
type Result struct {
	// Status classifies the outcome; Selected and Objective are
	// meaningful only for StatusOptimal.
	Status Status

	// Selected lists the chosen pairing indices, dense and 0-based,
	// in ascending order.
	Selected []int

	// Objective is the cost of the selection under Model.Costs.
	Objective float64
}

// Solver is the opaque boundary to an external binary-integer-program
// backend. Implementations receive the full normalized model and report
// a status plus an assignment; they must not mutate the model. Once
// invoked, a solve runs to its own internal completion — there is no
// cancellation mechanism.
type Solver interface {
	Solve(m *Model) (Result, error)
}
