package sample

import "errors"

// ErrUnknownMode is returned when Options carry a Mode outside
// {ModeLocal, ModeForced, ModeMixed}. This is a fatal configuration
// error: no sampling work is attempted.
var ErrUnknownMode = errors.New("sample: unknown generation mode")

// ErrEmptySolution is returned when the seed solution has no pairings;
// every mode needs at least one source pairing (and a base donor).
var ErrEmptySolution = errors.New("sample: empty seed solution")

// ErrNoForcedDuties is returned when a mode that samples forced duties
// (forced, mixed) runs against a solution in which no duty occurs exactly
// once.
var ErrNoForcedDuties = errors.New("sample: solution has no forced duties")

// ErrSolutionTooSmall is returned when mixed mode runs against a solution
// with fewer than two pairings; recombination needs two distinct sources.
var ErrSolutionTooSmall = errors.New("sample: mixed mode needs at least two pairings")

// Mode selects the candidate source used by Generate.
type Mode string

const (
	// ModeLocal draws one random solution pairing per iteration and emits
	// its local perturbations.
	ModeLocal Mode = "local"

	// ModeForced draws one random forced duty and emits its minimal
	// two-duty protective window.
	ModeForced Mode = "forced"

	// ModeMixed blends local, forced and recombination candidates with
	// fixed probabilities 0.6 / 0.3 / 0.1.
	ModeMixed Mode = "mixed"
)

// Mixed-mode branch thresholds over one uniform draw r in [0,1):
// r < mixedLocalCut → local; r < mixedForcedCut → forced; else recombine.
// These are fixed policy, not configuration.
const (
	mixedLocalCut  = 0.6
	mixedForcedCut = 0.9
)
