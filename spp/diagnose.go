package spp

import (
	"fmt"
	"strings"
)

// diagnosisListLimit caps how many uncoverable legs the rendered report
// names individually; the remainder is summarized as a count.
const diagnosisListLimit = 10

// UncoveredLeg identifies one leg with zero coverage across all
// pairings.
type UncoveredLeg struct {
	Index int
	ID    string
}

// Diagnosis is the post-hoc structural analysis of an incidence matrix
// after a non-optimal solve. Two independent scans:
//
//   - Uncovered: legs no pairing covers — structurally impossible to
//     partition, the root cause of most infeasibility.
//   - MultiCount / MultiAverage: legs covered by more than one pairing.
//     Informational only: multiplicity is compatible with partitioning
//     (the solver picks exactly one) and not itself a fault.
type Diagnosis struct {
	Uncovered    []UncoveredLeg
	MultiCount   int
	MultiAverage float64
}

// Diagnose scans every leg row of a for zero and multiple coverage.
//
// Complexity: O(m·n).
func Diagnose(a *Incidence, legs *LegRegistry) *Diagnosis {
	d := &Diagnosis{}

	multiSum := 0
	for i := 0; i < a.Rows(); i++ {
		switch count := a.RowCount(i); {
		case count == 0:
			d.Uncovered = append(d.Uncovered, UncoveredLeg{Index: i, ID: legs.ID(i)})
		case count > 1:
			d.MultiCount++
			multiSum += count
		}
	}
	if d.MultiCount > 0 {
		d.MultiAverage = float64(multiSum) / float64(d.MultiCount)
	}

	return d
}

// String renders the human-readable report: up to the first ten
// uncoverable legs with a remainder count, then the multiplicity
// summary.
func (d *Diagnosis) String() string {
	var b strings.Builder

	if len(d.Uncovered) > 0 {
		fmt.Fprintf(&b, "%d legs don't appear in any pairing:\n", len(d.Uncovered))
		shown := d.Uncovered
		if len(shown) > diagnosisListLimit {
			shown = shown[:diagnosisListLimit]
		}
		for _, leg := range shown {
			fmt.Fprintf(&b, "  - leg index %d: %s\n", leg.Index, leg.ID)
		}
		if rest := len(d.Uncovered) - diagnosisListLimit; rest > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", rest)
		}
	}

	if d.MultiCount > 0 {
		fmt.Fprintf(&b, "%d legs appear in multiple pairings (this is OK); average coverage: %.2f pairings per leg\n",
			d.MultiCount, d.MultiAverage)
	}

	if b.Len() == 0 {
		return "no structural findings\n"
	}

	return b.String()
}
