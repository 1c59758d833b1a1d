package pairing

import "strings"

// Proxy cost parameters used by the sample generator.
// cost(p) = CostBase + CostPerDuty·len(p.Duties).
const (
	// CostBase is the fixed component of the generator proxy cost.
	CostBase = 500.0

	// CostPerDuty is the per-duty component of the generator proxy cost.
	CostPerDuty = 100.0
)

// keySep separates duty tokens inside a dedup key. The unit separator
// cannot appear in well-formed duty tokens, so the join is collision-free.
const keySep = "\x1f"

// Pairing is an ordered sequence of duties assigned to a crew base.
//
// Duties execute in sequence; order is semantically meaningful. ID is a
// synthetic identifier ("SOL_<n>" for seed pairings) and may be empty for
// generated candidates. Base is an opaque home-location token, empty when
// unknown.
type Pairing struct {
	ID     string
	Base   string
	Duties []string
	Cost   float64
}

// Solution is the ordered seed solution for candidate generation.
// It is parsed once and never mutated afterwards.
type Solution []Pairing

// ProxyCost assigns the crude length-based cost used during sampling:
// 500 + 100 per duty. It is not a unit-compatible relative of the
// leg-count cost the solver side defaults to; the two proxies coexist
// deliberately.
//
// Complexity: O(1).
func ProxyCost(duties []string) float64 {
	return CostBase + CostPerDuty*float64(len(duties))
}

// Key returns the dedup key for a duty sequence: the exact ordered tuple
// of duties. Two pairings collide iff their duty sequences are identical,
// regardless of base or cost.
//
// Complexity: O(total token length).
func Key(duties []string) string {
	return strings.Join(duties, keySep)
}
