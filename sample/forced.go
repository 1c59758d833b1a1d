package sample

import "crewspp/pairing"

// forcedIndex holds the forced-duty view of a seed solution: the duties
// occurring exactly once across all pairings, plus, per forced duty, the
// pairings that contain it.
//
// Both the duty list and the per-duty pairing lists follow solution order
// (first occurrence), keeping every downstream RNG draw deterministic.
// The index is derived from the solution only and never recomputed from
// the growing pool.
type forcedIndex struct {
	duties []string         // forced duties, first-occurrence order
	byDuty map[string][]int // forced duty → indices of containing pairings
}

// buildForcedIndex scans sol and collects duties with occurrence count
// exactly 1 together with their containing pairings.
//
// Complexity: O(total duties).
func buildForcedIndex(sol pairing.Solution) forcedIndex {
	counts := make(map[string]int)
	var order []string
	for _, p := range sol {
		for _, d := range p.Duties {
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}
	}

	idx := forcedIndex{byDuty: make(map[string][]int)}
	for _, d := range order {
		if counts[d] == 1 {
			idx.duties = append(idx.duties, d)
		}
	}
	for pi, p := range sol {
		for _, d := range p.Duties {
			if counts[d] == 1 {
				idx.byDuty[d] = append(idx.byDuty[d], pi)
			}
		}
	}

	return idx
}
