// Package sample - pure perturbation generators.
//
// Each generator maps one (or two) duty sequences to zero or more raw
// candidate sequences. No RNG, no dedup, no cost assignment happens here;
// the pool builder owns those concerns. Emission order is fixed, so the
// generators are referentially transparent and the builder's determinism
// reduces to its RNG draws alone.
package sample

// LocalPerturb emits conservative structural variations of one duty
// sequence d of length L, in this fixed order:
//
//  1. d[1:] and d[:L-1], only when L > 2 (end trims).
//  2. d with interior index i removed, for every i in [1, L-2], only when
//     the remainder keeps length ≥ 2.
//  3. the midpoint split d[:mid] and d[mid:] with mid = L/2, only when
//     both halves keep length ≥ 2.
//
// Returned slices are fresh copies; d is never aliased or mutated.
//
// Complexity: O(L²) time and space in the worst case.
func LocalPerturb(d []string) [][]string {
	var out [][]string

	if len(d) > 2 {
		out = append(out, cloneDuties(d[1:]), cloneDuties(d[:len(d)-1]))
	}

	// Interior deletions keep length len(d)-1, which is ≥ 2 whenever the
	// loop runs at all (L ≥ 3), so no extra length guard is needed.
	for i := 1; i < len(d)-1; i++ {
		nd := make([]string, 0, len(d)-1)
		nd = append(nd, d[:i]...)
		nd = append(nd, d[i+1:]...)
		out = append(out, nd)
	}

	mid := len(d) / 2
	if mid >= 2 && len(d)-mid >= 2 {
		out = append(out, cloneDuties(d[:mid]), cloneDuties(d[mid:]))
	}

	return out
}

// ForcedWindow builds the minimal two-duty window protecting duty inside
// duties (first occurrence):
//
//   - not first in the sequence → [previous, duty]
//   - first but not last        → [duty, next]
//   - first and only            → nil (no alternative exists)
//
// The window guarantees the forced duty stays covered in the candidate.
// Returns nil when duty does not occur in duties.
//
// Complexity: O(L).
func ForcedWindow(duty string, duties []string) []string {
	i := -1
	for k, d := range duties {
		if d == duty {
			i = k
			break
		}
	}
	if i < 0 {
		return nil
	}

	if i > 0 {
		return cloneDuties(duties[i-1 : i+1])
	}
	if i < len(duties)-1 {
		return cloneDuties(duties[i : i+2])
	}

	return nil
}

// Recombine cuts both sequences at cut = min(len(a), len(b))/2 and joins
// the head of a with the tail of b. Purely structural mixing: no check
// that the concatenation is operationally sensible.
//
// Complexity: O(len result).
func Recombine(a, b []string) []string {
	cut := len(a)
	if len(b) < cut {
		cut = len(b)
	}
	cut /= 2

	out := make([]string, 0, cut+len(b)-cut)
	out = append(out, a[:cut]...)
	out = append(out, b[cut:]...)

	return out
}

// cloneDuties returns a fresh copy of d.
func cloneDuties(d []string) []string {
	out := make([]string, len(d))
	copy(out, d)

	return out
}
