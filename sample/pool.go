package sample

import (
	"math/rand"
	"time"

	"crewspp/pairing"
)

// Generate expands sol into a deduplicated candidate pool.
//
// The pool starts with every solution pairing verbatim (proxy cost
// 500 + 100·len assigned) and grows by mode-selected perturbations until
// either the effective target size max(TargetSize, len(sol)) is reached
// or the soft wall-clock budget expires. Both conditions are checked at
// the top of each iteration; overrun by up to one generation step is
// expected and acceptable. Under-fill on timeout is a valid, silent
// outcome.
//
// Candidates shorter than two duties are rejected; survivors are deduped
// against the exact ordered duty tuple of every pool entry, then assigned
// the proxy cost and a base copied from a uniformly random solution
// pairing (an intentional simplification: the base is not derived from
// the candidate's content).
//
// Contracts:
//   - sol must be non-empty (ErrEmptySolution).
//   - forced and mixed modes need a non-empty forced duty set
//     (ErrNoForcedDuties); mixed additionally needs len(sol) ≥ 2 for
//     recombination (ErrSolutionTooSmall).
//   - an unrecognized mode fails with ErrUnknownMode before any work.
//
// Determinism: one RNG seeded from Options drives every draw; identical
// (sol, options) reproduce identical pools whenever the time budget does
// not cut generation short (wall clock affects only how many candidates
// are attempted, never which ones).
//
// Returns the pool, the elapsed wall-clock time, and an error only for
// the fatal configuration cases above.
//
// Complexity: O(target · L²) worst case, L the longest pairing.
func Generate(sol pairing.Solution, opts ...Option) ([]pairing.Pairing, time.Duration, error) {
	o := gatherOptions(opts...)

	switch o.mode {
	case ModeLocal, ModeForced, ModeMixed:
	default:
		return nil, 0, ErrUnknownMode
	}
	if len(sol) == 0 {
		return nil, 0, ErrEmptySolution
	}

	forced := buildForcedIndex(sol)
	if (o.mode == ModeForced || o.mode == ModeMixed) && len(forced.duties) == 0 {
		return nil, 0, ErrNoForcedDuties
	}
	if o.mode == ModeMixed && len(sol) < 2 {
		return nil, 0, ErrSolutionTooSmall
	}

	rng := rngFromSeed(o.seed)
	start := time.Now()

	target := o.targetSize
	if len(sol) > target {
		target = len(sol)
	}

	pool := make([]pairing.Pairing, 0, target)
	seen := make(map[string]struct{}, target)

	// The solution pairings are always carried into the pool verbatim and
	// seed the dedup key set.
	for _, p := range sol {
		seen[pairing.Key(p.Duties)] = struct{}{}
		pool = append(pool, pairing.Pairing{
			ID:     p.ID,
			Base:   p.Base,
			Duties: cloneDuties(p.Duties),
			Cost:   pairing.ProxyCost(p.Duties),
		})
	}

	for len(pool) < target && time.Since(start) < o.timeLimit {
		candidates := drawCandidates(sol, forced, o.mode, rng)

		for _, d := range candidates {
			if len(d) < 2 {
				continue
			}
			key := pairing.Key(d)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pool = append(pool, pairing.Pairing{
				Base:   sol[rng.Intn(len(sol))].Base,
				Duties: d,
				Cost:   pairing.ProxyCost(d),
			})

			if len(pool) >= target {
				break
			}
		}
	}

	return pool, time.Since(start), nil
}

// drawCandidates produces one batch of raw candidate sequences according
// to mode. Mode validity and forced/size preconditions are established by
// Generate before the loop starts.
func drawCandidates(sol pairing.Solution, forced forcedIndex, mode Mode, rng *rand.Rand) [][]string {
	switch mode {
	case ModeLocal:
		return LocalPerturb(sol[rng.Intn(len(sol))].Duties)

	case ModeForced:
		return drawForced(sol, forced, rng)

	default: // ModeMixed
		r := rng.Float64()
		switch {
		case r < mixedLocalCut:
			return LocalPerturb(sol[rng.Intn(len(sol))].Duties)
		case r < mixedForcedCut:
			return drawForced(sol, forced, rng)
		default:
			i, j := pickTwoDistinct(rng, len(sol))
			return [][]string{Recombine(sol[i].Duties, sol[j].Duties)}
		}
	}
}

// drawForced picks a uniformly random forced duty, then a uniformly
// random containing pairing, and emits the protective window (0 or 1
// candidates).
func drawForced(sol pairing.Solution, forced forcedIndex, rng *rand.Rand) [][]string {
	duty := forced.duties[rng.Intn(len(forced.duties))]
	owners := forced.byDuty[duty]
	src := sol[owners[rng.Intn(len(owners))]]

	if alt := ForcedWindow(duty, src.Duties); alt != nil {
		return [][]string{alt}
	}

	return nil
}
