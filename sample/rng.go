// Package sample - RNG plumbing for the pool builder.
//
// All sampling randomness flows through one explicit *rand.Rand created
// here; no time-based sources, no package-level state. math/rand.Rand is
// not goroutine-safe, but the builder is single-threaded by design and
// never shares its instance.
package sample

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickTwoDistinct returns two distinct indices in [0,n) drawn from rng.
// Caller guarantees n >= 2.
//
// Complexity: O(1).
func pickTwoDistinct(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
