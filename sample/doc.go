// Package sample expands a seed crew-pairing solution into a larger pool
// of candidate pairings using cheap heuristic perturbations.
//
// Three generation modes are supported:
//
//   - local  — small structural changes within one existing pairing
//     (end trims, interior deletions, midpoint split).
//   - forced — minimal two-duty windows protecting duties that occur
//     exactly once in the solution.
//   - mixed  — a fixed-weight blend of local (60%), forced (30%) and mild
//     head/tail recombination of two pairings (10%).
//
// The builder is a sampler, not an optimizer: it makes no claim of
// exhaustive or provably good coverage of the pairing space. Generation
// runs until a target pool size is reached or a soft wall-clock budget
// expires, deduplicating candidates by exact duty sequence.
//
// Determinism: all randomness flows through one explicit *rand.Rand seeded
// from Options; the same (solution, options) always reproduces the same
// pool when the time budget is not the binding constraint.
package sample
