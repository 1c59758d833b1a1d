// Package crewspp supports crew-pairing optimization in two halves:
//
//   - pairing/ + sample/ — a candidate-pairing generator that expands a
//     small seed solution into a larger pool of alternatives using cheap,
//     deterministic heuristic perturbations (local edits, forced-duty
//     windows, mild recombination) under a size/time budget.
//   - spp/ — a set-partitioning model builder and solver boundary that
//     ingests loosely-specified CSV instances, normalizes them into an
//     incidence/cost model, selects a minimum-cost subset of pairings
//     covering every leg exactly once, and diagnoses infeasibility
//     structurally when no optimum exists.
//
// The cmd/crewspp binary drives both halves: `generate` writes candidate
// pools per size tier and mode, `solve` runs the ingestion-and-solve
// pipeline on an instance directory.
//
// This is deliberately not a full airline crew-scheduling system: no
// legality rules, no duty-time regulations, and only crude proxy costs.
// The generator is a cheap sampler, not an optimizer.
package crewspp
