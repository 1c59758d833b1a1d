// Package pairing defines the core crew-pairing records shared by the
// sample generator and the set-partitioning side:
//
//   - Pairing — an ordered duty sequence assigned to a base, with a cost.
//   - Solution — the immutable seed solution parsed from text.
//   - Pool persistence — the JSON candidate-pool format written by the
//     generator and consumed as future pairings input.
//
// Duties are opaque string tokens; no internal structure is interpreted.
// The proxy cost (500 + 100·len(duties)) is intentionally crude: it only
// provides a consistent, monotonic signal during sampling and makes no
// claim of operational realism.
package pairing
