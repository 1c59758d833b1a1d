// Package spp builds and solves the Set Partitioning Problem (SPP) for
// crew-pairing selection from a CSV instance directory.
//
// Given a universe of flight legs and a candidate set of pairings, the
// package formulates a binary integer program selecting a minimum-cost
// subset of pairings such that every leg is covered by exactly one
// selected pairing. Ingestion is deliberately fault-tolerant: column
// names resolve through case-insensitive alias tables, the incidence
// matrix is inferred from pairing leg lists when no incidence file is
// supplied, legs discovered only during inference expand the leg
// universe with a warning instead of failing, and missing or malformed
// cost rows fall back to a leg-count proxy.
//
// The solve itself stays behind the narrow Solver interface; the default
// backend encodes the model as pseudo-boolean constraints for gophersat.
// Only an optimal outcome yields a selection — any other status is
// treated uniformly as "no usable solution" and triggers structural
// infeasibility diagnostics.
//
// Note on constraint sense: historical descriptions of this model state
// the coverage constraint as "at least one" (set covering), but the
// program actually built — here and in its predecessors — enforces
// "exactly one" (true partitioning). The partitioning behavior is the
// authoritative one; Model.Sense records it explicitly.
package spp
