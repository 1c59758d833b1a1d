// Package sample - functional configuration for the pool builder.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     data-level problems (unknown mode string) surface as sentinel errors
//     from Generate instead.
package sample

import "time"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTargetSize requests no growth beyond the seed solution;
	// the effective target is always max(TargetSize, len(solution)).
	DefaultTargetSize = 0

	// DefaultTimeLimit is the soft wall-clock budget for one run.
	DefaultTimeLimit = 10 * time.Second

	// DefaultMode is the cheapest, purely structural candidate source.
	DefaultMode = ModeLocal

	// DefaultSeed matches the batch seed used by the reference tiers.
	DefaultSeed int64 = 42
)

const (
	panicTargetNegative   = "sample: WithTargetSize: size must be non-negative"
	panicTimeLimitInvalid = "sample: WithTimeLimit: limit must be positive"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	targetSize int
	timeLimit  time.Duration
	mode       Mode
	seed       int64
}

// WithTargetSize sets the desired pool size. The pool never shrinks below
// the seed solution, so values smaller than len(solution) leave the pool
// at exactly the solution pairings.
//
// Panics when size is negative (programmer error).
func WithTargetSize(size int) Option {
	if size < 0 {
		panic(panicTargetNegative)
	}

	return func(o *Options) { o.targetSize = size }
}

// WithTimeLimit sets the soft wall-clock budget. The limit is polled once
// per iteration, so overrun by up to one generation step is expected.
//
// Panics when limit is not positive (programmer error).
func WithTimeLimit(limit time.Duration) Option {
	if limit <= 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = limit }
}

// WithMode selects the candidate source. Unknown values are not rejected
// here: mode strings typically arrive from configuration files, so
// Generate reports ErrUnknownMode instead of panicking.
func WithMode(mode Mode) Option {
	return func(o *Options) { o.mode = mode }
}

// WithSeed fixes the RNG seed for the run. Seed 0 maps to a fixed default
// stream (see rngFromSeed); any other value is used verbatim. Re-running
// with the same seed, solution and mode reproduces an identical pool.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// gatherOptions resolves setters against documented defaults.
// Last-writer-wins; stable for a given sequence of opts.
func gatherOptions(opts ...Option) Options {
	o := Options{
		targetSize: DefaultTargetSize,
		timeLimit:  DefaultTimeLimit,
		mode:       DefaultMode,
		seed:       DefaultSeed,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
