package spp

import "go.uber.org/zap"

// Option configures an Instance. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger routes the loader's recovered-and-warned events (unseen
// legs, missing optional files, skipped cost rows) to l. The default is
// a no-op logger: libraries stay silent unless a caller opts in.
//
// Panics when l is nil (programmer error; pass zap.NewNop() to silence
// explicitly).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("spp: WithLogger: logger must not be nil")
	}

	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, set := range opts {
		set(&o)
	}

	return o
}
