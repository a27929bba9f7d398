package sweep

import "context"

// Option configures sweep behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a sweep run.
type Options struct {
	// Ctx allows cooperative cancellation. The sweep checks it between
	// outer-loop iterations only (one check per prefix), so in-progress
	// aggregate updates are never torn.
	Ctx context.Context
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background() (no cancellation).
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation and deadlines.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
