package cellgrid

import "log/slog"

// Option configures a Grid at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

// WithLogger sets the logger for a single grid, overriding the package
// logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrictMerges makes New reject tables whose merge spans overlap with
// ErrOverlappingMerge. Without it the first anchor to claim a position keeps
// it and later claims are dropped.
func WithStrictMerges() Option {
	return func(o *options) { o.strict = true }
}

func gatherOptions(opts []Option) options {
	o := options{logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
