package envvar

import "github.com/ardnew/gendotenv/log"

// Option configures [Recognize] and [Analyze].
type Option func(options) options

type options struct {
	prefix   string
	maxDepth int
	logger   log.Logger
}

func makeOptions(opts ...Option) options {
	o := options{
		prefix:   DefaultPrefix,
		maxDepth: DefaultMaxDepth,
		logger:   log.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}

// WithPrefix sets the environment prefix used when a declaration does not
// give one. An empty prefix keeps [DefaultPrefix].
func WithPrefix(prefix string) Option {
	return func(o options) options {
		if prefix != "" {
			o.prefix = prefix
		}

		return o
	}
}

// WithMaxDepth sets how many name-to-name links variable resolution
// follows. Negative values select [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o options) options {
		if depth < 0 {
			depth = DefaultMaxDepth
		}

		o.maxDepth = depth

		return o
	}
}

// WithLogger sets the logger that receives trace and debug records.
func WithLogger(logger log.Logger) Option {
	return func(o options) options {
		o.logger = logger

		return o
	}
}
