package naturallanguage

import "time"

type implExtractor struct {
	resolver Resolver
	now      func() time.Time
}

// Option configures an Extractor.
type Option func(*implExtractor)

// WithClock overrides the wall clock used as reference for relative dates.
func WithClock(now func() time.Time) Option {
	return func(e *implExtractor) {
		e.now = now
	}
}

// New creates an Extractor that resolves dates with resolver.
func New(resolver Resolver, opts ...Option) Extractor {
	if resolver == nil {
		panic("naturallanguage: resolver is required")
	}
	e := &implExtractor{
		resolver: resolver,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
