package stringcalc

import (
	"github.com/zmoon/stringcalc/catalog"
)

type options struct {
	catalog  *catalog.Service
	resolver PitchResolver
	logger   *Logger
}

// Option configures Calculator construction.
type Option func(*options)

// WithCatalogService configures the catalog service the calculator reads
// from. Use this to load vendor data from a custom location or to share one
// cached catalog between calculators.
func WithCatalogService(s *catalog.Service) Option {
	return func(o *options) {
		o.catalog = s
	}
}

// WithPitchResolver substitutes the pitch-name resolver.
//
// If nil is passed, the default equal-temperament resolver (A4=440) is kept.
func WithPitchResolver(r PitchResolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithLogger configures the logger used for warnings and diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
