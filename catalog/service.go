package catalog

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ServiceOptions configures a Service.
type ServiceOptions struct {
	// Sources are the vendor sources merged into the catalog, in order.
	// Defaults to DefaultSources().
	Sources []Source
	// Logger receives build and per-row diagnostics.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Service owns the one-per-process cached catalog build. Building is
// deterministic but expensive enough to avoid recomputation, so the result
// is cached until Invalidate is called; concurrent first callers share a
// single build instead of racing.
type Service struct {
	sources []Source
	logger  *slog.Logger

	sf singleflight.Group

	mu      sync.RWMutex
	catalog *Catalog
}

// NewService creates a catalog service.
func NewService(optFns ...func(o *ServiceOptions)) *Service {
	opts := ServiceOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sources == nil {
		opts.Sources = DefaultSources(func(o *SourceOptions) {
			o.Logger = opts.Logger
		})
	}
	return &Service{
		sources: opts.Sources,
		logger:  opts.Logger,
	}
}

// Load returns the merged catalog, building it on first use.
func (s *Service) Load() (*Catalog, error) {
	s.mu.RLock()
	c := s.catalog
	s.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	v, err, _ := s.sf.Do("build", func() (any, error) {
		s.mu.RLock()
		c := s.catalog
		s.mu.RUnlock()
		if c != nil {
			return c, nil
		}

		c, err := Build(s.sources, s.logger)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.catalog = c
		s.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// Invalidate drops the cached catalog; the next Load rebuilds it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}
