package stringcalc

import (
	"fmt"

	"github.com/zmoon/stringcalc/catalog"
	"github.com/zmoon/stringcalc/physics"
	"github.com/zmoon/stringcalc/pitch"
)

// DefaultPitch is the pitch assumed when none is given.
const DefaultPitch = "A4"

// PitchResolver converts a scientific-pitch-notation name (e.g. "A4") to a
// fundamental frequency in Hz. The pitch subpackage provides the default
// equal-temperament implementation.
type PitchResolver interface {
	Frequency(name string) (float64, error)
}

// Calculator is the string-selection and physical-computation engine. It
// owns a cached catalog service and a pitch resolver; all of its operations
// are small, bounded, in-memory computations, safe for concurrent use.
type Calculator struct {
	catalog  *catalog.Service
	resolver PitchResolver
	logger   *Logger
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.catalog == nil {
		o.catalog = catalog.NewService(func(so *catalog.ServiceOptions) {
			so.Logger = o.logger.Logger
		})
	}
	if o.resolver == nil {
		o.resolver = pitch.New()
	}
	return &Calculator{
		catalog:  o.catalog,
		resolver: o.resolver,
		logger:   o.logger,
	}
}

// Catalog builds (on first use) and returns the merged string catalog.
func (c *Calculator) Catalog() (*catalog.Catalog, error) {
	cat, err := c.catalog.Load()
	if err != nil {
		return nil, translateError(err)
	}
	return cat, nil
}

func (c *Calculator) frequency(pitchName string) (float64, error) {
	if pitchName == "" {
		pitchName = DefaultPitch
	}
	return c.resolver.Frequency(pitchName)
}

// resolveType maps a string type to its catalog group id, accepting legacy
// shorthands with a warning on that path.
func (c *Calculator) resolveType(cat *catalog.Catalog, typeID string) (string, error) {
	if cat.HasGroup(typeID) {
		return typeID, nil
	}
	if canonical, ok := typeAliases[typeID]; ok && cat.HasGroup(canonical) {
		c.logger.LogAliasResolved(typeID, canonical)
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %w", ErrInvalidArgument,
		&UnknownTypeError{TypeIDs: []string{typeID}, Valid: cat.GroupIDs()})
}

// Tension computes the tension in lbf of s sounding the named pitch,
// looking up the unit weight for s's type and gauge in the catalog. An
// empty pitch name means DefaultPitch.
func (c *Calculator) Tension(s String, pitchName string) (float64, error) {
	f, err := c.frequency(pitchName)
	if err != nil {
		return 0, translateError(err)
	}

	cat, err := c.catalog.Load()
	if err != nil {
		return 0, translateError(err)
	}

	groupID, err := c.resolveType(cat, s.Type)
	if err != nil {
		return 0, err
	}

	rec, err := cat.Lookup(groupID, s.Gauge)
	if err != nil {
		return 0, translateError(err)
	}

	t, err := physics.Tension(rec.UW, s.L, f)
	if err != nil {
		return 0, translateError(err)
	}
	return t, nil
}

// UnitWeight computes the unit weight in lbm/in that produces tension t
// (lbf) at scale length l (in) sounding the named pitch.
func (c *Calculator) UnitWeight(t, l float64, pitchName string) (float64, error) {
	f, err := c.frequency(pitchName)
	if err != nil {
		return 0, translateError(err)
	}
	uw, err := physics.UnitWeight(t, l, f)
	if err != nil {
		return 0, translateError(err)
	}
	return uw, nil
}

// Gauge computes the precise diameter in inches for a material of
// volumetric density rho (lbm/in³) producing tension t (lbf) at scale
// length l (in) sounding the named pitch. Not a nominal gauge.
func (c *Calculator) Gauge(rho, t, l float64, pitchName string) (float64, error) {
	f, err := c.frequency(pitchName)
	if err != nil {
		return 0, translateError(err)
	}
	d, err := physics.GaugeFromDensity(rho, t, l, f)
	if err != nil {
		return 0, translateError(err)
	}
	return d, nil
}
