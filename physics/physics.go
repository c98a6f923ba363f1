package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gravity is the gravitational conversion constant in in·lbm/(lbf·s²).
//
// At standard gravity, 1 lbm exerts a force of 1 lbf, so dividing the
// lbm-based quantity UW*(2*L*F)^2 by g yields pounds-force:
//
//	g = 9.80665 m/s² * 3.28084 ft/m * 12 in/ft = 386.09 in/s²
const Gravity = 386.09

// ErrNonPositive indicates an argument that must be strictly positive.
//
// The offending argument is identified by Name.
type ErrNonPositive struct {
	Name  string
	Value float64
}

func (e *ErrNonPositive) Error() string {
	return fmt.Sprintf("%s must be positive, got %v", e.Name, e.Value)
}

func checkPositive(name string, v float64) error {
	if !(v > 0) {
		return &ErrNonPositive{Name: name, Value: v}
	}
	return nil
}

// Tension computes string tension in lbf from unit weight uw (lbm/in),
// scale length l (in), and fundamental frequency f (Hz).
func Tension(uw, l, f float64) (float64, error) {
	for _, arg := range []struct {
		name string
		v    float64
	}{{"unit weight", uw}, {"scale length", l}, {"frequency", f}} {
		if err := checkPositive(arg.name, arg.v); err != nil {
			return 0, err
		}
	}
	return uw * ((2 * l * f) * (2 * l * f) / Gravity), nil
}

// UnitWeight computes the unit weight (lbm/in) that produces tension t (lbf)
// at scale length l (in) and fundamental frequency f (Hz). It is the
// algebraic inverse of Tension for UW.
func UnitWeight(t, l, f float64) (float64, error) {
	for _, arg := range []struct {
		name string
		v    float64
	}{{"tension", t}, {"scale length", l}, {"frequency", f}} {
		if err := checkPositive(arg.name, arg.v); err != nil {
			return 0, err
		}
	}
	return t * Gravity / ((2 * l * f) * (2 * l * f)), nil
}

// GaugeFromDensity computes the precise string diameter (in) that produces
// tension t (lbf) at scale length l (in) and frequency f (Hz) for a material
// of volumetric density rho (lbm/in³).
//
// It combines UnitWeight with the cylindrical-mass relation
// UW = rho * π * (d/2)², solved for d.
func GaugeFromDensity(rho, t, l, f float64) (float64, error) {
	if err := checkPositive("density", rho); err != nil {
		return 0, err
	}
	uw, err := UnitWeight(t, l, f)
	if err != nil {
		return 0, err
	}
	return 2 * math.Sqrt(uw/(rho*math.Pi)), nil
}

// Tensions computes the forward tension formula over a unit-weight column,
// storing the result in dst. If dst is nil, a new slice is allocated;
// otherwise len(dst) must equal len(uw).
//
// Assumes l and f are positive (caller's responsibility); used on the
// suggestion-search hot path where the inputs are already validated.
func Tensions(dst, uw []float64, l, f float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(uw))
	}
	return floats.ScaleTo(dst, (2*l*f)*(2*l*f)/Gravity, uw)
}
