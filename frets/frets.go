package frets

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrSamePosition is returned when the two endpoints of a measured
	// distance coincide, leaving the scale length undetermined.
	ErrSamePosition = errors.New("positions must be different to compute the scale length")

	// ErrNonPositiveDistance is returned for a measured distance <= 0.
	ErrNonPositiveDistance = errors.New("distance must be positive")

	// ErrNonPositiveLength is returned for a scale length <= 0.
	ErrNonPositiveLength = errors.New("scale length must be positive")
)

// ErrInvalidFret indicates a fret number outside the valid range (n >= 1
// after flooring).
type ErrInvalidFret struct {
	N float64
}

func (e *ErrInvalidFret) Error() string {
	return fmt.Sprintf("fret numbers must be positive, got %v", e.N)
}

// DistanceET returns the exact equal-temperament distance from the nut to
// fret n for scale length l.
//
// Non-integer fret numbers are floored before computing.
func DistanceET(n float64, l float64) (float64, error) {
	n = math.Floor(n)
	if !(n > 0) {
		return 0, &ErrInvalidFret{N: n}
	}
	if !(l > 0) {
		return 0, ErrNonPositiveLength
	}
	return l * (1 - math.Exp2(-n/12)), nil
}

// Row is one entry of a fret-distance table.
type Row struct {
	// N is the fret number, starting at 1.
	N int
	// D is the distance from the nut to the fret.
	D float64
	// DD is the distance from the previous fret (the nut for fret 1).
	DD float64
	// DInv is the remaining distance from the fret to the saddle.
	DInv float64
}

// Distances computes the fret-distance table for n frets (not counting the
// nut) at scale length l. The rows are derived values, recomputed on demand;
// nothing is stored.
func Distances(n int, l float64) ([]Row, error) {
	if n < 1 {
		return nil, &ErrInvalidFret{N: float64(n)}
	}
	if !(l > 0) {
		return nil, ErrNonPositiveLength
	}

	d := make([]float64, n)
	for i := range d {
		d[i] = l * (1 - math.Exp2(-float64(i+1)/12))
	}

	dd := make([]float64, n)
	dd[0] = d[0]
	floats.SubTo(dd[1:], d[1:], d[:n-1])

	dinv := floats.ScaleTo(make([]float64, n), -1, d)
	floats.AddConst(l, dinv)

	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{N: i + 1, D: d[i], DD: dd[i], DInv: dinv[i]}
	}
	return rows, nil
}

// Position identifies a point along the string: the nut, a numbered fret, or
// the saddle/bridge end.
type Position int

const (
	// Nut is the zero-fret end of the fretboard.
	Nut Position = 0
	// Saddle is the bridge end of the string, the limit of infinite fret
	// number.
	Saddle Position = -1
)

// Fret returns the Position for fret number n >= 1.
func Fret(n int) Position { return Position(n) }

func (p Position) String() string {
	switch {
	case p == Nut:
		return "nut"
	case p == Saddle:
		return "saddle"
	default:
		return fmt.Sprintf("fret %d", int(p))
	}
}

// coefficient is the fraction of the scale length between the nut and p.
func (p Position) coefficient() (float64, error) {
	switch {
	case p == Nut:
		return 0, nil
	case p == Saddle:
		return 1, nil
	case p > 0:
		return 1 - math.Exp2(-float64(p)/12), nil
	default:
		return 0, &ErrInvalidFret{N: float64(p)}
	}
}

// LengthFromDistance computes the scale length implied by measured distance d
// between positions a and b.
//
// The position order does not matter: L = d / |c(b) - c(a)|, where c is the
// equal-temperament fraction of the scale length at each position.
func LengthFromDistance(a, b Position, d float64) (float64, error) {
	if !(d > 0) {
		return 0, ErrNonPositiveDistance
	}

	ca, err := a.coefficient()
	if err != nil {
		return 0, err
	}
	cb, err := b.coefficient()
	if err != nil {
		return 0, err
	}

	if ca == cb {
		return 0, fmt.Errorf("%w: %s and %s", ErrSamePosition, a, b)
	}
	return d / math.Abs(cb-ca), nil
}

// LengthFromQuantity is LengthFromDistance for a unit-carrying measurement.
// The result carries the same unit as the input; no conversion is performed.
func LengthFromQuantity(a, b Position, d Quantity) (Quantity, error) {
	l, err := LengthFromDistance(a, b, d.Value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: l, Unit: d.Unit}, nil
}
