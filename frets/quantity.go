package frets

import (
	"fmt"
	"regexp"
	"strconv"
)

// Quantity is a length value with an attached unit.
//
// Computations on quantities are dimension-preserving: the unit rides along
// unchanged unless To is called explicitly.
type Quantity struct {
	Value float64
	Unit  string
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(q.Value, 'g', -1, 64), q.Unit)
}

// Length units convertible by To, as factors to inches.
var unitToInches = map[string]float64{
	"in": 1,
	"mm": 1.0 / 25.4,
	"cm": 1.0 / 2.54,
	"m":  1000.0 / 25.4,
}

func normalizeUnit(u string) string {
	switch u {
	case `"`, "inch", "inches":
		return "in"
	default:
		return u
	}
}

// ErrUnknownUnit indicates a length unit the package cannot convert.
type ErrUnknownUnit struct {
	Unit string
}

func (e *ErrUnknownUnit) Error() string {
	return fmt.Sprintf("unknown length unit %q", e.Unit)
}

var reQuantity = regexp.MustCompile(`^([-+]?[0-9]*\.?[0-9]+) *("|[A-Za-z]+)$`)

// ParseQuantity parses a textual length like `25.5 in`, `3 cm`, or `21"`.
// The unit is kept as written (normalized to "in" for the inch marks).
func ParseQuantity(s string) (Quantity, error) {
	m := reQuantity.FindStringSubmatch(s)
	if m == nil {
		return Quantity{}, fmt.Errorf("could not parse quantity %q (a valid example is %q)", s, "25.5 in")
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("could not parse quantity value %q: %w", m[1], err)
	}
	return Quantity{Value: v, Unit: normalizeUnit(m[2])}, nil
}

// To converts the quantity to the given length unit.
func (q Quantity) To(unit string) (Quantity, error) {
	from, ok := unitToInches[normalizeUnit(q.Unit)]
	if !ok {
		return Quantity{}, &ErrUnknownUnit{Unit: q.Unit}
	}
	to, ok := unitToInches[normalizeUnit(unit)]
	if !ok {
		return Quantity{}, &ErrUnknownUnit{Unit: unit}
	}
	return Quantity{Value: q.Value * from / to, Unit: normalizeUnit(unit)}, nil
}
