package stringcalc

import (
	"errors"
	"fmt"

	"github.com/zmoon/stringcalc/catalog"
	"github.com/zmoon/stringcalc/physics"
	"github.com/zmoon/stringcalc/pitch"
)

var (
	// ErrInvalidArgument tags validation failures: unknown type ids,
	// non-positive lengths, tensions, densities, or counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoMatch tags valid queries that match nothing in the catalog,
	// as opposed to queries that were invalid to begin with.
	ErrNoMatch = errors.New("no catalog match")

	// ErrAmbiguous tags catalog lookups matched by more than one row.
	ErrAmbiguous = errors.New("ambiguous catalog match")

	// ErrInvalidCount is returned when a requested result count is not
	// positive.
	ErrInvalidCount = errors.New("n must be positive")
)

// ParseError indicates a malformed string spec. The message always includes
// a worked valid example.
type ParseError struct {
	Input  string
	Reason string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input %q %s; a valid example is %q", e.Input, e.Reason, `22.9" PB .042w`)
}

func (e *ParseError) Unwrap() error { return e.cause }

// UnknownTypeError indicates string type ids outside the loaded catalog's
// group domain (after alias resolution). Valid enumerates the acceptable
// group ids.
type UnknownTypeError struct {
	TypeIDs []string
	Valid   []string
	cause   error
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("string type id(s) %v not found in the catalog; use one of %v", e.TypeIDs, e.Valid)
}

func (e *UnknownTypeError) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the public error contract so
// the three severities (validation, no-match, ambiguity) are distinguishable
// with errors.Is at the boundary.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var unknownGroup *catalog.ErrUnknownGroup
	if errors.As(err, &unknownGroup) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument,
			&UnknownTypeError{TypeIDs: unknownGroup.GroupIDs, Valid: unknownGroup.Known, cause: err})
	}

	var gaugeNotFound *catalog.ErrGaugeNotFound
	if errors.As(err, &gaugeNotFound) {
		return fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	var ambiguous *catalog.ErrAmbiguousGauge
	if errors.As(err, &ambiguous) {
		return fmt.Errorf("%w: %w", ErrAmbiguous, err)
	}

	var nonPositive *physics.ErrNonPositive
	if errors.As(err, &nonPositive) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var badPitch *pitch.ErrInvalidName
	if errors.As(err, &badPitch) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
