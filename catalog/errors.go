package catalog

import (
	"fmt"
	"strings"
)

// ErrDuplicateID indicates two rows of the merged catalog sharing a product
// id. Detected at load time.
type ErrDuplicateID struct {
	ID      string
	Sources []string
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate product id %q (sources: %s)", e.ID, strings.Join(e.Sources, ", "))
}

// ErrGroupCollision indicates two sources emitting the same group id,
// violating the global group-id namespace invariant. Detected at load time.
type ErrGroupCollision struct {
	GroupIDs []string
	Sources  []string
}

func (e *ErrGroupCollision) Error() string {
	return fmt.Sprintf("group id(s) %v found in multiple sources (%s)", e.GroupIDs, strings.Join(e.Sources, ", "))
}

// ErrUnknownGroup indicates a group id that is not in the loaded catalog's
// closed group domain. A filter value outside the domain is a caller error,
// not a silent empty result.
type ErrUnknownGroup struct {
	GroupIDs []string
	Known    []string
}

func (e *ErrUnknownGroup) Error() string {
	return fmt.Sprintf("unknown string type group id(s) %v; use one of %v", e.GroupIDs, e.Known)
}

// ErrGaugeNotFound indicates that a group has no row with the requested
// gauge (exact match).
type ErrGaugeNotFound struct {
	GroupID   string
	Gauge     float64
	Available []float64
}

func (e *ErrGaugeNotFound) Error() string {
	avail := make([]string, len(e.Available))
	for i, g := range e.Available {
		avail[i] = fmt.Sprintf("%v", g)
	}
	return fmt.Sprintf("gauge %v not found; available %s gauges are: %s",
		e.Gauge, e.GroupID, strings.Join(avail, ", "))
}

// ErrAmbiguousGauge indicates multiple rows of a group matching one gauge.
type ErrAmbiguousGauge struct {
	GroupID string
	Gauge   float64
	IDs     []string
}

func (e *ErrAmbiguousGauge) Error() string {
	return fmt.Sprintf("multiple %s rows match gauge %v: %v", e.GroupID, e.Gauge, e.IDs)
}

// ErrBadRow indicates a source row that fails schema validation
// (missing columns, non-numeric or non-positive measurements).
type ErrBadRow struct {
	Source string
	Line   int
	Reason string
}

func (e *ErrBadRow) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Source, e.Line, e.Reason)
}
