package stringcalc

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/zmoon/stringcalc/physics"
)

// RangeMargin is the tension margin in lbf for the range-exceeded warning:
// when every returned suggestion misses the target by more than this, all on
// the same side, the result is flagged.
const RangeMargin = 1.7

// DefaultSuggestTypes returns the default type set for SuggestGauge: the two
// families most commonly combined into steel-string sets by the primary
// vendor.
func DefaultSuggestTypes() []string {
	return []string{"PB", "PL"}
}

// SuggestOptions configures SuggestGauge.
type SuggestOptions struct {
	// Types is the set of catalog group ids to search. Legacy shorthands
	// from the alias table are accepted with a warning. Defaults to
	// DefaultSuggestTypes().
	Types []string
	// N is the number of suggestions to return. Defaults to 3.
	N int
}

// Suggestion is one ranked catalog entry from SuggestGauge.
type Suggestion struct {
	// ID is the catalog product id.
	ID string
	// Tension is the entry's computed tension in lbf at the requested
	// scale length and pitch.
	Tension float64
	// Delta is the signed difference Tension - target.
	Delta float64
}

// RangeWarning flags a suggestion result whose every entry misses the
// target tension by more than Margin on the same side. The result it is
// attached to is still valid.
type RangeWarning struct {
	// Types is the searched type set (canonical group ids).
	Types []string
	// Target is the requested tension in lbf.
	Target float64
	// Margin is the tension margin that was exceeded.
	Margin float64
	// Side is "low" when every entry fell short, "high" when every entry
	// overshot.
	Side string
}

func (w *RangeWarning) String() string {
	return fmt.Sprintf("target tension %v lbf is outside the range that string type group(s) %v can provide", w.Target, w.Types)
}

// SuggestResult is the outcome of a gauge-suggestion search.
type SuggestResult struct {
	// Suggestions holds the selected entries, ordered by signed Delta
	// ascending, so the best entries under and over the target bracket it
	// within the list.
	Suggestions []Suggestion
	// Warning is non-nil when the target is outside the achievable range
	// for the searched type set.
	Warning *RangeWarning
}

// SuggestGauge searches the catalog for the strings whose tension at scale
// length l (in) sounding the named pitch comes closest to target tension t
// (lbf).
//
// Selection is by absolute tension difference with ties broken by catalog
// row order; the selected entries are then presented sorted by signed
// difference. The two orderings are deliberately different.
func (c *Calculator) SuggestGauge(t, l float64, pitchName string, optFns ...func(o *SuggestOptions)) (*SuggestResult, error) {
	opts := SuggestOptions{N: 3}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.N < 1 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrInvalidArgument, ErrInvalidCount, opts.N)
	}
	if !(t > 0) {
		return nil, translateError(&physics.ErrNonPositive{Name: "tension", Value: t})
	}
	if !(l > 0) {
		return nil, translateError(&physics.ErrNonPositive{Name: "scale length", Value: l})
	}

	f, err := c.frequency(pitchName)
	if err != nil {
		return nil, translateError(err)
	}

	cat, err := c.catalog.Load()
	if err != nil {
		return nil, translateError(err)
	}

	// Resolve the type set against the closed group domain, accepting
	// legacy shorthands on the warning path.
	requested := opts.Types
	if len(requested) == 0 {
		requested = DefaultSuggestTypes()
	}
	var types, unknown []string
	for _, id := range requested {
		switch canonical, ok := typeAliases[id]; {
		case cat.HasGroup(id):
			types = append(types, id)
		case ok && cat.HasGroup(canonical):
			c.logger.LogAliasResolved(id, canonical)
			types = append(types, canonical)
		default:
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		err := fmt.Errorf("%w: %w", ErrInvalidArgument,
			&UnknownTypeError{TypeIDs: unknown, Valid: cat.GroupIDs()})
		c.logger.LogSuggest(t, l, pitchName, 0, err)
		return nil, err
	}

	rows, err := cat.GroupRows(types...)
	if err != nil {
		return nil, translateError(err)
	}

	// Tension column for the filtered rows, in catalog order.
	idx := make([]uint32, 0, rows.Cardinality())
	uw := make([]float64, 0, rows.Cardinality())
	for row := range rows.Iterator() {
		idx = append(idx, row)
		uw = append(uw, cat.Record(row).UW)
	}
	tension := physics.Tensions(nil, uw, l, f)
	delta := append([]float64(nil), tension...)
	floats.AddConst(-t, delta)

	// Stage one: pick the n closest by absolute difference. The stable
	// sort keeps equal-distance rows in catalog order across runs.
	order := make([]int, len(idx))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(delta[order[a]]) < math.Abs(delta[order[b]])
	})
	n := min(opts.N, len(order))
	selected := order[:n]

	// Stage two: present the selection by signed difference, so the best
	// entries under and over the target bracket it in the output.
	sort.SliceStable(selected, func(a, b int) bool {
		return delta[selected[a]] < delta[selected[b]]
	})

	suggestions := make([]Suggestion, n)
	for i, j := range selected {
		suggestions[i] = Suggestion{
			ID:      cat.Record(idx[j]).ID,
			Tension: tension[j],
			Delta:   delta[j],
		}
	}

	result := &SuggestResult{Suggestions: suggestions}
	if n > 0 {
		sortedTypes := append([]string(nil), types...)
		sort.Strings(sortedTypes)
		switch {
		case delta[selected[0]] > RangeMargin:
			result.Warning = &RangeWarning{Types: sortedTypes, Target: t, Margin: RangeMargin, Side: "high"}
		case delta[selected[n-1]] < -RangeMargin:
			result.Warning = &RangeWarning{Types: sortedTypes, Target: t, Margin: RangeMargin, Side: "low"}
		}
		if result.Warning != nil {
			c.logger.LogRangeExceeded(result.Warning)
		}
	}

	c.logger.LogSuggest(t, l, pitchName, n, nil)

	return result, nil
}
