package catalog

import (
	"log/slog"
)

// Daddario loads the D'Addario tension-chart data, the primary (and
// untagged) vendor source. The file carries the chart's category and notes
// columns, which are not part of the common schema and are dropped.
type Daddario struct {
	opts SourceOptions
}

// NewDaddario creates the D'Addario source.
func NewDaddario(optFns ...func(o *SourceOptions)) *Daddario {
	return &Daddario{
		opts: applySourceOptions(SourceOptions{Path: "data/daddario.csv"}, optFns),
	}
}

// Name implements Source.
func (d *Daddario) Name() string { return "D'Addario" }

// Tag implements Source. The primary vendor keeps its native ids.
func (d *Daddario) Tag() string { return "" }

// Load implements Source.
//
// Rows whose native id repeats are resolved deterministically: an exact
// duplicate row is dropped quietly, and a row whose measured fields disagree
// with an earlier row of the same id is dropped with a warning. Values are
// never averaged.
func (d *Daddario) Load(mode Mode) ([]Record, error) {
	t, err := readTable(d.opts.FS, d.opts.Path)
	if err != nil {
		return nil, err
	}

	tag := ""
	if mode == Combined {
		tag = d.Tag()
	}

	seen := make(map[string]Record)
	records := make([]Record, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2 // header is line 1

		id, _ := t.get(row, "id")
		group, _ := t.get(row, "group")
		groupID, _ := t.get(row, "group_id")
		if id == "" || groupID == "" {
			return nil, &ErrBadRow{Source: d.Name(), Line: line, Reason: "missing id or group_id"}
		}

		gaugeStr, _ := t.get(row, "gauge")
		gauge, err := parsePositiveFloat(gaugeStr)
		if err != nil {
			return nil, &ErrBadRow{Source: d.Name(), Line: line, Reason: "bad gauge: " + err.Error()}
		}
		uwStr, _ := t.get(row, "uw")
		uw, err := parsePositiveFloat(uwStr)
		if err != nil {
			return nil, &ErrBadRow{Source: d.Name(), Line: line, Reason: "bad uw: " + err.Error()}
		}

		rec := Record{
			ID:      tag + id,
			Group:   group,
			GroupID: tag + groupID,
			Gauge:   gauge,
			UW:      uw,
		}

		if prev, ok := seen[rec.ID]; ok {
			if prev == rec {
				d.opts.Logger.Debug("dropping exact duplicate row",
					"source", d.Name(), "id", rec.ID, "line", line)
			} else {
				d.opts.Logger.Warn("dropping row with conflicting duplicate id",
					"source", d.Name(), "id", rec.ID, "line", line,
					"kept_gauge", prev.Gauge, "dropped_gauge", rec.Gauge)
			}
			continue
		}
		seen[rec.ID] = rec
		records = append(records, rec)
	}

	d.opts.Logger.Debug("source loaded",
		slog.String("source", d.Name()), slog.Int("records", len(records)))

	return records, nil
}
