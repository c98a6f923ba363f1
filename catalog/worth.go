package catalog

// Worth loads the Worth fluorocarbon data, a subset of the measurements in
// Brauchli's chart. The file carries raw sample measurements (diameter in
// cm, sample weight in g over a sample length in cm); the loader converts
// them to the common schema's gauge (in) and unit weight (lbm/in) before
// emitting.
type Worth struct {
	opts SourceOptions
}

// NewWorth creates the Worth source.
func NewWorth(optFns ...func(o *SourceOptions)) *Worth {
	return &Worth{
		opts: applySourceOptions(SourceOptions{Path: "data/worth.csv"}, optFns),
	}
}

// Name implements Source.
func (w *Worth) Name() string { return "Worth" }

// Tag implements Source.
func (w *Worth) Tag() string { return "W" }

// Unit conversion factors for the Worth measurements.
const (
	cmPerInch = 2.54
	gPerLbm   = 453.59237
)

// Load implements Source.
func (w *Worth) Load(mode Mode) ([]Record, error) {
	t, err := readTable(w.opts.FS, w.opts.Path)
	if err != nil {
		return nil, err
	}

	tag := ""
	if mode == Combined {
		tag = w.Tag()
	}

	records := make([]Record, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		id, _ := t.get(row, "id")
		if id == "" {
			return nil, &ErrBadRow{Source: w.Name(), Line: line, Reason: "missing id"}
		}

		var diameter, weight, length float64
		for _, col := range []struct {
			name string
			dst  *float64
		}{
			{"diameter_cm", &diameter},
			{"sample_weight_g", &weight},
			{"sample_length_cm", &length},
		} {
			cell, _ := t.get(row, col.name)
			v, err := parsePositiveFloat(cell)
			if err != nil {
				return nil, &ErrBadRow{Source: w.Name(), Line: line, Reason: "bad " + col.name + ": " + err.Error()}
			}
			*col.dst = v
		}

		records = append(records, Record{
			ID:      tag + id,
			Group:   "Worth Fluorocarbon",
			GroupID: tag + "F",
			Gauge:   diameter / cmPerInch,
			UW:      (weight / gPerLbm) / (length / cmPerInch),
		})
	}

	return records, nil
}
