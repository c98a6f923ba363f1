package catalog

import (
	"regexp"
	"strconv"
)

// Stringjoy loads the Stringjoy calculator data. Product codes are the
// family letters followed by the gauge digits (e.g. P011 is the .011" plain
// steel); the loader derives the id and group id from the code and verifies
// the encoded gauge against the gauge column, dropping rows that disagree.
type Stringjoy struct {
	opts SourceOptions
}

// NewStringjoy creates the Stringjoy source.
func NewStringjoy(optFns ...func(o *SourceOptions)) *Stringjoy {
	return &Stringjoy{
		opts: applySourceOptions(SourceOptions{Path: "data/stringjoy.csv.gz"}, optFns),
	}
}

// Name implements Source.
func (s *Stringjoy) Name() string { return "Stringjoy" }

// Tag implements Source.
func (s *Stringjoy) Tag() string { return "SJ" }

var reStringjoyCode = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// Load implements Source.
func (s *Stringjoy) Load(mode Mode) ([]Record, error) {
	t, err := readTable(s.opts.FS, s.opts.Path)
	if err != nil {
		return nil, err
	}

	tag := ""
	if mode == Combined {
		tag = s.Tag()
	}

	records := make([]Record, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		code, _ := t.get(row, "code")
		m := reStringjoyCode.FindStringSubmatch(code)
		if m == nil {
			return nil, &ErrBadRow{Source: s.Name(), Line: line, Reason: "bad product code " + strconv.Quote(code)}
		}
		family, _ := t.get(row, "family")

		gaugeStr, _ := t.get(row, "gauge")
		gauge, err := parsePositiveFloat(gaugeStr)
		if err != nil {
			return nil, &ErrBadRow{Source: s.Name(), Line: line, Reason: "bad gauge: " + err.Error()}
		}
		uwStr, _ := t.get(row, "uw")
		uw, err := parsePositiveFloat(uwStr)
		if err != nil {
			return nil, &ErrBadRow{Source: s.Name(), Line: line, Reason: "bad uw: " + err.Error()}
		}

		// The digits of the code are the gauge without its leading dot.
		if encoded, err := strconv.ParseFloat("."+m[2], 64); err != nil || encoded != gauge {
			s.opts.Logger.Warn("dropping row whose code disagrees with its gauge",
				"source", s.Name(), "code", code, "line", line, "gauge", gauge)
			continue
		}

		records = append(records, Record{
			ID:      tag + code,
			Group:   "Stringjoy " + family,
			GroupID: tag + m[1],
			Gauge:   gauge,
			UW:      uw,
		})
	}

	return records, nil
}
