package stringcalc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// String describes a single playing string: scale length, family type,
// gauge, and construction. It is an immutable value constructed by
// ParseString; computing its tension requires locating its type and gauge in
// the catalog.
type String struct {
	// L is the scale length in inches.
	L float64
	// Type is the string-family code, e.g. "PB", "PL", "NYL". The
	// vocabulary is open at parse time; it is validated against the
	// catalog (through the legacy-shorthand alias table) when a tension
	// is computed.
	Type string
	// Gauge is the string diameter in inches.
	Gauge float64
	// Wound reports wound construction (false means plain).
	Wound bool
}

// Grammar: `<length><unit> <type> <gauge>[p|w]`, e.g. `22.9" PB .042w`.
// The mm length unit is parsed as an extension point; the canonical internal
// unit is inches.
var reStringSpec = regexp.MustCompile(
	`^(?P<L>[.0-9]+)` +
		` *(?P<Lu>"|mm)` +
		` +(?P<type>[A-Z]+)` +
		` +(?P<gauge>[.0-9]+)` +
		` *(?P<pw>[pPwW])?$`,
)

// ParseString parses a compact string descriptor such as `22.9" PB .042w`.
//
// A gauge token without a dot but with a leading zero (e.g. `042`) is read
// as a decimal fraction, matching vendor nomenclature where a product code
// `042` means .042". A trailing p or w selects plain or wound construction;
// wound is the default.
func ParseString(spec string) (String, error) {
	m := reStringSpec.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return String{}, &ParseError{Input: spec, Reason: "did not match the string spec grammar"}
	}
	group := func(name string) string {
		return m[reStringSpec.SubexpIndex(name)]
	}

	l, err := strconv.ParseFloat(group("L"), 64)
	if err != nil {
		return String{}, &ParseError{
			Input:  spec,
			Reason: fmt.Sprintf("has scale length %q that could not be read as a number", group("L")),
			cause:  err,
		}
	}
	if !(l > 0) {
		return String{}, &ParseError{
			Input:  spec,
			Reason: fmt.Sprintf("has non-positive scale length %v", l),
		}
	}
	if group("Lu") == "mm" {
		l /= 25.4
	}

	sgauge := group("gauge")
	if !strings.Contains(sgauge, ".") && strings.HasPrefix(sgauge, "0") {
		// Leading zero implies a decimal fraction.
		sgauge = "." + sgauge
	}
	gauge, err := strconv.ParseFloat(sgauge, 64)
	if err != nil {
		return String{}, &ParseError{
			Input:  spec,
			Reason: fmt.Sprintf("has gauge %q that could not be read as a number", sgauge),
			cause:  err,
		}
	}
	if !(gauge > 0) {
		return String{}, &ParseError{
			Input:  spec,
			Reason: fmt.Sprintf("has non-positive gauge %v", gauge),
		}
	}

	wound := true
	switch strings.ToLower(group("pw")) {
	case "", "w":
	case "p":
		wound = false
	}

	return String{L: l, Type: group("type"), Gauge: gauge, Wound: wound}, nil
}

// String renders the canonical spec form: inches length, leading-dot
// zero-stripped gauge, explicit p for plain, no suffix for wound. The result
// is stable under re-parse.
func (s String) String() string {
	sgauge := strconv.FormatFloat(s.Gauge, 'f', -1, 64)
	sgauge = strings.TrimPrefix(sgauge, "0")

	suffix := ""
	if !s.Wound {
		suffix = "p"
	}

	return fmt.Sprintf(`%s" %s %s%s`, strconv.FormatFloat(s.L, 'f', -1, 64), s.Type, sgauge, suffix)
}
