// Package stringcalc computes physical quantities for fretted and strung
// musical instruments: string tension, unit weight, and gauge from the
// physics of a vibrating string, plus a closest-match search over a
// multi-vendor catalog of commercially available strings.
//
// # Quick Start
//
// Compute the tension of a string described by a compact spec:
//
//	c := stringcalc.New()
//	s, _ := stringcalc.ParseString(`14" PL .015`)
//	t, _ := c.Tension(s, "A4") // ~19.6 lbf
//
// Suggest catalog strings closest to a target tension:
//
//	res, _ := c.SuggestGauge(20, 24.75, "E4")
//	for _, sug := range res.Suggestions {
//	    fmt.Println(sug.ID, sug.Tension, sug.Delta)
//	}
//	if res.Warning != nil {
//	    fmt.Println("note:", res.Warning)
//	}
//
// Fret positions and the inverse scale-length problem live in the frets
// subpackage:
//
//	rows, _ := frets.Distances(19, 21)
//	l, _ := frets.LengthFromDistance(frets.Nut, frets.Fret(1), 1.4)
//
// # Catalog
//
// The merged string catalog (see the catalog subpackage) is built lazily on
// first use and cached for the life of the process. It merges the shipped
// vendor data files under global id and group-namespace invariants; all
// integrity problems fail at load time, never at query time.
//
// # Errors and Warnings
//
// Failures are typed: parse errors carry a corrective example, validation
// errors enumerate the valid alternatives where the domain is closed, and
// catalog lookup misses list the available gauges. A suggestion whose target
// tension is outside what the selected string families can provide is still
// returned, flagged with a non-fatal RangeWarning.
package stringcalc
