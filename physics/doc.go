// Package physics provides the vibrating-string formulas relating tension,
// unit weight (linear density), gauge, frequency, and scale length.
//
// All functions use the fixed unit choice of the D'Addario tension charts:
// inches for length, pounds-force for tension, lbm/in for unit weight, and
// Hz for frequency. The core relation is
//
//	T = UW * (2*L*F)^2 / g
//
// where g = 386.09 in·lbm/(lbf·s²) converts the lbm-based momentum flux into
// pounds-force. No unit-system conversion is performed; callers supply values
// in the documented units.
package physics
