// Package frets computes equal-temperament fret positions along a scale
// length, and the inverse problem of recovering the scale length from a
// measured distance between two positions on the fretboard.
//
// The forward formula uses the 12th-root-of-2 method:
//
//	d(n) = L * (1 - 2^(-n/12))
//
// Reference: https://www.liutaiomottola.com/formulae/fret.htm
//
// Distances may carry an attached length unit (see Quantity); the inverse
// computation is dimension-preserving, so the result comes back in whatever
// unit the measurement was taken in.
package frets
