// Package pitch resolves scientific-pitch-notation names (e.g. "A4", "C#2",
// "Bb3") to fundamental frequencies in Hz under equal-temperament tuning.
//
// It is the default implementation of the resolver dependency the calculation
// engine consumes; callers with their own tuning source can substitute any
// type satisfying the same single-method contract.
package pitch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DefaultA4 is the reference frequency for A4 in Hz.
const DefaultA4 = 440.0

// Options configures a Resolver.
type Options struct {
	// A4 is the reference frequency in Hz. Defaults to DefaultA4.
	A4 float64
}

// DefaultOptions are the default Resolver options.
var DefaultOptions = Options{
	A4: DefaultA4,
}

// ErrInvalidName indicates a pitch name that is not valid scientific pitch
// notation.
type ErrInvalidName struct {
	Name string
}

func (e *ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid pitch name %q (expected scientific pitch notation such as %q or %q)", e.Name, "A4", "C#2")
}

var reName = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?[0-9]+)$`)

// Semitones of the natural notes above C.
var naturals = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// Resolver converts pitch names to frequencies.
type Resolver struct {
	opts Options
}

// New creates a new Resolver.
func New(optFns ...func(o *Options)) *Resolver {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Resolver{opts: opts}
}

// Frequency returns the fundamental frequency in Hz for the named pitch.
func (r *Resolver) Frequency(name string) (float64, error) {
	m := reName.FindStringSubmatch(name)
	if m == nil {
		return 0, &ErrInvalidName{Name: name}
	}

	letter := m[1]
	if letter >= "a" {
		letter = string(letter[0] - 'a' + 'A')
	}
	semis := naturals[letter]
	switch m[2] {
	case "#":
		semis++
	case "b":
		semis--
	}

	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, &ErrInvalidName{Name: name}
	}

	// MIDI note number; A4 = 69.
	note := (octave+1)*12 + semis

	return r.opts.A4 * math.Pow(2, float64(note-69)/12), nil
}
