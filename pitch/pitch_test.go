package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		expected float64
	}{
		{"A4", 440},
		{"a4", 440},
		{"C4", 261.6256},
		{"E4", 329.6276},
		{"D2", 73.4162},
		{"D3", 146.8324},
		{"G1", 48.9994},
		{"G4", 391.9954},
		{"A2", 110},
		{"C#4", 277.1826},
		{"Db4", 277.1826},
		{"Bb3", 233.0819},
		{"C-1", 8.1758},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Frequency(tt.name)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, got, 1e-4)
		})
	}
}

func TestFrequencyInvalidName(t *testing.T) {
	r := New()

	for _, name := range []string{"", "H4", "A", "4", "A#b4", "A4.5", "do4"} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Frequency(name)
			var invErr *ErrInvalidName
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, name, invErr.Name)
		})
	}
}

func TestFrequencyCustomA4(t *testing.T) {
	r := New(func(o *Options) {
		o.A4 = 432
	})

	got, err := r.Frequency("A4")
	require.NoError(t, err)
	assert.Equal(t, 432.0, got)

	got, err = r.Frequency("A5")
	require.NoError(t, err)
	assert.InEpsilon(t, 864, got, 1e-12)
}
