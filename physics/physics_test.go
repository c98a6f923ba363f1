package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Frequencies used below (A4=440 equal temperament).
const (
	freqC4 = 261.6255653005986
	freqD3 = 146.8323839587038
	freqD4 = 293.6647679174076
	freqE4 = 329.6275569128699
)

func TestTension(t *testing.T) {
	// PL015 unit weight from the D'Addario chart, 14" scale, A4.
	got, err := Tension(0.00004984, 14, 440)
	require.NoError(t, err)
	assert.InDelta(t, 19.6, got, 0.01)
}

func TestUnitWeight(t *testing.T) {
	// Spot checks against the D'Addario chart at 25.5" scale.
	tests := []struct {
		name     string
		tension  float64
		freq     float64
		expected float64
	}{
		{"PL011 E4", 19.6, freqE4, 0.00002680},
		{"PL011 D4", 15.6, freqD4, 0.00002680},
		{"PB030 D3", 27.1, freqD3, 0.00018660},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnitWeight(tt.tension, 25.5, tt.freq)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, got, 0.01)
		})
	}
}

func TestGaugeFromDensity(t *testing.T) {
	// From Brauchli's Worth tension chart:
	// 1.87 g/cm³, 9.3 lbf, 43.2 cm scale, C4 -> 0.074 cm diameter.
	rho := 0.06756
	got, err := GaugeFromDensity(rho, 9.3, 17.01, freqC4)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.0291, got, 0.01)
}

func TestTensionUnitWeightRoundTrip(t *testing.T) {
	uw, err := UnitWeight(20, 24.75, freqE4)
	require.NoError(t, err)
	back, err := Tension(uw, 24.75, freqE4)
	require.NoError(t, err)
	assert.InEpsilon(t, 20, back, 1e-12)
}

func TestNonPositiveArguments(t *testing.T) {
	var npErr *ErrNonPositive

	_, err := Tension(0, 25.5, 440)
	require.ErrorAs(t, err, &npErr)
	assert.Equal(t, "unit weight", npErr.Name)

	_, err = Tension(0.0001, -25.5, 440)
	require.ErrorAs(t, err, &npErr)
	assert.Equal(t, "scale length", npErr.Name)

	_, err = UnitWeight(20, 25.5, 0)
	require.ErrorAs(t, err, &npErr)
	assert.Equal(t, "frequency", npErr.Name)

	_, err = GaugeFromDensity(0, 9.3, 17.01, freqC4)
	require.ErrorAs(t, err, &npErr)
	assert.Equal(t, "density", npErr.Name)

	_, err = GaugeFromDensity(-0.04, 9.3, 17.01, freqC4)
	require.ErrorAs(t, err, &npErr)
	assert.Equal(t, "density", npErr.Name)
}

func TestTensions(t *testing.T) {
	uw := []float64{0.00002680, 0.00002930, 0.00003190}

	got := Tensions(nil, uw, 24.75, freqE4)
	require.Len(t, got, len(uw))
	for i, w := range uw {
		want, err := Tension(w, 24.75, freqE4)
		require.NoError(t, err)
		assert.InEpsilon(t, want, got[i], 1e-12)
	}

	// Reusing a destination buffer gives the same values.
	dst := make([]float64, len(uw))
	assert.Equal(t, got, Tensions(dst, uw, 24.75, freqE4))
}
