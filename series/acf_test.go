package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/folds/series"
)

// TestAutocorrelation_Ramp pins the hand-computed ACF of [1,2,3,4]:
// deviations [-1.5,-0.5,0.5,1.5], denominator 5.
func TestAutocorrelation_Ramp(t *testing.T) {
	ramp := []float64{1, 2, 3, 4}

	assert.InDelta(t, 0.25, series.Autocorrelation(ramp, 1), 1e-15, "lag 1")
	assert.InDelta(t, -0.3, series.Autocorrelation(ramp, 2), 1e-15, "lag 2")
	assert.InDelta(t, -0.45, series.Autocorrelation(ramp, 3), 1e-15, "lag 3")
}

// TestAutocorrelation_PeriodicSeries: a period-2 signal correlates
// positively with itself at even lags and negatively at odd lags.
func TestAutocorrelation_PeriodicSeries(t *testing.T) {
	wave := []float64{1, 2, 1, 2, 1, 2}

	assert.InDelta(t, -5.0/6.0, series.Autocorrelation(wave, 1), 1e-15, "odd lag must anti-correlate")
	assert.InDelta(t, 2.0/3.0, series.Autocorrelation(wave, 2), 1e-15, "even lag must correlate")
}

// TestAutocorrelation_DegenerateLags: out-of-range lags answer the
// neutral 0.0 rather than an error or a panic.
func TestAutocorrelation_DegenerateLags(t *testing.T) {
	xs := []float64{3, 1, 4, 1, 5}

	assert.Zero(t, series.Autocorrelation(xs, 0), "lag 0")
	assert.Zero(t, series.Autocorrelation(xs, -2), "negative lag")
	assert.Zero(t, series.Autocorrelation(xs, len(xs)), "lag == len")
	assert.Zero(t, series.Autocorrelation(xs, len(xs)+3), "lag beyond len")
	assert.Zero(t, series.Autocorrelation(nil, 1), "empty series")
}

func TestAutocorrelation_ZeroVariance(t *testing.T) {
	assert.Zero(t, series.Autocorrelation([]float64{5, 5, 5, 5}, 1),
		"constant series has no variance to normalize by")
}

// TestACF_MatchesScalar: the vector form is exactly the scalar form
// evaluated on lags 1..maxLag.
func TestACF_MatchesScalar(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	got, err := series.ACF(xs, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for lag := 1; lag <= 3; lag++ {
		assert.InDelta(t, series.Autocorrelation(xs, lag), got[lag-1], 1e-15, "lag %d", lag)
	}
}

func TestACF_Errors(t *testing.T) {
	_, err := series.ACF(nil, 1)
	assert.ErrorIs(t, err, series.ErrEmptySeries, "empty series")

	xs := []float64{1, 2, 3, 4}

	_, err = series.ACF(xs, 0)
	assert.ErrorIs(t, err, series.ErrLagRange, "maxLag 0")

	_, err = series.ACF(xs, -1)
	assert.ErrorIs(t, err, series.ErrLagRange, "negative maxLag")

	_, err = series.ACF(xs, len(xs))
	assert.ErrorIs(t, err, series.ErrLagRange, "maxLag == len")
}
