package series

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Autocorrelation — lag-k self-similarity of a numeric series.
//
// Description:
//
//	The classic sample ACF at a single lag: deviations from the global
//	mean, multiplied pairwise k steps apart, normalized by the global
//	squared deviation:
//
//	    r(k) = Σ (x[i]-μ)(x[i+k]-μ) / Σ (x[i]-μ)²
//
//	Values near +1 flag strong periodicity at k, values near -1 an
//	alternating pattern, values near 0 no linear memory.
//
// Degenerate inputs answer the neutral 0.0 instead of erroring, so the
// function can sit inside scans over arbitrary lag grids:
//   - lag < 1 or lag >= len(series) (an empty series falls here too)
//   - zero variance (constant series)
//
// Complexity: O(n) time, O(1) memory.
func Autocorrelation(series []float64, lag int) float64 {
	n := len(series)
	if lag < 1 || lag >= n {
		return 0
	}

	mean := stat.Mean(series, nil)
	var num, den float64
	for i, x := range series {
		d := x - mean
		den += d * d
		if i+lag < n {
			num += d * (series[i+lag] - mean)
		}
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// ACF computes Autocorrelation for every lag 1..maxLag and returns the
// values in lag order (index 0 holds lag 1).
//
// Errors: ErrEmptySeries on empty input; ErrLagRange unless
// 1 <= maxLag < len(series).
func ACF(series []float64, maxLag int) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if maxLag < 1 || maxLag >= len(series) {
		return nil, fmt.Errorf("%w: got maxLag=%d for length %d", ErrLagRange, maxLag, len(series))
	}

	values := make([]float64, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		values[lag-1] = Autocorrelation(series, lag)
	}

	return values, nil
}
