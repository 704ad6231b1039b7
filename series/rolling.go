package series

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// RollingStats slides a trailing window of the given width across the
// series, one step at a time, and records each window's mean and
// population standard deviation. Index i of the result describes
// series[i : i+window]; both slices have length len(series)-window+1.
//
// A window of 1 yields the series itself as means with all-zero stds; a
// window of len(series) collapses to a single global summary.
//
// Errors: ErrEmptySeries on empty input; ErrWindowRange unless
// 1 <= window <= len(series).
//
// Complexity: O(n·window) time, O(n) memory.
func RollingStats(series []float64, window int) (RollingWindowStats, error) {
	if len(series) == 0 {
		return RollingWindowStats{}, ErrEmptySeries
	}
	if window < 1 || window > len(series) {
		return RollingWindowStats{}, fmt.Errorf("%w: got window=%d for length %d", ErrWindowRange, window, len(series))
	}

	count := len(series) - window + 1
	out := RollingWindowStats{
		Means: make([]float64, count),
		Stds:  make([]float64, count),
	}
	for i := 0; i < count; i++ {
		frame := series[i : i+window]
		out.Means[i] = stat.Mean(frame, nil)
		out.Stds[i] = stat.PopStdDev(frame, nil)
	}

	return out, nil
}
