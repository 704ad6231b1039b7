package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CoefficientOfVariation returns the population standard deviation as a
// percentage of the absolute mean: std / |mean| × 100. The neutral 0.0
// comes back for an empty input or a zero mean, keeping the value usable
// inside threshold comparisons without a division guard at every caller.
func CoefficientOfVariation(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	if mean == 0 {
		return 0
	}

	return stat.PopStdDev(xs, nil) / math.Abs(mean) * 100
}

// IsStationary — a coefficient-of-variation gate for weak stationarity.
//
// Description:
//
//	The series is summarized by RollingStats(series, window); a stable
//	process keeps both the window means and the window deviations
//	roughly level. Each profile collapses to a single CV percentage and
//	is compared against its ceiling: the verdict is true iff both CVs
//	sit strictly below their ceilings.
//
//	Defaults: DefaultMeanCVThreshold (5%), DefaultStdCVThreshold (10%),
//	tunable via WithMeanCVThreshold / WithStdCVThreshold.
//
// This is a deliberate heuristic. It answers "does this look level
// enough to model" in O(n·window) time with no statistical tables; it is
// not a substitute for a unit-root test where one is required.
//
// Errors: ErrOptionViolation for non-positive ceilings, plus anything
// RollingStats rejects (ErrEmptySeries, ErrWindowRange).
func IsStationary(series []float64, window int, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	rolled, err := RollingStats(series, window)
	if err != nil {
		return false, err
	}
	meanCV := CoefficientOfVariation(rolled.Means)
	stdCV := CoefficientOfVariation(rolled.Stds)

	return meanCV < o.MeanCVThreshold && stdCV < o.StdCVThreshold, nil
}
