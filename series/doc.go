// Package series provides diagnostics for numeric time series:
// autocorrelation, rolling statistics, a stationarity gate, and a
// warping distance for comparing sequences that drift in tempo.
//
// 🚀 What lives here?
//
//	Everything operates on plain []float64 slices: no dataset wiring,
//	no model coupling. Typical uses:
//	  • Autocorrelation / ACF — detect seasonality and lag structure
//	  • RollingStats — trailing-window mean & deviation profiles
//	  • IsStationary — a fast coefficient-of-variation gate before modeling
//	  • WarpDistance — score a forecast's shape against the realized series
//
// ✨ Key features:
//   - degenerate lags answer a neutral 0.0 — no panics inside lag scans
//   - population (÷N) convention for every standard deviation
//   - stationarity thresholds tunable via functional options
//   - Sakoe–Chiba band and slope penalty on the warping distance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/folds/series"
//
//	r1 := series.Autocorrelation(profile, 1)
//	stats, err := series.RollingStats(profile, 24)
//	ok, err := series.IsStationary(profile, 24,
//	  series.WithMeanCVThreshold(3),
//	)
//	dist, err := series.WarpDistance(forecast, actual, series.WithWindow(10))
//
// Conventions:
//
//   - Autocorrelation returns 0.0 (not an error) for out-of-range lags and
//     zero-variance input; the vector ACF and the windowed helpers validate
//     their arguments and return sentinel errors instead.
//   - IsStationary is a heuristic: coefficients of variation of the rolling
//     profiles against percent ceilings. It is deliberately not a unit-root
//     test.
//
// See example_test.go for runnable walkthroughs.
package series
