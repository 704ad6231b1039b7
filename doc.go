// Package folds is your toolkit for honest model evaluation — reusable
// data splitting, cross-validation, classification scoring and
// time-series diagnostics, with determinism you can replay.
//
// 🚀 What is folds?
//
//	A focused library that brings together the evaluation loop every
//	model project rewrites from scratch:
//		• Dataset views: samples + labels, cheap index-based subsetting
//		• Partitioning: ratio splits, train/test hold-outs
//		• Fold plans: shuffled k-fold, expanding walk-forward windows
//		• Evaluation: one fresh model per fold, aggregated scores
//		• Scoring: accuracy, MSE/MAE/RMSE, R², confusion matrices
//		• Series diagnostics: ACF, rolling stats, stationarity, warping
//
// ✨ Why choose folds?
//
//   - Deterministic by construction – one seeded source of randomness,
//     same seed ⇒ same folds ⇒ same scores
//   - Leak-proof plans – expanding windows never train on the future
//   - Fail-fast evaluation – the first model error surfaces with its
//     fold index, never swallowed or retried
//   - Extensible – plug in any Model, ScoreFunc or per-fold observer
//
// Under the hood, everything is organized under six subpackages:
//
//	dataset/   — Dataset, Sample, Label, IndexSet views & numeric labels
//	shuffle/   — seeded RNG streams and Fisher–Yates permutation
//	split/     — Split, TrainTestSplit, KFold, ExpandingWindow
//	crossval/  — Evaluate, Model/Factory/ScoreFunc, built-in scores
//	confusion/ — Matrix counts, per-class metrics, text reports
//	series/    — Autocorrelation, RollingStats, IsStationary, WarpDistance
//
// Quick sketch of a 5-fold run:
//
//	folds ← KFold(n, 5, seed 42)
//	for each fold: fit fresh model on Train, score on Test
//	result: scores [0.83 0.79 0.81 0.85 0.78] → "0.812 (+/- 0.051)"
//
// Dive into the package docs and example_test.go files for runnable
// walkthroughs, and examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/folds
package folds
