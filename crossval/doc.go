// Package crossval evaluates models across cross-validation folds and
// aggregates their per-fold scores into a single Result.
//
// 🚀 What lives here?
//
//	The evaluation loop that ties the module together: take a Dataset,
//	a fold plan from package split, a model Factory, and a ScoreFunc —
//	get back per-fold scores with mean, population std, min and max.
//	  • Evaluate — the train/predict/score loop, one fresh model per fold
//	  • Accuracy — classification score over exact label matches
//	  • MeanSquaredError / MeanAbsoluteError / RootMeanSquaredError /
//	    RSquared — regression scores over numeric labels
//
// ✨ Key features:
//   - a fresh, untrained model per fold — no state leaks between folds
//   - fail-fast: the first error aborts the run with its fold index attached
//   - population (÷k) convention for the score spread
//   - optional per-fold observer via WithOnFold (progress bars, early logs)
//   - Result.Summary() renders the conventional "0.813 (+/- 0.062)" line
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/folds/crossval"
//	  "github.com/katalvlaran/folds/split"
//	)
//
//	folds, err := split.KFold(ds.Len(), 5, split.WithSeed(42))
//	if err != nil { ... }
//
//	result, err := crossval.Evaluate(ds, folds, newModel, crossval.Accuracy)
//	if err != nil { ... }
//	fmt.Println(result.Summary())
//
// Contracts:
//
//   - Factory must return a fresh, untrained Model on every call.
//   - ScoreFunc must be pure and reject length mismatches and empty input.
//   - Model errors are never swallowed or retried: they surface wrapped
//     with the failing fold's index.
//
// See example_test.go for a classification and a time-series walkthrough.
package crossval
