package crossval

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/split"
)

// Evaluate — cross-validated model evaluation.
//
// Description:
//
//	Runs the train/predict/score loop across every fold of the plan and
//	aggregates the per-fold scores. The fold plan usually comes from
//	split.KFold or split.ExpandingWindow; Evaluate itself never slices
//	or shuffles — it trusts the plan's index sets as given.
//
// Flow, per fold i:
//  1. Gather the train and test views from the dataset.
//  2. factory() — a fresh, untrained model (nil → ErrNilModel).
//  3. model.Fit(train samples, train labels).
//  4. model.Predict(test samples); the prediction count must equal the
//     test label count (ErrLengthMismatch).
//  5. score(predicted, actual test labels) → Scores[i].
//  6. Fire the OnFold observer, when one is registered.
//
// Failure policy: the first error aborts the whole run. Model, score,
// and observer errors are wrapped with the failing fold's index and are
// never swallowed or retried.
//
// Aggregation: mean, population standard deviation (divide by k), min
// and max over the fold scores.
//
// Errors: ErrNilDataset, ErrNoFolds, ErrNilFactory, ErrNilScore upfront;
// ErrNilModel, ErrLengthMismatch, and wrapped fold errors mid-run.
//
// Complexity: O(Σ fold sizes) gather work plus whatever the model costs.
func Evaluate(ds *dataset.Dataset, folds []split.Fold, factory Factory, score ScoreFunc, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	switch {
	case ds == nil:
		return nil, ErrNilDataset
	case len(folds) == 0:
		return nil, ErrNoFolds
	case factory == nil:
		return nil, ErrNilFactory
	case score == nil:
		return nil, ErrNilScore
	}

	scores := make([]float64, 0, len(folds))
	for i, fold := range folds {
		trainSamples, trainLabels, err := ds.Gather(fold.Train)
		if err != nil {
			return nil, fmt.Errorf("crossval: fold %d: gather train: %w", i, err)
		}
		testSamples, testLabels, err := ds.Gather(fold.Test)
		if err != nil {
			return nil, fmt.Errorf("crossval: fold %d: gather test: %w", i, err)
		}

		model := factory()
		if model == nil {
			return nil, fmt.Errorf("%w: fold %d", ErrNilModel, i)
		}
		if err = model.Fit(trainSamples, trainLabels); err != nil {
			return nil, fmt.Errorf("crossval: fold %d: fit: %w", i, err)
		}
		predicted, err := model.Predict(testSamples)
		if err != nil {
			return nil, fmt.Errorf("crossval: fold %d: predict: %w", i, err)
		}
		if len(predicted) != len(testLabels) {
			return nil, fmt.Errorf("%w: fold %d predicted %d labels for %d samples",
				ErrLengthMismatch, i, len(predicted), len(testLabels))
		}

		s, err := score(predicted, testLabels)
		if err != nil {
			return nil, fmt.Errorf("crossval: fold %d: score: %w", i, err)
		}
		scores = append(scores, s)

		if o.OnFold != nil {
			if err = o.OnFold(i, s); err != nil {
				return nil, fmt.Errorf("crossval: fold %d: observer: %w", i, err)
			}
		}
	}

	return &Result{
		Scores: scores,
		Mean:   stat.Mean(scores, nil),
		Std:    stat.PopStdDev(scores, nil),
		Min:    floats.Min(scores),
		Max:    floats.Max(scores),
	}, nil
}
