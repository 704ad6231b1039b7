package split

import (
	"fmt"

	"github.com/katalvlaran/folds/dataset"
)

// ExpandingWindow generates chronological folds for time-series
// cross-validation: fold i trains on [0, minTrain+i·step) and tests on
// [minTrain+i·step, minTrain+i·step+testSize). Generation stops as soon as
// a test window would cross the series length, so every emitted fold is
// full-sized.
//
// The stride defaults to testSize (back-to-back test windows); WithStep
// overrides it. Shuffling never occurs here — temporal order is the
// contract, and WithShuffle is rejected as an option violation rather than
// ignored. Consequently max(Train) < min(Test) in every fold: training
// data never sees the future.
//
// Errors: ErrInvalidLength, ErrWindowSize, ErrWindowExceedsLength,
// ErrOptionViolation.
//
// Complexity: O(1) per fold (all IndexSets are views over one range).
func ExpandingWindow(n, minTrain, testSize int, opts ...Option) ([]Fold, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Shuffled {
		return nil, fmt.Errorf("%w: expanding windows never shuffle", ErrOptionViolation)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got n=%d", ErrInvalidLength, n)
	}
	if minTrain < 1 || testSize < 1 {
		return nil, fmt.Errorf("%w: minTrain=%d, testSize=%d", ErrWindowSize, minTrain, testSize)
	}
	if minTrain+testSize > n {
		return nil, fmt.Errorf("%w: minTrain=%d + testSize=%d > n=%d", ErrWindowExceedsLength, minTrain, testSize, n)
	}
	step := o.Step
	if step == 0 {
		step = testSize
	}

	indices := dataset.Range(n)
	var folds []Fold
	for start := minTrain; start+testSize <= n; start += step {
		folds = append(folds, Fold{
			Train: indices[:start:start],
			Test:  indices[start : start+testSize : start+testSize],
		})
	}

	return folds, nil
}
