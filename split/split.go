package split

import (
	"fmt"
	"math"

	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/shuffle"
)

// Split partitions the index range 0..n-1 into len(ratios) IndexSets.
//
// Sizing: partition i < last takes round(n·ratios[i]), truncated to the
// indices still unassigned; the last partition takes the exact remainder.
// Every index lands in exactly one partition — nothing is dropped or
// duplicated, whatever the rounding does. Trailing partitions may be empty
// for tiny n; that is legal.
//
// Ordering: natural ascending order by default, so each partition is a
// contiguous block (the time-series-safe mode). WithShuffle permutes
// 0..n-1 once, deterministically, before slicing.
//
// The returned IndexSets are views over one shared index array; treat
// them as read-only.
//
// Errors: ErrInvalidLength, ErrNoRatios, ErrInvalidRatio, ErrRatioSum,
// ErrOptionViolation.
//
// Complexity: O(n + len(ratios)) time, O(n) space.
func Split(n int, ratios []float64, opts ...Option) ([]dataset.IndexSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got n=%d", ErrInvalidLength, n)
	}
	if len(ratios) == 0 {
		return nil, ErrNoRatios
	}
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			return nil, fmt.Errorf("%w: ratio %d is %v, must be positive", ErrInvalidRatio, i, r)
		}
		sum += r
	}
	if sum > 1.0+RatioEpsilon {
		return nil, fmt.Errorf("%w: got %v", ErrRatioSum, sum)
	}

	indices := dataset.Range(n)
	if o.Shuffled {
		indices = shuffle.Indices(indices, shuffle.New(o.Seed))
	}

	parts := make([]dataset.IndexSet, len(ratios))
	start := 0
	for i := range ratios {
		size := n - start // the last partition takes the exact remainder
		if i < len(ratios)-1 {
			size = int(math.Round(float64(n) * ratios[i]))
			if remaining := n - start; size > remaining {
				size = remaining
			}
		}
		parts[i] = indices[start : start+size : start+size]
		start += size
	}

	return parts, nil
}

// TrainTestSplit carves 0..n-1 into a train and a test IndexSet, with the
// test set sized round(n·testRatio) via the Split remainder rule applied to
// [1-testRatio, testRatio].
//
// Unlike Split, this convenience shuffles by default (shuffle.DefaultSeed),
// matching the scripts it replaces; pass WithOrdered for chronological
// data, or WithSeed to pin a different seed.
//
// Errors: ErrInvalidRatio unless 0 < testRatio < 1, plus everything Split
// returns.
func TrainTestSplit(n int, testRatio float64, opts ...Option) (train, test dataset.IndexSet, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("%w: testRatio %v must lie in (0,1)", ErrInvalidRatio, testRatio)
	}

	merged := append([]Option{WithShuffle(shuffle.DefaultSeed)}, opts...)
	parts, err := Split(n, []float64{1 - testRatio, testRatio}, merged...)
	if err != nil {
		return nil, nil, err
	}

	return parts[0], parts[1], nil
}
