package split

import (
	"fmt"

	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/shuffle"
)

// KFold generates the k folds of a k-fold cross-validation over 0..n-1.
//
// Indices are shuffled once by default (shuffle.DefaultSeed; WithSeed to
// pin another seed, WithOrdered for contiguous chronological blocks), then
// divided into k blocks of n/k indices, the first n mod k blocks one index
// larger. Fold i tests on block i and trains on every other block, in
// block order.
//
// Guarantees, which the tests pin as properties:
//   - test blocks are disjoint and their union is exactly 0..n-1
//     (every index is tested exactly once across the k folds);
//   - Train ∩ Test = ∅ and len(Train)+len(Test) == n within each fold;
//   - block sizes differ by at most one.
//
// Errors: ErrInvalidLength, ErrKRange, ErrOptionViolation.
//
// Complexity: O(k·n) time and space (train sets are materialized).
func KFold(n, k int, opts ...Option) ([]Fold, error) {
	o := DefaultOptions()
	o.Shuffled = true // k-fold shuffles unless WithOrdered is supplied
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got n=%d", ErrInvalidLength, n)
	}
	if k < 2 || k > n {
		return nil, fmt.Errorf("%w: got k=%d with n=%d", ErrKRange, k, n)
	}

	indices := dataset.Range(n)
	if o.Shuffled {
		indices = shuffle.Indices(indices, shuffle.New(o.Seed))
	}

	// Block boundaries: bounds[i] .. bounds[i+1] is test block i.
	base, extra := n/k, n%k
	bounds := make([]int, k+1)
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		bounds[i+1] = bounds[i] + size
	}

	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		test := indices[bounds[i]:bounds[i+1]:bounds[i+1]]
		train := make(dataset.IndexSet, 0, n-len(test))
		train = append(train, indices[:bounds[i]]...)
		train = append(train, indices[bounds[i+1]:]...)
		folds[i] = Fold{Train: train, Test: test}
	}

	return folds, nil
}
