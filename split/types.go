// Package split defines options, the Fold type, and error sentinels
// for partitioning and fold generation.
package split

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/shuffle"
)

// Sentinel errors for partitioning and fold generation.
var (
	// ErrInvalidLength is returned when n is below 1.
	ErrInvalidLength = errors.New("split: n must be at least 1")

	// ErrNoRatios is returned when the ratio vector is empty.
	ErrNoRatios = errors.New("split: at least one ratio is required")

	// ErrInvalidRatio is returned when a ratio lies outside its legal range.
	ErrInvalidRatio = errors.New("split: ratio out of range")

	// ErrRatioSum is returned when ratios sum beyond 1 + RatioEpsilon.
	ErrRatioSum = errors.New("split: ratios must sum to at most 1")

	// ErrKRange is returned when k falls outside 2..n.
	ErrKRange = errors.New("split: k must satisfy 2 <= k <= n")

	// ErrWindowSize is returned when minTrain or testSize is below 1.
	ErrWindowSize = errors.New("split: window sizes must be at least 1")

	// ErrWindowExceedsLength is returned when the first fold cannot fit.
	ErrWindowExceedsLength = errors.New("split: minTrain + testSize must not exceed series length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("split: invalid option supplied")
)

// RatioEpsilon is the tolerance applied to the ratio-sum check, so that
// vectors like [0.7, 0.3] survive their binary representation.
const RatioEpsilon = 1e-9

// Fold pairs the train and test index views of one cross-validation round.
//
// K-fold invariants: test blocks are disjoint and exhaustive over 0..n-1;
// Train ∩ Test = ∅ and len(Train)+len(Test) == n within each fold.
// Expanding-window invariant: max(Train) < min(Test) — training data never
// sees the future.
type Fold struct {
	Train dataset.IndexSet
	Test  dataset.IndexSet
}

// Option configures partitioning via functional arguments. An invalid
// option value is recorded internally and surfaced as ErrOptionViolation
// by the entry point, before any slicing happens.
type Option func(*Options)

// Options holds the knobs shared by Split, TrainTestSplit, KFold and
// ExpandingWindow. Entry points start from their documented defaults and
// apply options in order; later options win.
type Options struct {
	// Shuffled selects whether 0..n-1 is permuted before slicing.
	Shuffled bool

	// Seed drives the permutation; 0 means shuffle.DefaultSeed.
	Seed int64

	// Step is the expanding-window stride; 0 means "use testSize".
	Step int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the ordered-slicing defaults: no shuffling,
// shuffle.DefaultSeed, stride derived from testSize.
func DefaultOptions() Options {
	return Options{
		Shuffled: false,
		Seed:     shuffle.DefaultSeed,
		Step:     0,
		err:      nil,
	}
}

// WithShuffle enables permutation of 0..n-1 before slicing and sets the
// seed driving it. A seed of 0 selects shuffle.DefaultSeed.
func WithShuffle(seed int64) Option {
	return func(o *Options) {
		o.Shuffled = true
		o.Seed = seed
	}
}

// WithOrdered disables shuffling: partitions and test blocks become
// contiguous ascending runs. Mandatory for chronological data.
func WithOrdered() Option {
	return func(o *Options) {
		o.Shuffled = false
	}
}

// WithSeed re-seeds whichever mode is active without toggling it.
// A seed of 0 selects shuffle.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithStep overrides the expanding-window stride.
//
//	step > 0:  advance the test window by step indices per fold
//	step == 0: explicit "use testSize" (the default)
//	step < 0:  invalid option → ErrOptionViolation
func WithStep(step int) Option {
	return func(o *Options) {
		switch {
		case step < 0:
			o.err = fmt.Errorf("%w: step cannot be negative (%d)", ErrOptionViolation, step)
		default:
			o.Step = step
		}
	}
}
