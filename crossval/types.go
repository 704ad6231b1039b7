// Package crossval defines the model contracts, options, result type,
// and error sentinels for cross-validated evaluation.
package crossval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/folds/dataset"
)

// Sentinel errors for cross-validated evaluation.
var (
	// ErrNilDataset is returned when Evaluate receives a nil dataset.
	ErrNilDataset = errors.New("crossval: dataset must not be nil")

	// ErrNoFolds is returned when the fold plan is empty.
	ErrNoFolds = errors.New("crossval: at least one fold is required")

	// ErrNilFactory is returned when the model factory is nil.
	ErrNilFactory = errors.New("crossval: model factory must not be nil")

	// ErrNilScore is returned when the score function is nil.
	ErrNilScore = errors.New("crossval: score function must not be nil")

	// ErrNilModel is returned when the factory produces a nil model.
	ErrNilModel = errors.New("crossval: factory returned a nil model")

	// ErrLengthMismatch is returned when predicted and actual label
	// counts differ.
	ErrLengthMismatch = errors.New("crossval: predicted and actual label counts differ")

	// ErrNoSamples is returned when a score function receives no pairs.
	ErrNoSamples = errors.New("crossval: no samples to score")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("crossval: invalid option supplied")
)

// Model is the minimal train/predict contract Evaluate drives. A Model
// sees only sample and label slices; how it learns is its own business.
type Model interface {
	// Fit trains the model on the given samples and their labels.
	Fit(samples []dataset.Sample, labels []dataset.Label) error

	// Predict returns one label per input sample, in input order.
	Predict(samples []dataset.Sample) ([]dataset.Label, error)
}

// Factory builds one fresh, untrained Model. Evaluate calls it once per
// fold, so fold i can never see weights fitted for fold i-1.
type Factory func() Model

// ScoreFunc collapses a predicted/actual label pairing into one number.
// Implementations must be pure, reject length mismatches with
// ErrLengthMismatch, and reject empty input with ErrNoSamples.
type ScoreFunc func(predicted, actual []dataset.Label) (float64, error)

// Result is the immutable outcome of one Evaluate run.
type Result struct {
	// Scores holds one score per fold, in fold order.
	Scores []float64

	// Mean is the arithmetic mean of Scores.
	Mean float64

	// Std is the population standard deviation of Scores (divide by k).
	Std float64

	// Min and Max frame the spread of Scores.
	Min float64
	Max float64
}

// Summary renders the conventional cross-validation one-liner: the mean
// and a band of two population standard deviations, "0.813 (+/- 0.062)".
func (r Result) Summary() string {
	return fmt.Sprintf("%.3f (+/- %.3f)", r.Mean, 2*r.Std)
}

// Option configures Evaluate via functional arguments. An invalid option
// value is recorded internally and surfaced as ErrOptionViolation before
// any fold runs.
type Option func(*Options)

// Options holds the Evaluate knobs.
type Options struct {
	// OnFold, when set, observes each (fold, score) pair right after
	// scoring. A non-nil return aborts the whole run.
	OnFold func(fold int, score float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the observer-free defaults.
func DefaultOptions() Options {
	return Options{
		OnFold: nil,
		err:    nil,
	}
}

// WithOnFold registers a per-fold observer, called after each fold is
// scored. Returning an error aborts Evaluate with the fold index
// attached. A nil observer is invalid → ErrOptionViolation.
func WithOnFold(fn func(fold int, score float64) error) Option {
	return func(o *Options) {
		switch {
		case fn == nil:
			o.err = fmt.Errorf("%w: OnFold observer must not be nil", ErrOptionViolation)
		default:
			o.OnFold = fn
		}
	}
}
