package crossval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/folds/dataset"
)

// checkPair enforces the shared ScoreFunc preconditions.
func checkPair(predicted, actual []dataset.Label) error {
	if len(predicted) != len(actual) {
		return fmt.Errorf("%w: got %d predicted for %d actual",
			ErrLengthMismatch, len(predicted), len(actual))
	}
	if len(actual) == 0 {
		return ErrNoSamples
	}
	return nil
}

// numericPair parses both label slices as numeric series.
func numericPair(predicted, actual []dataset.Label) (p, a []float64, err error) {
	if p, err = dataset.Numeric(predicted); err != nil {
		return nil, nil, fmt.Errorf("crossval: predicted labels: %w", err)
	}
	if a, err = dataset.Numeric(actual); err != nil {
		return nil, nil, fmt.Errorf("crossval: actual labels: %w", err)
	}
	return p, a, nil
}

// Accuracy scores the fraction of positions whose labels match exactly.
// The natural partner of split.KFold over classification labels.
func Accuracy(predicted, actual []dataset.Label) (float64, error) {
	if err := checkPair(predicted, actual); err != nil {
		return 0, err
	}

	matches := 0
	for i, p := range predicted {
		if p == actual[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(actual)), nil
}

// MeanSquaredError scores the mean squared residual between two numeric
// label slices. Labels that fail to parse surface
// dataset.ErrNonNumericLabel with the offending side named.
func MeanSquaredError(predicted, actual []dataset.Label) (float64, error) {
	if err := checkPair(predicted, actual); err != nil {
		return 0, err
	}
	p, a, err := numericPair(predicted, actual)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		d := p[i] - a[i]
		sum += d * d
	}

	return sum / float64(len(a)), nil
}

// MeanAbsoluteError scores the mean absolute residual, less sensitive to
// outliers than MeanSquaredError.
func MeanAbsoluteError(predicted, actual []dataset.Label) (float64, error) {
	if err := checkPair(predicted, actual); err != nil {
		return 0, err
	}
	p, a, err := numericPair(predicted, actual)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += math.Abs(p[i] - a[i])
	}

	return sum / float64(len(a)), nil
}

// RootMeanSquaredError is the square root of MeanSquaredError, reported
// in the same units as the labels.
func RootMeanSquaredError(predicted, actual []dataset.Label) (float64, error) {
	mse, err := MeanSquaredError(predicted, actual)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// RSquared scores the coefficient of determination, 1 - SSres/SStot.
// A zero-variance actual series answers 0.0 (the zero-denominator
// convention), never a division error.
func RSquared(predicted, actual []dataset.Label) (float64, error) {
	if err := checkPair(predicted, actual); err != nil {
		return 0, err
	}
	p, a, err := numericPair(predicted, actual)
	if err != nil {
		return 0, err
	}

	mean := stat.Mean(a, nil)
	var ssRes, ssTot float64
	for i := range a {
		r := a[i] - p[i]
		ssRes += r * r
		d := a[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, nil
	}

	return 1 - ssRes/ssTot, nil
}
