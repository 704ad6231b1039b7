// Package confusion defines error sentinels and the derived metrics type.
package confusion

import (
	"errors"

	"github.com/katalvlaran/folds/dataset"
)

// Sentinel errors for matrix construction and access.
var (
	// ErrNoClasses is returned when a matrix would have an empty class set.
	ErrNoClasses = errors.New("confusion: class set must not be empty")

	// ErrUnknownClass is returned when a label lies outside the declared class set.
	ErrUnknownClass = errors.New("confusion: label outside the declared class set")

	// ErrEmptyMatrix is returned when a summary is requested before any pair was recorded.
	ErrEmptyMatrix = errors.New("confusion: no pairs recorded")

	// ErrLengthMismatch is returned when actual and predicted differ in length.
	ErrLengthMismatch = errors.New("confusion: actual and predicted must have equal length")
)

// ClassMetrics is a derived, read-only snapshot of one class's counts and
// rates, computed on demand from the matrix. It is never cached: recompute
// after further Record calls.
//
// Zero-denominator policy: Precision, Recall and F1 resolve to 0.0 when
// their denominator is 0.
type ClassMetrics struct {
	// Class is the label this snapshot describes.
	Class dataset.Label

	// TP counts pairs where both actual and predicted equal Class.
	TP int
	// FP counts pairs predicted as Class whose actual differs.
	FP int
	// FN counts pairs actually Class predicted as something else.
	FN int
	// TN counts pairs where neither side is Class.
	TN int

	// Precision = TP/(TP+FP), Recall = TP/(TP+FN),
	// F1 = 2·Precision·Recall/(Precision+Recall).
	Precision float64
	Recall    float64
	F1        float64
}
