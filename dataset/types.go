// Package dataset defines core value types and error sentinels.
package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset construction and access.
var (
	// ErrEmptyDataset is returned when a dataset would contain zero samples.
	ErrEmptyDataset = errors.New("dataset: dataset must contain at least one sample")

	// ErrLengthMismatch is returned when samples and labels differ in length.
	ErrLengthMismatch = errors.New("dataset: samples and labels must have equal length")

	// ErrArityMismatch is returned when feature vectors differ in arity.
	ErrArityMismatch = errors.New("dataset: all samples must share the same arity")

	// ErrIndexRange is returned when an index lies outside [0, Len).
	ErrIndexRange = errors.New("dataset: index out of range")

	// ErrDuplicateIndex is returned when an IndexSet repeats an index.
	ErrDuplicateIndex = errors.New("dataset: duplicate index in index set")

	// ErrNonNumericLabel is returned when a label cannot be parsed as float64.
	ErrNonNumericLabel = errors.New("dataset: label is not numeric")
)

// Sample is a feature vector of fixed arity.
// The alias keeps call sites conversion-free: any [][]float64 is a []Sample.
type Sample = []float64

// Label is a categorical class tag, or a numeric regression target rendered
// by FloatLabels. Labels compare by value and sort lexicographically.
type Label string

// IndexSet is an ordered sequence of unique, in-range indices into a Dataset.
// It is a view: holding an IndexSet never duplicates feature data.
type IndexSet []int

// Range returns the identity IndexSet 0..n-1.
// A non-positive n yields an empty set.
func Range(n int) IndexSet {
	if n <= 0 {
		return IndexSet{}
	}
	s := make(IndexSet, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// Clone returns an independent copy of the index set.
func (s IndexSet) Clone() IndexSet {
	return append(IndexSet(nil), s...)
}

// Validate checks that every index is unique and inside [0, n).
// Returns ErrIndexRange or ErrDuplicateIndex on the first offender.
func (s IndexSet) Validate(n int) error {
	seen := make(map[int]struct{}, len(s))
	for _, idx := range s {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: %d outside [0,%d)", ErrIndexRange, idx, n)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = struct{}{}
	}

	return nil
}
