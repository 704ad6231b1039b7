package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Dataset pairs an ordered sequence of samples with an ordered sequence of
// labels, 1:1. It is immutable after construction: every consumer works
// through At and Gather views, and the Dataset never mutates or reorders
// its backing arrays. Callers must not modify the slices they passed to New
// while the Dataset is in use.
type Dataset struct {
	samples []Sample
	labels  []Label
	arity   int
}

// New builds a Dataset from parallel sample and label slices.
//
// Invariants enforced:
//   - len(samples) == len(labels) > 0
//   - every sample shares the same arity
//
// Errors: ErrEmptyDataset, ErrLengthMismatch, ErrArityMismatch.
func New(samples []Sample, labels []Label) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("%w: %d samples vs %d labels", ErrLengthMismatch, len(samples), len(labels))
	}
	arity := len(samples[0])
	for i, s := range samples {
		if len(s) != arity {
			return nil, fmt.Errorf("%w: sample %d has arity %d, want %d", ErrArityMismatch, i, len(s), arity)
		}
	}

	return &Dataset{samples: samples, labels: labels, arity: arity}, nil
}

// FromMatrix builds a Dataset from a gonum matrix, one row per sample.
// Row extraction copies each row once; afterwards the usual view semantics
// apply. Errors: ErrEmptyDataset (nil matrix or zero rows), ErrLengthMismatch.
func FromMatrix(m mat.Matrix, labels []Label) (*Dataset, error) {
	if m == nil {
		return nil, ErrEmptyDataset
	}
	rows, cols := m.Dims()
	if rows == 0 {
		return nil, ErrEmptyDataset
	}
	if rows != len(labels) {
		return nil, fmt.Errorf("%w: %d rows vs %d labels", ErrLengthMismatch, rows, len(labels))
	}
	samples := make([]Sample, rows)
	for i := 0; i < rows; i++ {
		samples[i] = mat.Row(nil, i, m)
	}

	return &Dataset{samples: samples, labels: labels, arity: cols}, nil
}

// Len reports the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// Arity reports the shared feature-vector length.
func (d *Dataset) Arity() int { return d.arity }

// At returns the sample/label pair at index i. The sample is a view into
// the dataset's backing array. Errors: ErrIndexRange.
func (d *Dataset) At(i int) (Sample, Label, error) {
	if i < 0 || i >= len(d.samples) {
		return nil, "", fmt.Errorf("%w: %d outside [0,%d)", ErrIndexRange, i, len(d.samples))
	}

	return d.samples[i], d.labels[i], nil
}

// Gather materializes the view selected by idx: the returned slices are
// fresh, but the samples they hold alias the dataset's backing arrays, so
// no feature data is copied. Order follows idx. Errors: ErrIndexRange.
func (d *Dataset) Gather(idx IndexSet) ([]Sample, []Label, error) {
	samples := make([]Sample, len(idx))
	labels := make([]Label, len(idx))
	for out, i := range idx {
		if i < 0 || i >= len(d.samples) {
			return nil, nil, fmt.Errorf("%w: %d outside [0,%d)", ErrIndexRange, i, len(d.samples))
		}
		samples[out] = d.samples[i]
		labels[out] = d.labels[i]
	}

	return samples, labels, nil
}

// Labels returns a copy of the full label sequence, in dataset order.
func (d *Dataset) Labels() []Label {
	return append([]Label(nil), d.labels...)
}

// Classes returns the distinct labels in ascending order — the class set a
// confusion matrix over this dataset should be constructed with.
func (d *Dataset) Classes() []Label {
	seen := make(map[Label]struct{}, len(d.labels))
	classes := make([]Label, 0, len(d.labels))
	for _, l := range d.labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		classes = append(classes, l)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	return classes
}
