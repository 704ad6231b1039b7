package confusion

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/folds/dataset"
)

// Matrix accumulates (actual, predicted) label pairs into a square count
// table. The class set is fixed and sorted at construction; the matrix
// never grows, and the only mutation point is Record/RecordAll.
type Matrix struct {
	classes []dataset.Label
	index   map[dataset.Label]int
	cells   [][]int // cells[actual][predicted]
	total   int
}

// New builds an all-zero matrix over the given classes, deduplicated and
// sorted ascending. Errors: ErrNoClasses.
func New(classes []dataset.Label) (*Matrix, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	seen := make(map[dataset.Label]struct{}, len(classes))
	uniq := make([]dataset.Label, 0, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

	index := make(map[dataset.Label]int, len(uniq))
	for i, c := range uniq {
		index[c] = i
	}
	cells := make([][]int, len(uniq))
	for i := range cells {
		cells[i] = make([]int, len(uniq))
	}

	return &Matrix{classes: uniq, index: index, cells: cells}, nil
}

// FromLabels builds a matrix whose class set is the sorted union of both
// slices — the whole-run construction that keeps the matrix square across
// folds — and records every pair. Errors: ErrLengthMismatch, ErrNoClasses.
func FromLabels(actual, predicted []dataset.Label) (*Matrix, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("%w: %d actual vs %d predicted", ErrLengthMismatch, len(actual), len(predicted))
	}
	union := make([]dataset.Label, 0, len(actual)+len(predicted))
	union = append(union, actual...)
	union = append(union, predicted...)

	m, err := New(union)
	if err != nil {
		return nil, err
	}
	if err = m.RecordAll(actual, predicted); err != nil {
		return nil, err
	}

	return m, nil
}

// Record increments cell [actual][predicted] by one.
// Errors: ErrUnknownClass when either label was not declared at construction.
func (m *Matrix) Record(actual, predicted dataset.Label) error {
	a, ok := m.index[actual]
	if !ok {
		return fmt.Errorf("%w: actual %q", ErrUnknownClass, string(actual))
	}
	p, ok := m.index[predicted]
	if !ok {
		return fmt.Errorf("%w: predicted %q", ErrUnknownClass, string(predicted))
	}
	m.cells[a][p]++
	m.total++

	return nil
}

// RecordAll records every (actual[i], predicted[i]) pair, stopping at the
// first failure. Errors: ErrLengthMismatch, ErrUnknownClass.
func (m *Matrix) RecordAll(actual, predicted []dataset.Label) error {
	if len(actual) != len(predicted) {
		return fmt.Errorf("%w: %d actual vs %d predicted", ErrLengthMismatch, len(actual), len(predicted))
	}
	for i := range actual {
		if err := m.Record(actual[i], predicted[i]); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
	}

	return nil
}

// Count returns the cell [actual][predicted]. Errors: ErrUnknownClass.
func (m *Matrix) Count(actual, predicted dataset.Label) (int, error) {
	a, ok := m.index[actual]
	if !ok {
		return 0, fmt.Errorf("%w: actual %q", ErrUnknownClass, string(actual))
	}
	p, ok := m.index[predicted]
	if !ok {
		return 0, fmt.Errorf("%w: predicted %q", ErrUnknownClass, string(predicted))
	}

	return m.cells[a][p], nil
}

// Total reports the number of recorded pairs (the sum of all cells).
func (m *Matrix) Total() int { return m.total }

// Classes returns a copy of the sorted class set.
func (m *Matrix) Classes() []dataset.Label {
	return append([]dataset.Label(nil), m.classes...)
}

// Accuracy returns diagonal/total — the fraction of pairs predicted
// exactly right. Errors: ErrEmptyMatrix when nothing was recorded.
func (m *Matrix) Accuracy() (float64, error) {
	if m.total == 0 {
		return 0, ErrEmptyMatrix
	}

	return float64(m.diagonal()) / float64(m.total), nil
}

// ClassMetrics derives the TP/FP/FN/TN counts and precision/recall/F1 for
// one class. Errors: ErrUnknownClass.
func (m *Matrix) ClassMetrics(class dataset.Label) (ClassMetrics, error) {
	i, ok := m.index[class]
	if !ok {
		return ClassMetrics{}, fmt.Errorf("%w: %q", ErrUnknownClass, string(class))
	}

	return m.metricsAt(i), nil
}

// AllMetrics derives ClassMetrics for every class, in class-sorted order.
func (m *Matrix) AllMetrics() []ClassMetrics {
	out := make([]ClassMetrics, len(m.classes))
	for i := range m.classes {
		out[i] = m.metricsAt(i)
	}

	return out
}

// metricsAt computes the snapshot for class index i.
//
//	tp = cells[i][i]
//	fn = row i minus tp (actually i, predicted elsewhere)
//	fp = column i minus tp (predicted i, actually elsewhere)
//	tn = total - tp - fp - fn
func (m *Matrix) metricsAt(i int) ClassMetrics {
	tp := m.cells[i][i]
	fn, fp := 0, 0
	for j := range m.classes {
		if j == i {
			continue
		}
		fn += m.cells[i][j]
		fp += m.cells[j][i]
	}
	tn := m.total - tp - fp - fn

	precision := ratio(tp, tp+fp)
	recall := ratio(tp, tp+fn)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return ClassMetrics{
		Class:     m.classes[i],
		TP:        tp,
		FP:        fp,
		FN:        fn,
		TN:        tn,
		Precision: precision,
		Recall:    recall,
		F1:        f1,
	}
}

// diagonal sums the exactly-right cells.
func (m *Matrix) diagonal() int {
	d := 0
	for i := range m.cells {
		d += m.cells[i][i]
	}

	return d
}

// ratio divides counts under the zero-denominator-returns-zero policy.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
