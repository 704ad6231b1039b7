// Package confusion accumulates (actual, predicted) label pairs into a
// square count table and derives per-class metrics from it.
//
// What
//
//   - Matrix — counts keyed [actual][predicted] over a fixed, sorted class
//     set established at construction; mutated only by Record/RecordAll.
//   - ClassMetrics — on-demand per-class snapshot: TP/FP/FN/TN plus
//     precision, recall and F1.
//   - Accuracy, String (count grid) and Report (classification-report
//     text) for the summary views every evaluation script prints.
//
// Degenerate-metric policy
//
//	0/0 in precision, recall or F1 resolves to 0.0 — a documented
//	convention, not an error. A class that is never predicted has
//	precision 0; a class absent from the data has recall 0. Tests assert
//	the zeros explicitly. Only two conditions are errors: recording a
//	label outside the declared class set (ErrUnknownClass — the
//	"unexpected prediction" bug surfaced early), and asking for accuracy
//	of a matrix with no recorded pairs (ErrEmptyMatrix).
//
// Construction
//
//	Build with New(classes) when the class set is known up front, or
//	FromLabels(actual, predicted), which takes the sorted union of both
//	slices as the class set — the whole-run construction that keeps the
//	matrix square across folds.
//
// Errors
//
//   - ErrNoClasses      — empty class set.
//   - ErrUnknownClass   — label outside the declared set.
//   - ErrEmptyMatrix    — accuracy/report over zero recorded pairs.
//   - ErrLengthMismatch — actual vs. predicted length skew.
package confusion
