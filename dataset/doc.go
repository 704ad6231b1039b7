// Package dataset defines the value model every folds package shares:
// Sample, Label, Dataset and IndexSet.
//
// What
//
//   - Sample — a feature vector of fixed arity ([]float64 alias).
//   - Label — a class tag, or a numeric target rendered by FloatLabels.
//   - Dataset — samples paired 1:1 with labels; immutable after New.
//   - IndexSet — ordered unique indices into a Dataset. All partitioning
//     and folding traffics in IndexSets, so the underlying feature data
//     is never copied or reordered.
//
// Why
//
//	Reference evaluation scripts keep three parallel arrays (samples,
//	labels, indices) in sync by hand and copy them per fold. Centralizing
//	the pairing invariant here, and slicing through Gather views instead
//	of copies, removes both the bookkeeping and the O(folds·n) memory
//	churn.
//
// Views
//
//	Gather returns fresh slices whose elements alias the dataset's
//	backing arrays. Treat gathered samples as read-only; the Dataset
//	itself never mutates them.
//
// Errors
//
//   - ErrEmptyDataset    — zero samples.
//   - ErrLengthMismatch  — samples vs. labels length skew.
//   - ErrArityMismatch   — ragged feature vectors.
//   - ErrIndexRange      — index outside [0, Len).
//   - ErrDuplicateIndex  — repeated index in an IndexSet.
//   - ErrNonNumericLabel — Numeric on a non-numeric label.
package dataset
