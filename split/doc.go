// Package split turns a dataset length n into leak-free index partitions
// and cross-validation folds: ratio splits, train/test conveniences, k-fold
// and expanding-window generators.
//
// 🚀 What
//
//   - Split: partition 0..n-1 by a ratio vector (train/val/test and
//     friends), ordered or seeded-shuffled, every index assigned exactly
//     once.
//   - TrainTestSplit: the two-way convenience (shuffled by default, like
//     the scripts it replaces).
//   - KFold: k disjoint, exhaustive test blocks; each index is tested
//     exactly once across the k folds.
//   - ExpandingWindow: chronological folds for time series — the training
//     window grows, test windows never precede training data.
//
// ✨ Why
//
//	Every ad hoc evaluation script reimplements these slices and gets a
//	different edge case wrong: dropped samples when rounds don't add up,
//	shuffled time series, test sets that overlap. Here the invariants are
//	the API contract, and they are property-tested.
//
// Sizing contract (Split):
//
//	Partition i < last takes round(n·ratios[i]), truncated to the indices
//	still unassigned; the last partition takes the exact remainder. Sizes
//	are therefore non-negative and always sum to n. Trailing partitions
//	may come out empty for tiny n; that is legal, not an error.
//
// Sizing contract (KFold):
//
//	Blocks measure n/k, the first n mod k blocks one index larger, so
//	sizes differ by at most one and cover n exactly.
//
// ⚙️ Usage
//
//	import "github.com/katalvlaran/folds/split"
//
//	// 60/20/20 chronological split:
//	parts, err := split.Split(n, []float64{0.6, 0.2, 0.2})
//
//	// 5-fold CV, shuffled with a fixed seed:
//	folds, err := split.KFold(n, 5, split.WithSeed(42))
//
//	// expanding-window folds, stride one test window:
//	folds, err := split.ExpandingWindow(n, 6, 2)
//
// Options
//
//   - DefaultOptions(): ordered slicing, shuffle.DefaultSeed, stride = testSize.
//   - WithShuffle(seed): permute before slicing (seed 0 ⇒ DefaultSeed).
//   - WithOrdered():     contiguous ascending blocks (mandatory for time series).
//   - WithSeed(seed):    re-seed without toggling the shuffle mode.
//   - WithStep(step):    expanding-window stride (0 ⇒ testSize).
//
// Defaults differ deliberately: Split is ordered unless asked (the
// time-series-safe choice); TrainTestSplit and KFold shuffle unless asked
// (the convention of the scripts they replace); ExpandingWindow rejects
// shuffling outright.
//
// Errors
//
//   - ErrInvalidLength        — n < 1.
//   - ErrNoRatios             — empty ratio vector.
//   - ErrInvalidRatio         — a ratio outside its legal range.
//   - ErrRatioSum             — ratios sum beyond 1 + RatioEpsilon.
//   - ErrKRange               — k outside 2..n.
//   - ErrWindowSize           — minTrain or testSize < 1.
//   - ErrWindowExceedsLength  — minTrain + testSize > n.
//   - ErrOptionViolation      — invalid option value, or WithShuffle on
//     ExpandingWindow.
package split
