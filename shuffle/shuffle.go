package shuffle

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/folds/dataset"
)

// ErrNegativeLength is returned by Perm when n is negative.
var ErrNegativeLength = errors.New("shuffle: permutation length must be non-negative")

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Derive mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer (canonical constants; see Vigna 2014).
// The finalizer is a bijection, so distinct streams under the same parent
// always yield distinct seeds. Use it to mint decorrelated substreams, e.g.
// one per repeated evaluation run.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// InPlace performs an in-place Fisher–Yates shuffle of a using rng.
// A nil rng means the default deterministic stream (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func InPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = New(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Indices returns a shuffled copy of idx. The input set is never mutated:
// IndexSets are shared views, and shuffling a caller's view in place would
// silently reorder every other holder's world.
//
// Complexity: O(n) time, O(n) space for the copy.
func Indices(idx dataset.IndexSet, rng *rand.Rand) dataset.IndexSet {
	out := idx.Clone()
	InPlace(out, rng)

	return out
}

// Perm returns a permutation of 0..n-1 drawn deterministically from rng.
// n==0 yields the empty set; a nil rng means the default stream.
// Errors: ErrNegativeLength.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, rng *rand.Rand) (dataset.IndexSet, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	p := dataset.Range(n)
	InPlace(p, rng)

	return p, nil
}
