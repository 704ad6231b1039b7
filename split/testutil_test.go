package split_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/split"
)

// assertCoverExactly fails unless the given index sets are pairwise
// disjoint and their union is exactly 0..n-1.
func assertCoverExactly(t *testing.T, sets []dataset.IndexSet, n int) {
	t.Helper()
	var all []int
	for _, s := range sets {
		all = append(all, s...)
	}
	if len(all) != n {
		t.Fatalf("total indices = %d; want %d", len(all), n)
	}
	sort.Ints(all)
	for i, idx := range all {
		if idx != i {
			t.Fatalf("coverage broken at position %d: got %d (duplicate or gap)", i, idx)
		}
	}
}

// assertFoldDisjoint fails if a fold's train and test sets overlap or do
// not jointly account for all n indices.
func assertFoldDisjoint(t *testing.T, f split.Fold, n int) {
	t.Helper()
	if got := len(f.Train) + len(f.Test); got != n {
		t.Fatalf("len(train)+len(test) = %d; want %d", got, n)
	}
	inTest := make(map[int]bool, len(f.Test))
	for _, idx := range f.Test {
		inTest[idx] = true
	}
	for _, idx := range f.Train {
		if inTest[idx] {
			t.Fatalf("index %d appears in both train and test", idx)
		}
	}
}

// testSets projects the Test side of each fold.
func testSets(folds []split.Fold) []dataset.IndexSet {
	sets := make([]dataset.IndexSet, len(folds))
	for i, f := range folds {
		sets[i] = f.Test
	}

	return sets
}
