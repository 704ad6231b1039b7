package series

import (
	"fmt"
	"math"
)

// WarpDistance — dynamic-time-warping distance between two series.
//
// Description:
//
//	Aligns a against b by warping the time axis so that the summed
//	|a[i]-b[j]| over the alignment is minimal, tolerating the tempo
//	drift that a pointwise metric would punish. Useful for scoring a
//	forecast's shape against the realized series when peaks land a few
//	steps early or late.
//
// Algorithm (two-row DP):
//  1. D[0][0] = 0; the rest of row 0 and column 0 start at +Inf.
//  2. D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1]),
//     visiting only the cells with |i-j| <= window when a band is set.
//  3. Distance = D[n][m]. Only two rows are alive at any moment.
//
// Options:
//   - WithWindow(w) — Sakoe-Chiba band. A band narrower than the length
//     difference |len(a)-len(b)| leaves no legal alignment, and the
//     distance degenerates to +Inf. That is a value, not an error.
//   - WithSlopePenalty(p) — insertion/deletion surcharge, p >= 0.
//
// Errors: ErrEmptySeries when either input is empty; ErrOptionViolation
// from option parsing.
//
// Complexity: O(n·m) time, O(m) memory.
func WarpDistance(a, b []float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("%w: got lengths %d and %d", ErrEmptySeries, n, m)
	}

	window := math.MaxInt32
	if o.Window > 0 {
		window = o.Window
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			ins := prev[j] + o.SlopePenalty
			del := curr[j-1] + o.SlopePenalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the smallest of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
