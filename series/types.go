// Package series defines options, result types, and error sentinels for
// time-series diagnostics.
package series

import (
	"errors"
	"fmt"
)

// Sentinel errors for series diagnostics.
var (
	// ErrEmptySeries is returned when an input series carries no points.
	ErrEmptySeries = errors.New("series: input series must be non-empty")

	// ErrLagRange is returned when maxLag falls outside 1..len(series)-1.
	ErrLagRange = errors.New("series: maxLag must satisfy 1 <= maxLag < len(series)")

	// ErrWindowRange is returned when window falls outside 1..len(series).
	ErrWindowRange = errors.New("series: window must satisfy 1 <= window <= len(series)")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("series: invalid option supplied")
)

// Stationarity ceilings, in percent. A series passes the gate when the
// coefficient of variation of its rolling means stays under the mean
// ceiling and the CV of its rolling stds stays under the std ceiling.
const (
	// DefaultMeanCVThreshold caps drift of the rolling means.
	DefaultMeanCVThreshold = 5.0

	// DefaultStdCVThreshold caps drift of the rolling deviations.
	DefaultStdCVThreshold = 10.0
)

// RollingWindowStats carries one mean and one population standard
// deviation per trailing window, aligned so that index i describes
// series[i : i+window]. Both slices share length len(series)-window+1.
type RollingWindowStats struct {
	Means []float64
	Stds  []float64
}

// Option configures the diagnostics via functional arguments. An invalid
// option value is recorded internally and surfaced as ErrOptionViolation
// by the entry point, before any computation happens.
type Option func(*Options)

// Options holds the knobs shared by IsStationary and WarpDistance.
// Entry points start from DefaultOptions and apply options in order;
// later options win.
type Options struct {
	// MeanCVThreshold is the percent ceiling for the rolling-means CV.
	MeanCVThreshold float64

	// StdCVThreshold is the percent ceiling for the rolling-stds CV.
	StdCVThreshold float64

	// Window is the Sakoe-Chiba band half-width for WarpDistance;
	// 0 or negative means unconstrained.
	Window int

	// SlopePenalty is the extra cost of insertion/deletion warp steps.
	SlopePenalty float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: 5%/10% stationarity
// ceilings, unconstrained warping, no slope penalty.
func DefaultOptions() Options {
	return Options{
		MeanCVThreshold: DefaultMeanCVThreshold,
		StdCVThreshold:  DefaultStdCVThreshold,
		Window:          0,
		SlopePenalty:    0,
		err:             nil,
	}
}

// WithMeanCVThreshold overrides the rolling-means ceiling (percent).
// Values at or below 0 are invalid → ErrOptionViolation.
func WithMeanCVThreshold(t float64) Option {
	return func(o *Options) {
		switch {
		case t <= 0:
			o.err = fmt.Errorf("%w: mean CV threshold must be positive (%v)", ErrOptionViolation, t)
		default:
			o.MeanCVThreshold = t
		}
	}
}

// WithStdCVThreshold overrides the rolling-stds ceiling (percent).
// Values at or below 0 are invalid → ErrOptionViolation.
func WithStdCVThreshold(t float64) Option {
	return func(o *Options) {
		switch {
		case t <= 0:
			o.err = fmt.Errorf("%w: std CV threshold must be positive (%v)", ErrOptionViolation, t)
		default:
			o.StdCVThreshold = t
		}
	}
}

// WithWindow constrains WarpDistance to the Sakoe-Chiba band |i-j| <= w.
// A value of 0 or below removes the constraint.
func WithWindow(w int) Option {
	return func(o *Options) {
		o.Window = w
	}
}

// WithSlopePenalty charges p extra for every insertion/deletion warp
// step, biasing the alignment toward the diagonal. Negative penalties
// are invalid → ErrOptionViolation.
func WithSlopePenalty(p float64) Option {
	return func(o *Options) {
		switch {
		case p < 0:
			o.err = fmt.Errorf("%w: slope penalty cannot be negative (%v)", ErrOptionViolation, p)
		default:
			o.SlopePenalty = p
		}
	}
}
