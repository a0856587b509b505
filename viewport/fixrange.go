// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport decides which slice of the data an axis shows.
//
// FixRange turns the observed data range and any user-requested
// limits into the axis's displayed limits, repairing empty, degenerate,
// and contradictory inputs along the way. The scrolling functions move
// a view within a larger scroll region and report scrollbar-style
// fractions.
package viewport // import "github.com/aclements/go-axis/viewport"

import (
	"math"

	"github.com/aclements/go-axis/scale"
)

// Bounds is a closed interval of axis values.
type Bounds struct {
	Min, Max float64
}

// Span returns Max - Min.
func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// Request is the input to FixRange.
type Request struct {
	// ValueMin and ValueMax are the extent of the data shown on
	// the axis. They are ignored if HaveData is false.
	ValueMin, ValueMax float64
	HaveData           bool

	// ReqMin and ReqMax are user-requested limits. NaN means the
	// limit is computed from the data.
	ReqMin, ReqMax float64

	// Log indicates a logarithmic axis. Non-positive requests are
	// discarded and the no-data default is [0.001, 1].
	Log bool

	// WindowSize, if > 0 and neither limit is requested, limits
	// the axis to the most recent WindowSize of the data.
	// ShiftBy, if > 0, quantizes the window's upper limit to a
	// multiple of ShiftBy so the axis moves in jumps rather than
	// continuously.
	WindowSize, ShiftBy float64
}

// Result is the output of FixRange.
type Result struct {
	// Bounds are the resolved axis limits.
	Bounds

	// ValueRange is the data range after repair. It is never empty.
	ValueRange Bounds

	// MinOverride and MaxOverride report whether each limit came
	// from a request that survived validation.
	MinOverride, MaxOverride bool

	// DiscardedMin and DiscardedMax report requests that were
	// ignored because they were inverted or, on a log axis,
	// non-positive.
	DiscardedMin, DiscardedMax bool

	// Dirty is set if Bounds differs from the previous bounds
	// passed to FixRange.
	Dirty bool
}

func isSet(x float64) bool {
	return !math.IsNaN(x)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// pad returns the half-width of the range synthesized around v.
func pad(v float64) float64 {
	if v == 0 {
		return 0.5
	}
	return 0.1 * math.Abs(v)
}

// FixRange computes the displayed limits of an axis.
//
// It never fails. Requests that make no sense are discarded, and empty
// or degenerate ranges are widened so that the result always satisfies
// Min < Max for finite inputs.
func FixRange(req Request, prev Bounds) Result {
	var res Result
	reqMin, reqMax := req.ReqMin, req.ReqMax
	if isSet(reqMin) && isSet(reqMax) && reqMin >= reqMax {
		reqMin, reqMax = math.NaN(), math.NaN()
		res.DiscardedMin, res.DiscardedMax = true, true
	}
	if req.Log {
		if isSet(reqMin) && !(reqMin > 0) {
			reqMin, res.DiscardedMin = math.NaN(), true
		}
		if isSet(reqMax) && !(reqMax > 0) {
			reqMax, res.DiscardedMax = math.NaN(), true
		}
	}
	// Infinite requests can't be drawn either.
	if isSet(reqMin) && !finite(reqMin) {
		reqMin, res.DiscardedMin = math.NaN(), true
	}
	if isSet(reqMax) && !finite(reqMax) {
		reqMax, res.DiscardedMax = math.NaN(), true
	}

	min, max := req.ValueMin, req.ValueMax
	if !req.HaveData || !finite(min) || !finite(max) {
		switch {
		case isSet(reqMin):
			min = reqMin
		case req.Log:
			min = 0.001
		default:
			min = 0
		}
		if isSet(reqMax) {
			max = reqMax
		} else {
			max = 1
		}
	}
	if min >= max {
		v := min
		min, max = v-pad(v), v+pad(v)
	}
	res.ValueRange = Bounds{min, max}

	if isSet(reqMin) {
		min, res.MinOverride = reqMin, true
	}
	if isSet(reqMax) {
		max, res.MaxOverride = reqMax, true
	}
	if max <= min {
		// Only one limit was requested and it lies beyond the
		// other end of the data. Make up the other limit.
		if res.MinOverride {
			max = min + pad(min)
		} else {
			min = max - pad(max)
		}
	}

	if req.WindowSize > 0 && !res.MinOverride && !res.MaxOverride {
		shift := math.Max(req.ShiftBy, 0)
		end := min + req.WindowSize
		if max >= end {
			end = max
			if shift > 0 {
				end = scale.UCeil(max, shift)
			}
			min = end - req.WindowSize
		}
		max = end
	}

	res.Bounds = Bounds{min, max}
	res.Dirty = res.Bounds != prev
	return res
}
