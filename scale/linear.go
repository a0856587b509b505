// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Epsilon is the difference between 1 and the next larger float64.
var Epsilon = math.Nextafter(1, 2) - 1

// Range is a numeric interval with its span and reciprocal span
// precomputed for mapping.
//
// Span is always Max-Min unless that is smaller than Epsilon in
// magnitude, in which case it is 1 so that InvSpan stays finite. Min
// is not required to be less than Max.
type Range struct {
	Min, Max      float64
	Span, InvSpan float64
}

// NewRange returns the Range [min, max].
func NewRange(min, max float64) Range {
	span := max - min
	if math.Abs(span) < Epsilon {
		span = 1
	}
	return Range{min, max, span, 1 / span}
}

// Norm returns the position of x in r, where r.Min is 0 and r.Min +
// r.Span is 1.
func (r Range) Norm(x float64) float64 {
	return (x - r.Min) * r.InvSpan
}

// Denorm is the inverse of Norm.
func (r Range) Denorm(t float64) float64 {
	return t*r.Span + r.Min
}

// InRange reports whether x lies within r, allowing for Epsilon of
// slop at each end.
//
// A degenerate range, where Max-Min is smaller than Epsilon, contains
// everything except Max itself.
func (r Range) InRange(x float64) bool {
	if r.Max-r.Min < Epsilon {
		return math.Abs(r.Max-x) >= Epsilon
	}
	norm := r.Norm(x)
	return norm >= -Epsilon && norm-1 < Epsilon
}
