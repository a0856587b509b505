// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Viewport is an output interval, typically in pixels, that an axis's
// [0, 1] normalized range is mapped on to.
type Viewport struct {
	Min, Len float64
	clamp    int
}

const (
	clampNone = iota
	clampCrop
	clampClamp
)

// NewViewport returns the viewport that starts at min and extends for
// length units. Positions outside [0, 1] are passed through unchanged.
func NewViewport(min, length float64) Viewport {
	return Viewport{Min: min, Len: length}
}

// Crop makes Of reject positions outside [0, 1].
func (v *Viewport) Crop() {
	v.clamp = clampCrop
}

// Unclamp makes Of pass through positions outside [0, 1].
func (v *Viewport) Unclamp() {
	v.clamp = clampNone
}

// Clamp makes Of clamp positions to [0, 1].
func (v *Viewport) Clamp() {
	v.clamp = clampClamp
}

// Max returns the far end of the viewport.
func (v Viewport) Max() float64 {
	return v.Min + v.Len
}

// Of maps a normalized position t to a viewport coordinate. If v
// crops and t is outside [0, 1], it returns 0, false.
func (v Viewport) Of(t float64) (float64, bool) {
	if v.clamp == clampCrop {
		if t < 0 || t > 1 {
			return 0, false
		}
	} else if v.clamp == clampClamp {
		t = clamp(t)
	}
	return v.Min + t*v.Len, true
}

// Norm is the inverse of Of, ignoring cropping and clamping. A
// zero-length viewport maps everything to 0.
func (v Viewport) Norm(c float64) float64 {
	if v.Len == 0 {
		return 0
	}
	return (c - v.Min) / v.Len
}
