// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"math"

	"github.com/aclements/go-axis/scale"
)

// AdjustViewport clamps offset, the position of a view within a
// scroll region as a fraction of the region, so the view stays within
// the region. windowSize is the view's width as a fraction of the
// region.
//
// If the view is wider than the region, the roles reverse and the
// region is kept within the view, so offset is in [1-windowSize, 0].
func AdjustViewport(offset, windowSize float64) float64 {
	if windowSize > 1 {
		if windowSize < 1-offset {
			offset = 1 - windowSize
		}
		if offset > 0 {
			offset = 0
		}
	} else {
		if offset+windowSize > 1 {
			offset = 1 - windowSize
		}
		if offset < 0 {
			offset = 0
		}
	}
	return offset
}

// Scroll is a view onto a larger scroll region, both in the axis's
// internal space.
type Scroll struct {
	World, View Bounds

	// Log is set if World and View are log10 values.
	Log bool

	// FromMax is set if fractions are measured from World.Max
	// toward World.Min. This is the case for vertical axes, whose
	// scrollbars run top to bottom, unless the axis is also
	// decreasing.
	FromMax bool
}

// NewScroll returns the Scroll for an axis whose data spans
// valueRange and which currently shows view, both in data space.
// scrollMin and scrollMax, if not NaN, override the corresponding end
// of the scroll region. The view is clipped to the region.
func NewScroll(valueRange Bounds, scrollMin, scrollMax float64, view Bounds, mode scale.Mode, o scale.Orientation, decreasing bool) Scroll {
	world := valueRange
	if !math.IsNaN(scrollMin) {
		world.Min = scrollMin
	}
	if !math.IsNaN(scrollMax) {
		world.Max = scrollMax
	}
	if view.Min < world.Min {
		view.Min = world.Min
	}
	if view.Max > world.Max {
		view.Max = world.Max
	}
	s := Scroll{World: world, View: view, Log: mode == scale.Log}
	if s.Log {
		s.World = Bounds{scale.Log10(world.Min), scale.Log10(world.Max)}
		s.View = Bounds{scale.Log10(view.Min), scale.Log10(view.Max)}
	}
	s.FromMax = (o == scale.Horizontal) == decreasing
	return s
}

// Fractions returns the position of the view's leading and trailing
// edges as fractions of the scroll region, as a scrollbar would show
// them.
func (s Scroll) Fractions() (first, last float64) {
	width := s.World.Span()
	if !(width > 0) {
		return 0, 1
	}
	if s.FromMax {
		first = (s.World.Max - s.View.Max) / width
	} else {
		first = (s.View.Min - s.World.Min) / width
	}
	return first, first + s.View.Span()/width
}

// MoveTo returns the limits, in data space, that place the view's
// leading edge at fraction first of the scroll region. The view keeps
// its width and is kept within the region.
func (s Scroll) MoveTo(first float64) Bounds {
	width := s.World.Span()
	if !(width > 0) || math.IsNaN(first) {
		return s.untransform(s.View)
	}
	first = AdjustViewport(first, s.View.Span()/width)
	var b Bounds
	if s.FromMax {
		b.Max = s.World.Max - first*width
		b.Min = b.Max - s.View.Span()
	} else {
		b.Min = s.World.Min + first*width
		b.Max = b.Min + s.View.Span()
	}
	return s.untransform(b)
}

// ScrollUnits moves the view by n units of unit, a fraction of the
// scroll region. Negative n moves toward the start.
func (s Scroll) ScrollUnits(n int, unit float64) Bounds {
	first, _ := s.Fractions()
	return s.MoveTo(first + float64(n)*unit)
}

// ScrollPages moves the view by n times its own width.
func (s Scroll) ScrollPages(n int) Bounds {
	first, last := s.Fractions()
	return s.MoveTo(first + float64(n)*(last-first))
}

func (s Scroll) untransform(b Bounds) Bounds {
	if s.Log {
		return Bounds{scale.Exp10(b.Min), scale.Exp10(b.Max)}
	}
	return b
}

// Zoom scales view, in data space, by 1/factor about center. Factors
// greater than 1 zoom in. On log axes, the zoom is applied in log10
// space so center stays at the same screen position. Zoom returns
// view unchanged if factor is not positive and finite.
func Zoom(view Bounds, factor, center float64, mode scale.Mode) Bounds {
	if !(factor > 0) || math.IsInf(factor, 0) || math.IsNaN(center) {
		return view
	}
	c := mode.Transform(center)
	lo, hi := mode.Transform(view.Min), mode.Transform(view.Max)
	lo = c - (c-lo)/factor
	hi = c + (hi-c)/factor
	return Bounds{mode.Untransform(lo), mode.Untransform(hi)}
}
