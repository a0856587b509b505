// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-moremath/vec"
)

// Mapper returns the mapping between a's data values and coordinates
// in vp.
func (a *Axis) Mapper(vp scale.Viewport) scale.Mapper {
	return scale.Mapper{
		Range:       a.AxisRange,
		Viewport:    vp,
		Orientation: a.Orientation,
		Decreasing:  a.Decreasing,
		Log:         a.Scale == scale.Log,
	}
}

// ToScreen maps data value v to a coordinate in vp. If vp crops and v
// is outside the axis, it returns vp.Min.
func (a *Axis) ToScreen(v float64, vp scale.Viewport) float64 {
	c, ok := a.Mapper(vp).Map(v)
	if !ok {
		return vp.Min
	}
	return c
}

// FromScreen maps coordinate c in vp back to a data value.
func (a *Axis) FromScreen(c float64, vp scale.Viewport) float64 {
	return a.Mapper(vp).Unmap(c)
}

// ToScreenAll maps each of xs to a coordinate in vp. Unlike ToScreen,
// it ignores cropping and clamping, so values outside the axis map
// past the ends of vp.
func (a *Axis) ToScreenAll(xs []float64, vp scale.Viewport) []float64 {
	vp.Unclamp()
	m := a.Mapper(vp)
	return vec.Map(func(x float64) float64 {
		c, _ := m.Map(x)
		return c
	}, xs)
}

// InRange reports whether data value v falls within the displayed
// axis range.
func (a *Axis) InRange(v float64) bool {
	return a.AxisRange.InRange(a.Scale.Transform(v))
}
