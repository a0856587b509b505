// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A Mapper converts between data values and viewport coordinates.
//
// Range is in the axis's internal space; that is, for logarithmic
// mappers it holds log10 of the axis bounds.
type Mapper struct {
	Range       Range
	Viewport    Viewport
	Orientation Orientation

	// Decreasing reverses the direction of the axis.
	Decreasing bool

	// Log applies Log10 to values before mapping and Exp10 after
	// unmapping.
	Log bool
}

// Norm returns the position of data value v along the axis, where 0
// is the start of the viewport and 1 is its end. This accounts for
// Log, Decreasing, and Orientation.
func (m Mapper) Norm(v float64) float64 {
	if m.Log {
		v = Log10(v)
	}
	t := m.Range.Norm(v)
	if m.Decreasing {
		t = 1 - t
	}
	if m.Orientation == Vertical {
		t = 1 - t
	}
	return t
}

// Map returns the viewport coordinate of data value v. The second
// result is false if the viewport crops and v falls outside it.
func (m Mapper) Map(v float64) (float64, bool) {
	return m.Viewport.Of(m.Norm(v))
}

// Unmap returns the data value at viewport coordinate c.
func (m Mapper) Unmap(c float64) float64 {
	t := m.Viewport.Norm(c)
	if m.Orientation == Vertical {
		t = 1 - t
	}
	if m.Decreasing {
		t = 1 - t
	}
	v := m.Range.Denorm(t)
	if m.Log {
		v = Exp10(v)
	}
	return v
}

// Forward maps value to a coordinate in the viewport [screenMin,
// screenMin+screenLen] using the given orientation convention.
func Forward(r Range, screenMin, screenLen float64, decreasing, log bool, o Orientation, value float64) float64 {
	m := Mapper{Range: r, Viewport: NewViewport(screenMin, screenLen), Orientation: o, Decreasing: decreasing, Log: log}
	c, _ := m.Map(value)
	return c
}

// Inverse is the inverse of Forward.
func Inverse(r Range, screenMin, screenLen float64, decreasing, log bool, o Orientation, coord float64) float64 {
	m := Mapper{Range: r, Viewport: NewViewport(screenMin, screenLen), Orientation: o, Decreasing: decreasing, Log: log}
	return m.Unmap(coord)
}
