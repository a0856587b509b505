// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "github.com/aclements/go-axis/viewport"

func (a *Axis) scroll() viewport.Scroll {
	return viewport.NewScroll(a.ValueRange, a.ScrollMin, a.ScrollMax,
		viewport.Bounds{Min: a.Min, Max: a.Max}, a.Scale, a.Orientation, a.Decreasing)
}

// View returns the displayed range's position within the scroll
// region as the fractions a scrollbar would show. The scroll region
// is the data range unless ScrollMin or ScrollMax override it.
func (a *Axis) View() (first, last float64) {
	return a.scroll().Fractions()
}

// MoveTo scrolls the axis so the view's leading edge is at fraction
// first of the scroll region, and resolves the axis again.
func (a *Axis) MoveTo(first float64) error {
	return a.setView(a.scroll().MoveTo(first))
}

// ScrollUnits scrolls the axis by n times ScrollUnit.
func (a *Axis) ScrollUnits(n int) error {
	return a.setView(a.scroll().ScrollUnits(n, a.ScrollUnit))
}

// ScrollPages scrolls the axis by n times the width of the view.
func (a *Axis) ScrollPages(n int) error {
	return a.setView(a.scroll().ScrollPages(n))
}

// Zoom narrows the displayed range by factor about data value center.
// Factors less than 1 widen it.
func (a *Axis) Zoom(factor, center float64) error {
	return a.setView(viewport.Zoom(viewport.Bounds{Min: a.Min, Max: a.Max}, factor, center, a.Scale))
}

func (a *Axis) setView(b viewport.Bounds) error {
	a.SetLimits(b.Min, b.Max)
	_, err := a.Resolve()
	return err
}
