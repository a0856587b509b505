// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "github.com/aclements/go-axis/ticks"

// TickIterMajor returns an iterator over all major ticks of the
// resolved axis, including any just outside the displayed range.
func (a *Axis) TickIterMajor() *ticks.Iter {
	return a.Major.Iter()
}

// TickIterMinor returns an iterator over the minor ticks between the
// adjacent major ticks left and right.
func (a *Axis) TickIterMinor(left, right float64) *ticks.Iter {
	return a.Minor.Between(left, right)
}

// MajorTicks returns the major ticks within the displayed range.
func (a *Axis) MajorTicks() []float64 {
	var out []float64
	for it := a.TickIterMajor(); it.Next(); {
		if a.InRange(it.Value) {
			out = append(out, it.Value)
		}
	}
	return out
}

// MinorTicks returns the minor ticks within the displayed range.
func (a *Axis) MinorTicks() []float64 {
	var out []float64
	majors := ticks.Collect(a.TickIterMajor())
	for i := 1; i < len(majors); i++ {
		for it := a.TickIterMinor(majors[i-1], majors[i]); it.Next(); {
			if a.InRange(it.Value) {
				out = append(out, it.Value)
			}
		}
	}
	return out
}
