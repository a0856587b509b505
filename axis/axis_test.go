// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-axis/calendar"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
	"github.com/stretchr/testify/require"
)

func linearAxis(t *testing.T, xs ...float64) *Axis {
	t.Helper()
	a := New()
	a.ObserveAll(xs)
	_, err := a.Resolve()
	require.NoError(t, err)
	return a
}

func TestResolve(t *testing.T) {
	a := New()
	a.ObserveAll([]float64{12, 0, 97, 40})
	dirty, err := a.Resolve()
	require.NoError(t, err)
	require.True(t, dirty)

	if a.Min != 0 || a.Max != 97 {
		t.Errorf("limits = [%v, %v], want [0, 97]", a.Min, a.Max)
	}
	if a.AxisRange.Min != 0 || a.AxisRange.Max != 100 {
		t.Errorf("axis range = [%v, %v], want [0, 100]", a.AxisRange.Min, a.AxisRange.Max)
	}
	want := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	require.Equal(t, want, a.MajorTicks())
	require.Len(t, a.MinorTicks(), 10)

	// Resolving again with nothing changed is a no-op.
	dirty, err = a.Resolve()
	require.NoError(t, err)
	if dirty {
		t.Errorf("second Resolve reported dirty")
	}
	if a.Min != 0 || a.Max != 97 {
		t.Errorf("second Resolve limits = [%v, %v], want [0, 97]", a.Min, a.Max)
	}
}

func TestResolveDegenerate(t *testing.T) {
	a := New()
	a.LooseMin, a.LooseMax = ticks.Tight, ticks.Tight
	a.Observe(5)
	dirty, err := a.Resolve()
	require.NoError(t, err)
	require.True(t, dirty)
	if a.Min != 4.5 || a.Max != 5.5 {
		t.Errorf("limits = [%v, %v], want [4.5, 5.5]", a.Min, a.Max)
	}
	if a.AxisRange.Min != 4.5 || a.AxisRange.Max != 5.5 {
		t.Errorf("tight axis range = [%v, %v], want [4.5, 5.5]", a.AxisRange.Min, a.AxisRange.Max)
	}
}

func TestResolveRequests(t *testing.T) {
	a := New()
	a.ObserveAll([]float64{0, 100})
	a.SetLimits(10, 5)
	_, err := a.Resolve()
	require.NoError(t, err)
	if a.Min != 0 || a.Max != 100 {
		t.Errorf("inverted request: limits = [%v, %v], want [0, 100]", a.Min, a.Max)
	}

	a.SetLimits(10, 33)
	_, err = a.Resolve()
	require.NoError(t, err)
	// Loose bounds don't move requested limits.
	if a.AxisRange.Min != 10 || a.AxisRange.Max != 33 {
		t.Errorf("requested axis range = [%v, %v], want [10, 33]", a.AxisRange.Min, a.AxisRange.Max)
	}

	a.ClearLimits()
	_, err = a.Resolve()
	require.NoError(t, err)
	if a.Min != 0 || a.Max != 100 {
		t.Errorf("cleared limits = [%v, %v], want [0, 100]", a.Min, a.Max)
	}
}

func TestResolveWindow(t *testing.T) {
	a := New()
	a.WindowSize, a.ShiftBy = 60, 10
	for x := 0.0; x <= 1000; x += 7 {
		a.Observe(x)
	}
	_, err := a.Resolve()
	require.NoError(t, err)
	if a.Min != 940 || a.Max != 1000 {
		t.Errorf("window limits = [%v, %v], want [940, 1000]", a.Min, a.Max)
	}
}

func TestResolveLog(t *testing.T) {
	a := New()
	a.Scale = scale.Log
	a.ObserveAll([]float64{3, 25000, -1, 0, math.NaN()})
	_, err := a.Resolve()
	require.NoError(t, err)

	lo, hi, ok := a.DataBounds()
	require.True(t, ok)
	if lo != 3 || hi != 25000 {
		t.Errorf("data bounds = [%v, %v], want [3, 25000]", lo, hi)
	}
	majors := a.MajorTicks()
	require.Len(t, majors, 6)
	for i, v := range majors {
		require.InEpsilon(t, math.Pow(10, float64(i)), v, 1e-9)
	}
	require.Len(t, a.MinorTicks(), 5*8)

	vp := scale.NewViewport(0, 500)
	require.InDelta(t, 200, a.ToScreen(100, vp), 1e-9)
	require.InEpsilon(t, 100, a.FromScreen(200, vp), 1e-9)
}

func TestResolveTime(t *testing.T) {
	a := New()
	a.Scale = scale.Time
	a.Observe(0)
	a.Observe(400 * calendar.SecondsPerDay)
	_, err := a.Resolve()
	require.NoError(t, err)
	require.Equal(t, ticks.Months, a.Major.TimeUnit)
	require.Len(t, a.MajorTicks(), 15)
	for _, v := range a.MinorTicks() {
		d, err := calendar.FromSeconds(v)
		require.NoError(t, err)
		if d.Weekday != a.WeekStart {
			t.Errorf("minor tick %v falls on %v, want %v", v, d.Weekday, a.WeekStart)
		}
	}
}

func TestResolveOverflow(t *testing.T) {
	a := New()
	a.Scale = scale.Time
	a.ObserveAll([]float64{0, 1e15})
	_, err := a.Resolve()
	var oe *calendar.OverflowError
	require.True(t, errors.As(err, &oe), "Resolve error = %v, want *calendar.OverflowError", err)
}

func TestMapping(t *testing.T) {
	a := linearAxis(t, 0, 100)
	vp := scale.NewViewport(10, 200)
	require.Equal(t, 110.0, a.ToScreen(50, vp))
	require.Equal(t, 50.0, a.FromScreen(110, vp))
	require.Equal(t, []float64{10, 60, 210}, a.ToScreenAll([]float64{0, 25, 100}, vp))

	a.Orientation = scale.Vertical
	require.Equal(t, 210.0, a.ToScreen(0, vp))
	a.Orientation, a.Decreasing = scale.Horizontal, true
	require.Equal(t, 210.0, a.ToScreen(0, vp))
	require.Equal(t, 0.0, a.FromScreen(210, vp))

	require.True(t, a.InRange(100))
	require.False(t, a.InRange(101))

	vp.Crop()
	require.Equal(t, vp.Min, a.ToScreen(-50, vp))
	// ToScreenAll extrapolates even through a cropped viewport.
	require.Equal(t, []float64{310, -190}, a.ToScreenAll([]float64{-50, 200}, vp))
}

func TestScrollAndZoom(t *testing.T) {
	a := linearAxis(t, 0, 100)
	first, last := a.View()
	require.Equal(t, 0.0, first)
	require.Equal(t, 1.0, last)

	require.NoError(t, a.Zoom(2, 50))
	require.Equal(t, 25.0, a.Min)
	require.Equal(t, 75.0, a.Max)
	first, last = a.View()
	require.InDelta(t, 0.25, first, 1e-12)
	require.InDelta(t, 0.75, last, 1e-12)

	require.NoError(t, a.MoveTo(0))
	require.Equal(t, 0.0, a.Min)
	require.Equal(t, 50.0, a.Max)

	require.NoError(t, a.ScrollUnits(1))
	require.InDelta(t, 10, a.Min, 1e-9)
	require.InDelta(t, 60, a.Max, 1e-9)

	// Paging stops at the end of the scroll region.
	require.NoError(t, a.ScrollPages(1))
	require.InDelta(t, 50, a.Min, 1e-9)
	require.InDelta(t, 100, a.Max, 1e-9)

	// An explicit scroll region extends past the data.
	a.ScrollMax = 200
	require.NoError(t, a.ScrollPages(1))
	require.InDelta(t, 100, a.Min, 1e-9)
	require.InDelta(t, 150, a.Max, 1e-9)
}

func TestCustomTicks(t *testing.T) {
	a := New()
	a.MajorValues = []float64{0, 25, 50, 75, 100, 125}
	a.MinorValues = []float64{0.5}
	a.ObserveAll([]float64{0, 100})
	_, err := a.Resolve()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 25, 50, 75, 100}, a.MajorTicks())
	require.Equal(t, []float64{12.5, 37.5, 62.5, 87.5}, a.MinorTicks())
}

func TestObserveAll(t *testing.T) {
	a := New()
	a.ObserveAll([]float64{4, 1, math.Inf(1), 3, 2})
	a.Observe(math.NaN())
	require.Equal(t, uint(4), a.data.Count)
	require.InDelta(t, 2.5, a.data.Mean(), 1e-12)
	lo, hi, ok := a.DataBounds()
	require.True(t, ok)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 4.0, hi)
}

func TestResetData(t *testing.T) {
	a := linearAxis(t, 40, 60)
	a.ResetData()
	_, _, ok := a.DataBounds()
	require.False(t, ok)
	_, err := a.Resolve()
	require.NoError(t, err)
	if a.Min != 0 || a.Max != 1 {
		t.Errorf("empty axis limits = [%v, %v], want [0, 1]", a.Min, a.Max)
	}
}
