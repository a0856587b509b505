// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-axis/calendar"
	"github.com/aclements/go-axis/scale"
)

// Iter produces the ticks of a Sweep in increasing order. Ticks are
// data values: Log sweeps are converted back out of log10 space.
//
// Typical use is
//
//	for it := sweep.Iter(); it.Next(); {
//		... it.Value ...
//	}
type Iter struct {
	// Value is the current tick. It is valid after Next returns
	// true.
	Value float64

	s     Sweep
	minor bool
	i     int
	err   error

	// left and right bound a minor sweep, in data space.
	left, right float64

	// Calendar walk state.
	year, month int
	day         int64
}

// Iter returns an iterator over the major ticks of s.
func (s Sweep) Iter() *Iter {
	it := &Iter{s: s}
	it.Reset()
	return it
}

// Between returns an iterator over the minor ticks of s that fall
// strictly between the adjacent major ticks left and right. For Log
// sweeps, the interval is subdivided in log10 space.
func (s Sweep) Between(left, right float64) *Iter {
	it := &Iter{s: s, minor: true, left: left, right: right}
	it.Reset()
	return it
}

// Reset rewinds it to the first tick.
func (it *Iter) Reset() {
	it.i, it.err, it.Value = 0, nil, 0
	s := &it.s
	if !it.minor {
		it.year, it.month = s.Year, s.Month
		it.day = int64(math.Floor(s.Initial / daySecs))
		return
	}

	if s.ScaleType == scale.Log {
		s.Initial = scale.Log10(it.left)
		s.Range = scale.Log10(it.right) - s.Initial
	} else {
		s.Initial = it.left
		s.Range = it.right - it.left
	}
	if it.calendarMinor() {
		d, err := calendar.FromSeconds(it.left)
		if err != nil {
			it.err = err
			return
		}
		it.year, it.month = d.Year, d.Month
		it.day = int64(math.Floor(it.left / daySecs))
	}
}

// Err returns the error, if any, that stopped the iteration. Minor
// calendar sweeps fail if their interval lies outside the calendar.
func (it *Iter) Err() error {
	return it.err
}

// Next advances to the next tick and reports whether there is one.
func (it *Iter) Next() bool {
	if it.err != nil || it.i >= it.s.NumSteps || it.i >= MaxTicks {
		return false
	}
	var v float64
	if it.minor {
		var ok bool
		if v, ok = it.minorValue(); !ok {
			it.i = it.s.NumSteps
			return false
		}
	} else {
		v = it.majorValue()
	}
	it.Value = v
	it.i++
	return true
}

func (it *Iter) calendarMinor() bool {
	if it.s.ScaleType != scale.Time || it.s.Custom != nil {
		return false
	}
	switch it.s.TimeUnit {
	case Years, Months, Weeks:
		return true
	}
	return false
}

func (it *Iter) majorValue() float64 {
	s := &it.s
	i := float64(it.i)
	if s.Custom != nil {
		return s.Custom[it.i]
	}
	switch s.ScaleType {
	case scale.Log:
		return scale.Exp10(scale.URound(s.Initial+i*s.Step, s.Step))
	case scale.Time:
		step := int(s.Step)
		switch s.TimeUnit {
		case Years:
			if it.i > 0 {
				for k := 0; k < step; k++ {
					it.day += int64(calendar.DaysInYear(it.year))
					it.year++
				}
			}
			return float64(it.day) * daySecs
		case Months:
			if it.i > 0 {
				for k := 0; k < step; k++ {
					it.day += int64(calendar.DaysInMonth(it.year, it.month))
					it.year, it.month = calendar.AddMonths(it.year, it.month, 1)
				}
			}
			return float64(it.day) * daySecs
		case Weeks, Days:
			if it.i > 0 {
				it.day += int64(step) * int64(unitSeconds(s.TimeUnit)/daySecs)
			}
			return float64(it.day) * daySecs
		case Hours, Minutes, Seconds:
			return s.Initial + i*s.Step*unitSeconds(s.TimeUnit)
		}
	}
	return scale.URound(s.Initial+i*s.Step, s.Step)
}

func (it *Iter) minorValue() (float64, bool) {
	s := &it.s
	switch {
	case s.Custom != nil:
		return it.frac(s.Custom[it.i]), true
	case s.Decade:
		return it.frac(logTable[it.i]), true
	case !it.calendarMinor():
		return it.frac(s.Step * float64(it.i+1)), true
	}

	step := int(s.Step)
	if step < 1 {
		step = 1
	}
	var day int64
	switch s.TimeUnit {
	case Years:
		y := it.year + (it.i+1)*step
		if y > calendar.MaxYear {
			return 0, false
		}
		day = calendar.DaysFromEpoch(y, 1, 1)
	case Months:
		y, m := calendar.AddMonths(it.year, it.month, (it.i+1)*step)
		if y > calendar.MaxYear {
			return 0, false
		}
		day = calendar.DaysFromEpoch(y, m, 1)
	case Weeks:
		if it.i == 0 {
			it.day = nextWeekStart(it.day, s.WeekStart)
		} else {
			it.day += 7 * int64(step)
		}
		day = it.day
	}
	v := float64(day) * daySecs
	if v >= it.right {
		return 0, false
	}
	return v, true
}

// frac returns the data value at fraction t of the current minor
// interval.
func (it *Iter) frac(t float64) float64 {
	v := it.s.Initial + it.s.Range*t
	if it.s.ScaleType == scale.Log {
		return scale.Exp10(v)
	}
	return v
}

// Collect returns all remaining ticks of it.
func Collect(it *Iter) []float64 {
	var out []float64
	for it.Next() {
		out = append(out, it.Value)
	}
	return out
}
