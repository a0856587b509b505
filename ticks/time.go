// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"time"

	"github.com/aclements/go-axis/calendar"
	"github.com/aclements/go-axis/scale"
)

const (
	daySecs  = calendar.SecondsPerDay
	weekSecs = calendar.SecondsPerWeek
)

// firstSec is the first instant the calendar supports and lastSec is
// just past the last.
var (
	firstSec = float64(calendar.DaysFromEpoch(calendar.MinYear, 1, 1)) * daySecs
	lastSec  = float64(calendar.DaysFromEpoch(calendar.MaxYear+1, 1, 1)) * daySecs
)

// MajorTimeUnit returns the unit of the major ticks on a time axis
// spanning [min, max] seconds.
func MajorTimeUnit(min, max float64) TimeUnit {
	span := max - min
	switch {
	case span > 1.5*365*daySecs:
		return Years
	case span > 2.1*30*daySecs:
		return Months
	case span > 2*weekSecs:
		return Weeks
	case span > 2*daySecs:
		return Days
	case span > 2*calendar.SecondsPerHour:
		return Hours
	case span > 2*calendar.SecondsPerMinute:
		return Minutes
	case span > 2:
		return Seconds
	}
	return Subseconds
}

// Time computes ticks for a time axis whose values are seconds since
// the Unix epoch in UTC.
//
// Major ticks fall on calendar boundaries of the unit chosen by
// MajorTimeUnit: January 1 for years, the first of the month for
// months, WeekStart midnight for weeks, and so on. Time returns a
// *calendar.OverflowError if either limit is outside the years the
// calendar supports. Ticks that would fall outside those years are
// dropped, and the axis then ends at the data limit instead.
func Time(o Options) (Result, error) {
	o = o.withDefaults()
	res := Result{
		Major:   Sweep{ScaleType: scale.Time, Step: 1},
		Minor:   noMinor(scale.Time),
		AxisMin: o.Min,
		AxisMax: o.Max,
	}
	if !o.valid() {
		return res, nil
	}
	lo, err := calendar.FromSeconds(o.Min)
	if err != nil {
		return res, err
	}
	hi, err := calendar.FromSeconds(o.Max)
	if err != nil {
		return res, err
	}

	unit := MajorTimeUnit(o.Min, o.Max)
	switch unit {
	case Years:
		return yearTicks(o, lo, hi)
	case Months:
		return monthTicks(o, lo, hi)
	case Weeks:
		return weekTicks(o)
	case Days:
		return dayTicks(o), nil
	case Hours, Minutes, Seconds:
		return clockTicks(o, unit), nil
	}

	res = Linear(o)
	res.Major.ScaleType, res.Major.TimeUnit = scale.Time, Subseconds
	res.Minor.ScaleType, res.Minor.TimeUnit = scale.Time, Subseconds
	return res, nil
}

// midnight reports whether d is exactly at the start of a day.
func midnight(d calendar.Date) bool {
	return d.Hour == 0 && d.Minute == 0 && d.Second == 0
}

// niceCount returns a nice integer step for n units divided into
// about reqMajor intervals.
func niceCount(n float64, reqMajor int) int {
	step := scale.Nice(scale.Nice(n, false)/float64(reqMajor), true)
	if !(step >= 1) {
		return 1
	}
	return int(math.Round(step))
}

func yearTicks(o Options, lo, hi calendar.Date) (Result, error) {
	minYear, maxYear := lo.Year, hi.Year
	if hi.Month != 1 || hi.Day != 1 || !midnight(hi) {
		maxYear++
	}
	step := 1
	if n := maxYear - minYear; n > 10 {
		step = niceCount(float64(n), o.ReqMajor)
		minYear = floorDiv(minYear, step) * step
		if minYear < calendar.MinYear {
			minYear = calendar.MinYear
		}
		maxYear = minYear - floorDiv(minYear-maxYear, step)*step
	}
	for maxYear > calendar.MaxYear && maxYear-step >= minYear {
		maxYear -= step
	}
	start, err := calendar.ToSeconds(minYear, 1, 1, 0, 0, 0)
	if err != nil {
		return Result{}, err
	}
	end, err := calendar.ToSeconds(maxYear, 1, 1, 0, 0, 0)
	if err != nil {
		return Result{}, err
	}

	res := Result{Major: Sweep{
		ScaleType: scale.Time,
		Step:      float64(step),
		Initial:   start,
		NumSteps:  (maxYear-minYear)/step + 1,
		Range:     end - start,
		TimeUnit:  Years,
		Year:      minYear,
		Month:     1,
	}}
	switch {
	case o.ReqMinor == 0:
		res.Minor = noMinor(scale.Time)
	case step == 1:
		res.Minor = Sweep{ScaleType: scale.Time, Step: 6, NumSteps: 1, TimeUnit: Months}
	default:
		res.Minor = Sweep{ScaleType: scale.Time, Step: 1, NumSteps: step - 1, TimeUnit: Years}
	}
	res.AxisMin, res.AxisMax = o.bounds(start, math.Max(end, o.Max), o.Min, o.Max)
	return res, nil
}

func monthTicks(o Options, lo, hi calendar.Date) (Result, error) {
	minYear, minMonth := lo.Year, lo.Month
	maxYear, maxMonth := hi.Year, hi.Month
	if hi.Day != 1 || !midnight(hi) {
		maxYear, maxMonth = calendar.AddMonths(maxYear, maxMonth, 1)
	}
	if maxYear > calendar.MaxYear {
		maxYear, maxMonth = calendar.MaxYear, 12
	}
	start, err := calendar.ToSeconds(minYear, minMonth, 1, 0, 0, 0)
	if err != nil {
		return Result{}, err
	}
	end, err := calendar.ToSeconds(maxYear, maxMonth, 1, 0, 0, 0)
	if err != nil {
		return Result{}, err
	}
	n := (maxYear*12 + maxMonth) - (minYear*12 + minMonth)

	res := Result{Major: Sweep{
		ScaleType: scale.Time,
		Step:      1,
		Initial:   start,
		NumSteps:  n + 1,
		Range:     end - start,
		TimeUnit:  Months,
		Year:      minYear,
		Month:     minMonth,
	}}
	res.Minor = noMinor(scale.Time)
	if o.ReqMinor > 0 {
		// No month holds more than five week starts.
		res.Minor = Sweep{ScaleType: scale.Time, Step: 1, NumSteps: 5, TimeUnit: Weeks, WeekStart: o.WeekStart}
	}
	res.AxisMin, res.AxisMax = o.bounds(start, math.Max(end, o.Max), o.Min, o.Max)
	return res, nil
}

func weekTicks(o Options) (Result, error) {
	loDay := int64(math.Floor(o.Min / daySecs))
	hiDay := int64(math.Ceil(o.Max / daySecs))
	loDay -= int64(calendar.DaysToWeekday(calendar.Weekday(loDay), o.WeekStart))
	if back := calendar.DaysToWeekday(calendar.Weekday(hiDay), o.WeekStart); back != 0 {
		hiDay += int64(7 - back)
	}
	weeks := int((hiDay - loDay) / 7)
	step := 1
	if weeks > 10 {
		step = niceCount(float64(weeks), o.ReqMajor)
	}
	count := (weeks+step-1)/step + 1
	stepSecs := float64(step) * weekSecs
	start := float64(loDay) * daySecs
	if start < firstSec {
		start += stepSecs
		count--
	}
	end := start + float64(count-1)*stepSecs
	for end >= lastSec && count > 1 {
		end -= stepSecs
		count--
	}

	res := Result{Major: Sweep{
		ScaleType: scale.Time,
		Step:      float64(step),
		Initial:   start,
		NumSteps:  count,
		Range:     end - start,
		TimeUnit:  Weeks,
		WeekStart: o.WeekStart,
	}}
	res.Minor = noMinor(scale.Time)
	if o.ReqMinor > 0 {
		days := 7 * step
		res.Minor = Sweep{ScaleType: scale.Time, Step: 1 / float64(days), NumSteps: days - 1, TimeUnit: Days}
	}
	res.AxisMin, res.AxisMax = o.bounds(math.Min(start, o.Min), math.Max(end, o.Max), o.Min, o.Max)
	return res, nil
}

func dayTicks(o Options) Result {
	start := scale.UFloor(o.Min, daySecs)
	end := scale.UCeil(o.Max, daySecs)
	res := Result{Major: Sweep{
		ScaleType: scale.Time,
		Step:      1,
		Initial:   start,
		NumSteps:  int(math.Round((end-start)/daySecs)) + 1,
		Range:     end - start,
		TimeUnit:  Days,
	}}
	res.Minor = noMinor(scale.Time)
	if o.ReqMinor > 0 {
		res.Minor = Sweep{ScaleType: scale.Time, Step: 0.25, NumSteps: 3, TimeUnit: Hours}
	}
	res.AxisMin, res.AxisMax = o.bounds(start, end, o.Min, o.Max)
	return res
}

// hourStep returns the major step in hours for a span of n hours.
// Hours axes span at most two days plus rounding, so the rungs are
// spread over [0, 50].
func hourStep(n float64) int {
	switch {
	case n <= 10:
		return 1
	case n <= 20:
		return 2
	case n <= 30:
		return 4
	case n <= 40:
		return 6
	}
	return 8
}

// clockTicks computes ticks for the fixed-length units Hours, Minutes,
// and Seconds.
func clockTicks(o Options, unit TimeUnit) Result {
	var unitSecs float64
	var step int
	var minor TimeUnit
	switch unit {
	case Hours:
		unitSecs, minor = calendar.SecondsPerHour, Minutes
		step = hourStep(math.Ceil(o.Max/unitSecs) - math.Floor(o.Min/unitSecs))
	case Minutes:
		unitSecs, minor = calendar.SecondsPerMinute, Seconds
		step = niceCount(math.Ceil((o.Max-o.Min)/unitSecs), o.ReqMajor)
	default:
		unitSecs, minor = 1, Subseconds
		step = niceCount(math.Ceil(o.Max-o.Min), o.ReqMajor)
	}
	stepSecs := float64(step) * unitSecs
	start := scale.UFloor(o.Min, stepSecs)
	end := scale.UCeil(o.Max, stepSecs)
	res := Result{Major: Sweep{
		ScaleType: scale.Time,
		Step:      float64(step),
		Initial:   start,
		NumSteps:  int(math.Round((end-start)/stepSecs)) + 1,
		Range:     end - start,
		TimeUnit:  unit,
	}}
	if unit == Hours {
		res.Minor = noMinor(scale.Time)
		if o.ReqMinor > 0 {
			res.Minor = Sweep{ScaleType: scale.Time, Step: 0.25, NumSteps: 3}
		}
	} else {
		res.Minor = fractionMinor(scale.Time, o.ReqMinor)
	}
	res.Minor.TimeUnit = minor
	res.AxisMin, res.AxisMax = o.bounds(start, end, o.Min, o.Max)
	return res
}

// unitSeconds returns the length in seconds of fixed-length units.
func unitSeconds(u TimeUnit) float64 {
	switch u {
	case Weeks:
		return weekSecs
	case Days:
		return daySecs
	case Hours:
		return calendar.SecondsPerHour
	case Minutes:
		return calendar.SecondsPerMinute
	}
	return 1
}

// nextWeekStart returns the first day strictly after day that falls
// on weekday ws.
func nextWeekStart(day int64, ws time.Weekday) int64 {
	return day + int64(7-calendar.DaysToWeekday(calendar.Weekday(day), ws))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
