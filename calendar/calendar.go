// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar implements the proleptic Gregorian calendar
// arithmetic needed to place ticks on time axes.
//
// Times are float64 seconds since 1970-01-01 00:00:00 UTC. There are
// no time zones and no leap seconds, so every day is exactly 86400
// seconds long. Only month and year lengths vary, which is why tick
// generators walk the calendar rather than stepping by a fixed number
// of seconds.
package calendar // import "github.com/aclements/go-axis/calendar"

import (
	"fmt"
	"math"
	"time"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay

	// MinYear and MaxYear bound the years this package will
	// convert to or from.
	MinYear = 1
	MaxYear = 9999

	epochYear    = 1970
	epochWeekday = time.Thursday
)

var daysPerMonth = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// daysBeforeMonth[leap][m] is the number of days in a year before
// month m+1.
var daysBeforeMonth = [2][13]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// An OverflowError reports a date whose year falls outside
// [MinYear, MaxYear].
type OverflowError struct {
	Year    int
	Seconds float64
}

func (e *OverflowError) Error() string {
	if math.IsNaN(e.Seconds) || math.IsInf(e.Seconds, 0) {
		return fmt.Sprintf("calendar: time %v is not finite", e.Seconds)
	}
	return fmt.Sprintf("calendar: year %d out of range [%d, %d]", e.Year, MinYear, MaxYear)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	return daysPerMonth[leapIndex(year)][month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return daysBeforeMonth[leapIndex(year)][12]
}

// leapsBefore returns the number of leap years in [1, year).
func leapsBefore(year int) int64 {
	y := int64(year - 1)
	return y/4 - y/100 + y/400
}

// DaysFromEpoch returns the number of days from 1970-01-01 to the
// given date. Dates before the epoch are negative. year must be in
// [MinYear, MaxYear+1]; month and day are not range checked, so day
// may run past the end of month.
func DaysFromEpoch(year, month, day int) int64 {
	days := 365*int64(year-epochYear) + leapsBefore(year) - leapsBefore(epochYear)
	days += int64(daysBeforeMonth[leapIndex(year)][month-1])
	return days + int64(day-1)
}

// AddMonths returns the year and month n months after the given year
// and month. n may be negative.
func AddMonths(year, month, n int) (int, int) {
	m := year*12 + (month - 1) + n
	y := floorDiv(m, 12)
	return y, m - y*12 + 1
}

// Date is a broken-down UTC time.
type Date struct {
	Year    int
	Month   int // 1-12
	Day     int // 1-31
	Hour    int
	Minute  int
	Second  float64 // including any fractional part
	Weekday time.Weekday
	YearDay int // 0-based day of the year
	IsLeap  bool
}

// FromSeconds breaks secs down into a Date.
func FromSeconds(secs float64) (Date, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return Date{}, &OverflowError{Seconds: secs}
	}
	fdays := math.Floor(secs / SecondsPerDay)
	// Years outside [MinYear, MaxYear] span fewer than 4e6 days
	// either side of the epoch, so this also keeps the int64
	// conversion below in range.
	if fdays < float64(DaysFromEpoch(MinYear, 1, 1)) || fdays >= float64(DaysFromEpoch(MaxYear+1, 1, 1)) {
		y := math.Max(math.MinInt32, math.Min(math.MaxInt32, epochYear+fdays/365.2425))
		return Date{}, &OverflowError{Year: int(y), Seconds: secs}
	}
	days := int64(fdays)
	rem := secs - fdays*SecondsPerDay

	var d Date
	d.Year = epochYear + int(math.Floor(fdays/365.2425))
	for d.Year > MinYear && DaysFromEpoch(d.Year, 1, 1) > days {
		d.Year--
	}
	for d.Year < MaxYear && DaysFromEpoch(d.Year+1, 1, 1) <= days {
		d.Year++
	}
	d.IsLeap = IsLeapYear(d.Year)
	d.YearDay = int(days - DaysFromEpoch(d.Year, 1, 1))
	before := &daysBeforeMonth[leapIndex(d.Year)]
	d.Month = 1
	for d.Month < 12 && before[d.Month] <= d.YearDay {
		d.Month++
	}
	d.Day = d.YearDay - before[d.Month-1] + 1
	d.Weekday = Weekday(days)

	d.Hour = int(rem / SecondsPerHour)
	rem -= float64(d.Hour * SecondsPerHour)
	d.Minute = int(rem / SecondsPerMinute)
	d.Second = rem - float64(d.Minute*SecondsPerMinute)
	return d, nil
}

// Seconds returns d as seconds since the epoch. Only Year, Month,
// Day, Hour, Minute, and Second are consulted.
func (d Date) Seconds() float64 {
	days := DaysFromEpoch(d.Year, d.Month, d.Day)
	return float64(days)*SecondsPerDay + float64(d.Hour*SecondsPerHour+d.Minute*SecondsPerMinute) + d.Second
}

// ToSeconds returns the given date and time as seconds since the
// epoch.
func ToSeconds(year, month, day, hour, min int, sec float64) (float64, error) {
	if year < MinYear || year > MaxYear {
		return 0, &OverflowError{Year: year}
	}
	return Date{Year: year, Month: month, Day: day, Hour: hour, Minute: min, Second: sec}.Seconds(), nil
}

// Weekday returns the day of the week of the given day number, where
// day 0 is 1970-01-01.
func Weekday(days int64) time.Weekday {
	return time.Weekday(floorMod64(days+int64(epochWeekday), 7))
}

// DaysToWeekday returns the number of days (0-6) from weekday from
// back to the most recent weekday to.
func DaysToWeekday(from, to time.Weekday) int {
	return int(floorMod64(int64(from-to), 7))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod64(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
