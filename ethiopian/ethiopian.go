// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ethiopian converts between Ethiopian and Gregorian calendar dates.
//
// The Ethiopian calendar has twelve months of 30 days followed by Pagume,
// a thirteenth month of 5 days, or 6 days in a leap year. Ethiopian year Y
// is a leap year iff (Y+1)%4 == 0. Conversions are performed by projecting
// both calendars onto the EpochDay axis provided by
// cloudeng.io/ethiocal/daycount:
//
//	Gregorian -> daycount.ToEpochDay -> ethiopian.FromEpochDay -> Ethiopian
//	Ethiopian -> ethiopian.ToEpochDay -> daycount.FromEpochDay -> Gregorian
//
// so that every conversion round trips exactly. For Gregorian years
// 1899-2098, 1 Meskerem falls on September 11, or on September 12 when the
// following Gregorian year is a leap year.
//
// Dates that do not exist, such as Pagume 6 in a non-leap year, are
// rejected with ErrInvalidDate; they are never carried over into the
// following year.
package ethiopian

import (
	"cmp"
	"fmt"

	"cloudeng.io/ethiocal/daycount"
)

// Calendar is the calendar name used in daycount.DateError.
const Calendar = "ethiopian"

const (
	// Meskerem is the first month of the Ethiopian year.
	Meskerem = 1
	// Pagume is the thirteenth, short, month of the Ethiopian year.
	Pagume = 13

	// MinYear and MaxYear bound the supported Ethiopian years, MaxYear
	// is the last Ethiopian year that ends before Gregorian
	// daycount.MaxYear does.
	MinYear = 1
	MaxYear = 9991
)

var (
	ErrInvalidDate = daycount.ErrInvalidDate
	ErrOutOfRange  = daycount.ErrOutOfRange
)

// epoch is 1 Meskerem 1, ie. 29 August 8 CE in the Julian calendar and
// 0008-08-27 in the proleptic Gregorian calendar.
const epoch daycount.EpochDay = 2796

// Date represents an Ethiopian calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns a Date for the specified year, month and day. It does
// not validate its arguments, use Validate to do so.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// IsLeapYear returns true if Pagume has 6 days in the given year.
func IsLeapYear(year int) bool {
	return (year+1)%4 == 0
}

// DaysInMonth returns the number of days in the given month, or zero if
// the month is not in the range 1-13.
func DaysInMonth(year, month int) int {
	switch {
	case month < Meskerem || month > Pagume:
		return 0
	case month < Pagume:
		return 30
	case IsLeapYear(year):
		return 6
	default:
		return 5
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Validate returns an error wrapping ErrInvalidDate if the month or day
// does not exist in the date's year, or ErrOutOfRange if the year is
// outside of MinYear..MaxYear.
func (d Date) Validate() error {
	if d.Month < Meskerem || d.Month > Pagume || d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return d.error(ErrInvalidDate)
	}
	if d.Year < MinYear || d.Year > MaxYear {
		return d.error(ErrOutOfRange)
	}
	return nil
}

func (d Date) error(err error) error {
	return daycount.NewDateError(Calendar, d.Year, d.Month, d.Day, err)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the
// same as, or after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, o.Day)
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for leap years.
// The date is assumed to be valid.
func (d Date) DayOfYear() int {
	return (d.Month-1)*30 + d.Day
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	day, err := ToEpochDay(d)
	if err != nil {
		return Date{}, err
	}
	return FromEpochDay(day.Add(n))
}
