// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Gregorian is the calendar name used in DateError.
const Gregorian = "gregorian"

// CalendarDate represents a proleptic Gregorian date. The zero value is
// not a valid date.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month
// and day. It does not validate its arguments, use Validate to do so.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// FromTime returns the CalendarDate of t in t's location. Time zone
// conversion, if any, is the caller's responsibility.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// Time returns midnight at the start of the date in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// String returns the date in ISO 8601 format, ie. YYYY-MM-DD.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Validate returns an error wrapping ErrInvalidDate if the month or day
// is not valid for the year, or ErrOutOfRange if the year is outside
// of MinYear..MaxYear.
func (cd CalendarDate) Validate() error {
	if cd.Month < 1 || cd.Month > 12 || cd.Day < 1 || cd.Day > DaysInMonth(cd.Year, cd.Month) {
		return cd.error(ErrInvalidDate)
	}
	if cd.Year < MinYear || cd.Year > MaxYear {
		return cd.error(ErrOutOfRange)
	}
	return nil
}

func (cd CalendarDate) error(err error) error {
	return NewDateError(Gregorian, cd.Year, int(cd.Month), cd.Day, err)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the
// same as, or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	if c := cmp.Compare(cd.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(cd.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(cd.Day, o.Day)
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for leap years.
// The date is assumed to be valid.
func (cd CalendarDate) DayOfYear() int {
	if IsLeap(cd.Year) {
		return dayOfYearLeap[cd.Month-1] + cd.Day
	}
	return dayOfYear[cd.Month-1] + cd.Day
}

const expectedDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

func parseField(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, val, ErrInvalidDate)
	}
	return n, nil
}

// Parse parses a date in one of the formats 2006-01-02, 01/02/2006 or
// Jan-02-2006. The parsed date must be valid as per Validate.
func (cd *CalendarDate) Parse(val string) error {
	var parts []string
	var numeric bool
	switch {
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
		numeric = true
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
	}
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrInvalidDate)
	}
	var (
		month           Month
		year, day       int
		err, yerr, derr error
	)
	switch {
	case numeric:
		month, err = ParseNumericMonth(parts[0])
		day, derr = parseField("day", parts[1])
		year, yerr = parseField("year", parts[2])
	case len(parts[0]) > 0 && parts[0][0] >= '0' && parts[0][0] <= '9':
		year, yerr = parseField("year", parts[0])
		month, err = ParseNumericMonth(parts[1])
		day, derr = parseField("day", parts[2])
	default:
		month, err = ParseMonth(parts[0])
		day, derr = parseField("day", parts[1])
		year, yerr = parseField("year", parts[2])
	}
	for _, e := range []error{err, yerr, derr} {
		if e != nil {
			return fmt.Errorf("invalid date %q: %w", val, e)
		}
	}
	ncd := CalendarDate{Year: year, Month: month, Day: day}
	if err := ncd.Validate(); err != nil {
		return err
	}
	*cd = ncd
	return nil
}

// ParseCalendarDate is a convenience function that calls CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}
