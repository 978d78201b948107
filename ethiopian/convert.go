// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

import (
	"fmt"

	"cloudeng.io/ethiocal/daycount"
)

var (
	minEpochDay = newYear(MinYear)
	maxEpochDay = newYear(MaxYear+1) - 1
)

// newYear returns the EpochDay of 1 Meskerem of the given year. Every
// fourth year, the leap year, has 366 days.
func newYear(year int) daycount.EpochDay {
	return epoch + daycount.EpochDay(365*(year-1)+year/4)
}

// NewYear returns the EpochDay of 1 Meskerem of the given year.
func NewYear(year int) (daycount.EpochDay, error) {
	if year < MinYear || year > MaxYear {
		return 0, daycount.NewDateError(Calendar, year, Meskerem, 1, ErrOutOfRange)
	}
	return newYear(year), nil
}

// ToEpochDay returns the EpochDay for the supplied date, or an error if
// the date fails Validate.
func ToEpochDay(d Date) (daycount.EpochDay, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return newYear(d.Year) + daycount.EpochDay((d.Month-1)*30+d.Day-1), nil
}

// FromEpochDay returns the Ethiopian date for the supplied EpochDay or an
// error wrapping ErrOutOfRange if the day falls outside of the years
// MinYear..MaxYear. FromEpochDay(ToEpochDay(d)) == d for all valid dates.
func FromEpochDay(n daycount.EpochDay) (Date, error) {
	if n < minEpochDay || n > maxEpochDay {
		return Date{}, fmt.Errorf("epoch day %d is outside of ethiopian years %d..%d: %w", n, MinYear, MaxYear, ErrOutOfRange)
	}
	// The year whose new year is the last one on or before n, the 1463
	// accounts for the 366 day year being the third of each cycle.
	year := int((4*(n-epoch) + 1463) / 1461)
	offset := int(n - newYear(year))
	month := offset/30 + 1
	return Date{Year: year, Month: month, Day: offset - (month-1)*30 + 1}, nil
}

// FromGregorian converts a Gregorian date to an Ethiopian date.
func FromGregorian(cd daycount.CalendarDate) (Date, error) {
	day, err := daycount.ToEpochDay(cd)
	if err != nil {
		return Date{}, err
	}
	d, err := FromEpochDay(day)
	if err != nil {
		return Date{}, fmt.Errorf("gregorian %v: %w", cd, err)
	}
	return d, nil
}

// ToGregorian converts an Ethiopian date to a Gregorian date.
func ToGregorian(d Date) (daycount.CalendarDate, error) {
	day, err := ToEpochDay(d)
	if err != nil {
		return daycount.CalendarDate{}, err
	}
	return daycount.FromEpochDay(day)
}

// MustFromGregorian is like FromGregorian but panics on error.
func MustFromGregorian(cd daycount.CalendarDate) Date {
	d, err := FromGregorian(cd)
	if err != nil {
		panic(err)
	}
	return d
}

// MustToGregorian is like ToGregorian but panics on error.
func MustToGregorian(d Date) daycount.CalendarDate {
	cd, err := ToGregorian(d)
	if err != nil {
		panic(err)
	}
	return cd
}
