// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"fmt"
	"time"
)

// EpochDay is a signed count of days where 0001-01-01 (Gregorian) is day 1.
// EpochDay values order chronologically.
type EpochDay int64

const (
	// MinYear and MaxYear bound the Gregorian years for which conversions
	// are supported.
	MinYear = 1
	MaxYear = 9999

	// MinEpochDay is 0001-01-01.
	MinEpochDay EpochDay = 1
	// MaxEpochDay is 9999-12-31.
	MaxEpochDay EpochDay = 3652059
)

// The conversions below count days from 0000-03-01 so that the leap day
// is the last day of the computational year. 0000-03-01 is EpochDay -305.
const (
	marchOffset = 305
	daysPerEra  = 146097 // 400 Gregorian years.
	unixOffset  = 719163 // EpochDay of 1970-01-01.
)

// Valid returns true if d is in the range MinEpochDay..MaxEpochDay.
func (d EpochDay) Valid() bool {
	return d >= MinEpochDay && d <= MaxEpochDay
}

// Add returns the day that is n days after d, n may be negative.
func (d EpochDay) Add(n int) EpochDay {
	return d + EpochDay(n)
}

// Weekday returns the day of the week for d.
func (d EpochDay) Weekday() time.Weekday {
	// 0001-01-01 was a Monday.
	return time.Weekday(((d % 7) + 7) % 7)
}

// Unix returns the number of days since 1970-01-01.
func (d EpochDay) Unix() int64 {
	return int64(d - unixOffset)
}

// ToEpochDay returns the EpochDay for the supplied date. It returns an
// error wrapping ErrInvalidDate if the date does not exist and
// ErrOutOfRange if its year is outside of MinYear..MaxYear.
func ToEpochDay(cd CalendarDate) (EpochDay, error) {
	if err := cd.Validate(); err != nil {
		return 0, err
	}
	return toEpochDay(cd.Year, int(cd.Month), cd.Day), nil
}

// toEpochDay assumes a valid date with year >= 1.
func toEpochDay(year, month, day int) EpochDay {
	y, m, d := int64(year), int64(month), int64(day)
	if m <= 2 {
		y--
	}
	era := y / 400
	yoe := y - era*400                     // [0, 399]
	mp := (m + 9) % 12                     // March is 0.
	doy := (153*mp+2)/5 + d - 1            // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return EpochDay(era*daysPerEra + doe - marchOffset)
}

// FromEpochDay returns the CalendarDate for the supplied EpochDay or an
// error wrapping ErrOutOfRange if it is outside of MinEpochDay..MaxEpochDay.
// FromEpochDay(ToEpochDay(cd)) == cd for all valid dates.
func FromEpochDay(d EpochDay) (CalendarDate, error) {
	if !d.Valid() {
		return CalendarDate{}, fmt.Errorf("epoch day %d: %w", d, ErrOutOfRange)
	}
	y, m, day := fromEpochDay(d)
	return CalendarDate{Year: y, Month: Month(m), Day: day}, nil
}

// fromEpochDay assumes d >= MinEpochDay.
func fromEpochDay(d EpochDay) (int, int, int) {
	z := int64(d) + marchOffset
	era := z / daysPerEra
	doe := z - era*daysPerEra                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(day)
}

// MustToEpochDay is like ToEpochDay but panics on error.
func MustToEpochDay(cd CalendarDate) EpochDay {
	d, err := ToEpochDay(cd)
	if err != nil {
		panic(err)
	}
	return d
}
