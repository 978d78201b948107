// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

import (
	"fmt"
	"iter"
	"strings"

	"cloudeng.io/ethiocal/daycount"
)

// Range represents an inclusive range of Ethiopian dates. Ranges should be
// created using NewRange, MonthRange or YearRange, the zero value is an
// empty range.
type Range struct {
	from, to daycount.EpochDay
}

// NewRange returns the Range for the from/to dates. If the from date is
// later than the to date then they are swapped.
func NewRange(from, to Date) (Range, error) {
	f, err := ToEpochDay(from)
	if err != nil {
		return Range{}, err
	}
	t, err := ToEpochDay(to)
	if err != nil {
		return Range{}, err
	}
	if f > t {
		f, t = t, f
	}
	return Range{from: f, to: t}, nil
}

// MonthRange returns the Range spanning the given month, including
// the sixth day of Pagume in leap years.
func MonthRange(year, month int) (Range, error) {
	return NewRange(NewDate(year, month, 1), NewDate(year, month, DaysInMonth(year, month)))
}

// YearRange returns the Range spanning the given year.
func YearRange(year int) (Range, error) {
	return NewRange(NewDate(year, Meskerem, 1), NewDate(year, Pagume, DaysInMonth(year, Pagume)))
}

// Empty returns true for the zero Range.
func (r Range) Empty() bool {
	return r.from == 0
}

// From returns the first date in the range.
func (r Range) From() Date {
	d, _ := FromEpochDay(r.from)
	return d
}

// To returns the last date in the range.
func (r Range) To() Date {
	d, _ := FromEpochDay(r.to)
	return d
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return int(r.to-r.from) + 1
}

// Contains returns true if d is within the range.
func (r Range) Contains(d Date) bool {
	if r.Empty() {
		return false
	}
	day, err := ToEpochDay(d)
	if err != nil {
		return false
	}
	return day >= r.from && day <= r.to
}

func (r Range) String() string {
	if r.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%s - %s", r.From(), r.To())
}

// Days returns an iterator that yields each date in the range.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.Empty() {
			return
		}
		for day := r.from; day <= r.to; day++ {
			d, _ := FromEpochDay(day)
			if !yield(d) {
				return
			}
		}
	}
}

// Gregorian returns an iterator that yields each date in the range along
// with its Gregorian equivalent.
func (r Range) Gregorian() iter.Seq2[Date, daycount.CalendarDate] {
	return func(yield func(Date, daycount.CalendarDate) bool) {
		if r.Empty() {
			return
		}
		for day := r.from; day <= r.to; day++ {
			d, _ := FromEpochDay(day)
			cd, _ := daycount.FromEpochDay(day)
			if !yield(d, cd) {
				return
			}
		}
	}
}

// Parse parses a range in the format '<from>:<to>' where from and to
// are in any of the formats accepted by Date.Parse.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>': %w", val, ErrInvalidDate)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Compare(from) < 0 {
		return fmt.Errorf("from is later than to: %s %s: %w", from, to, ErrInvalidDate)
	}
	nr, err := NewRange(from, to)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}
