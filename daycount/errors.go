// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when the fields of a date do not
	// describe a date that exists in its calendar, eg. 2023-02-30.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned for dates, or day counts, that fall outside
	// of the supported range of years.
	ErrOutOfRange = errors.New("date out of supported range")
)

// DateError records the calendar and the fields of a date that failed
// validation. It unwraps to either ErrInvalidDate or ErrOutOfRange.
type DateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
	Err      error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s %04d-%02d-%02d: %v", e.Calendar, e.Year, e.Month, e.Day, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// NewDateError returns a DateError for the specified calendar and fields.
func NewDateError(calendar string, year, month, day int, err error) error {
	return &DateError{Calendar: calendar, Year: year, Month: month, Day: day, Err: err}
}
