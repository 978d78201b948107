// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cloudeng.io/ethiocal/daycount"
)

func TestParseCalendarDates(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		input string
		cd    daycount.CalendarDate
	}{
		{"2024-01-01", ncd(2024, 1, 1)},
		{"2024-2-29", ncd(2024, 2, 29)},
		{"0001-01-01", ncd(1, 1, 1)},
		{"01/02/2024", ncd(2024, 1, 2)},
		{"02/29/2024", ncd(2024, 2, 29)},
		{"Jan-01-2024", ncd(2024, 1, 1)},
		{"feb-29-2024", ncd(2024, 2, 29)},
		{"September-12-2015", ncd(2015, 9, 12)},
	} {
		cd, err := daycount.ParseCalendarDate(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if err := cd.Parse(cd.String()); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}

	for _, tc := range []struct {
		input string
		err   error
	}{
		{"", daycount.ErrInvalidDate},
		{"2023-02-29", daycount.ErrInvalidDate},
		{"2023-02-30", daycount.ErrInvalidDate},
		{"02/29/2023", daycount.ErrInvalidDate},
		{"Feb-29-2023", daycount.ErrInvalidDate},
		{"2023-13-01", daycount.ErrInvalidDate},
		{"2023-01", daycount.ErrInvalidDate},
		{"Ja-01-2023", daycount.ErrInvalidDate},
		{"2023-xx-01", daycount.ErrInvalidDate},
		{"10000-01-01", daycount.ErrOutOfRange},
		{"0000-01-01", daycount.ErrOutOfRange},
	} {
		cd := newCalendarDate(2000, 1, 1)
		err := cd.Parse(tc.input)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: got %v, want %v", tc.input, err, tc.err)
		}
		if got, want := cd, newCalendarDate(2000, 1, 1); got != want {
			t.Errorf("%v: modified on error: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		input string
		month daycount.Month
	}{
		{"1", 1}, {"01", 1}, {"12", 12}, {"jan", 1}, {"DEC", 12}, {"Sept", 9},
	} {
		var m daycount.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
	for _, input := range []string{"0", "13", "", "foo", "ju"} {
		var m daycount.Month
		if err := m.Parse(input); !errors.Is(err, daycount.ErrInvalidDate) {
			t.Errorf("%v: got %v, want %v", input, err, daycount.ErrInvalidDate)
		}
	}
	if got, want := daycount.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month daycount.Month
		days  int
	}{
		{2023, 1, 31}, {2023, 2, 28}, {2024, 2, 29}, {1900, 2, 28},
		{2000, 2, 29}, {2023, 4, 30}, {2023, 12, 31}, {2023, 0, 0}, {2023, 13, 0},
	} {
		if got, want := daycount.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestTime(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	when := time.Date(2024, 2, 29, 23, 30, 0, 0, loc)
	cd := daycount.FromTime(when)
	if got, want := cd, newCalendarDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Time(loc), time.Date(2024, 2, 29, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleFromEpochDay() {
	day, err := daycount.ToEpochDay(daycount.NewCalendarDate(2024, 2, 28))
	if err != nil {
		panic(err)
	}
	for i := range 3 {
		cd, _ := daycount.FromEpochDay(day.Add(i))
		fmt.Println(cd, day.Add(i).Weekday())
	}
	// Output:
	// 2024-02-28 Wednesday
	// 2024-02-29 Thursday
	// 2024-03-01 Friday
}
