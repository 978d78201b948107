// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annual

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/ethiocal/daycount"
	"cloudeng.io/ethiocal/ethiopian"
)

// Observance is a named event that recurs annually on the same Ethiopian
// month and day.
type Observance struct {
	Name string   `yaml:"name"`
	On   MonthDay `yaml:"on"`
}

// Observances represents a set of observances.
type Observances []Observance

// Occurrence represents a single occurrence of an Observance.
type Occurrence struct {
	Name      string
	Date      ethiopian.Date
	Gregorian daycount.CalendarDate
}

func (o Occurrence) String() string {
	return fmt.Sprintf("%v (%v): %v", o.Date, o.Gregorian, o.Name)
}

func compareOccurrences(a, b Occurrence) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// pending is an occurrence of o[obs] waiting to be returned by Next.
type pending struct {
	Occurrence
	day daycount.EpochDay
	obs int
}

// Less implements heap.Value.
func (p pending) Less(x pending) bool {
	if p.day == x.day {
		return p.Name < x.Name
	}
	return p.day < x.day
}

func newOccurrence(name string, d ethiopian.Date) (Occurrence, daycount.EpochDay, error) {
	day, err := ethiopian.ToEpochDay(d)
	if err != nil {
		return Occurrence{}, 0, err
	}
	cd, err := daycount.FromEpochDay(day)
	if err != nil {
		return Occurrence{}, 0, err
	}
	return Occurrence{Name: name, Date: d, Gregorian: cd}, day, nil
}

// ParseConfig parses a YAML list of observances. Every observance must
// have a unique, non-empty, name.
func ParseConfig(spec []byte) (Observances, error) {
	var obs Observances
	if err := cmdutil.ParseYAMLConfig(spec, &obs); err != nil {
		return nil, err
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs, nil
}

// ParseConfigFile is like ParseConfig but reads the YAML from a file.
func ParseConfigFile(file string) (Observances, error) {
	var obs Observances
	if err := cmdutil.ParseYAMLConfigFile(file, &obs); err != nil {
		return nil, err
	}
	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return obs, nil
}

// Validate returns an error for every observance that has an empty or
// duplicate name or an invalid month and day.
func (o Observances) Validate() error {
	var errs errors.M
	seen := map[string]bool{}
	for i, ob := range o {
		switch {
		case len(ob.Name) == 0:
			errs.Append(fmt.Errorf("observance %d: missing name", i))
		case seen[ob.Name]:
			errs.Append(fmt.Errorf("observance %d: duplicate name %q", i, ob.Name))
		}
		seen[ob.Name] = true
		if err := ethiopian.NewDate(3, ob.On.Month, ob.On.Day).Validate(); err != nil {
			errs.Append(fmt.Errorf("observance %d: %q: %v: %w", i, ob.Name, ob.On, ethiopian.ErrInvalidDate))
		}
	}
	return errs.Err()
}

// In returns the occurrences of the observances in the given Ethiopian
// year in chronological order.
func (o Observances) In(year int) ([]Occurrence, error) {
	if _, err := ethiopian.NewYear(year); err != nil {
		return nil, err
	}
	occ := make([]Occurrence, 0, len(o))
	for _, ob := range o {
		d, ok := ob.On.In(year)
		if !ok {
			continue
		}
		oc, _, err := newOccurrence(ob.Name, d)
		if err != nil {
			return nil, err
		}
		occ = append(occ, oc)
	}
	slices.SortFunc(occ, compareOccurrences)
	return occ, nil
}

// next returns the first occurrence of o[obs] on or after day, starting
// the search in the specified year.
func (o Observances) next(obs, year int, day daycount.EpochDay) (pending, bool) {
	for ; year <= ethiopian.MaxYear; year++ {
		d, ok := o[obs].On.In(year)
		if !ok {
			continue
		}
		oc, ocDay, err := newOccurrence(o[obs].Name, d)
		if err != nil {
			return pending{}, false
		}
		if ocDay >= day {
			return pending{Occurrence: oc, day: ocDay, obs: obs}, true
		}
	}
	return pending{}, false
}

// Next returns, in chronological order, the next n occurrences of the
// observances on or after the specified Gregorian date. Fewer than n
// occurrences are returned if ethiopian.MaxYear is reached.
func (o Observances) Next(from daycount.CalendarDate, n int) ([]Occurrence, error) {
	if n <= 0 {
		return nil, nil
	}
	start, err := ethiopian.FromGregorian(from)
	if err != nil {
		return nil, err
	}
	day, _ := daycount.ToEpochDay(from)
	h := make(heap.Heap[pending], 0, len(o))
	for i := range o {
		if p, ok := o.next(i, start.Year, day); ok {
			h.Push(p)
		}
	}
	occ := make([]Occurrence, 0, n)
	for len(occ) < n && h.Len() > 0 {
		p := h.Pop()
		occ = append(occ, p.Occurrence)
		if nx, ok := o.next(p.obs, p.Date.Year+1, p.day+1); ok {
			h.Push(nx)
		}
	}
	return occ, nil
}
