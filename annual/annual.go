// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package annual provides support for observances that recur on the same
// Ethiopian month and day every year, eg. Meskel on 17 Meskerem, and for
// determining when they occur in the Gregorian calendar.
//
// Observances can be specified in YAML as follows:
//
//	# observances.yaml
//	- name: Enkutatash
//	  on: 01-01
//	- name: Meskel
//	  on: 01-17
//
// An observance on Pagume 6 only occurs in Ethiopian leap years.
package annual

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/ethiocal/ethiopian"
	"gopkg.in/yaml.v3"
)

// MonthDay represents an Ethiopian month and day, without a year.
type MonthDay struct {
	Month int
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", md.Month, md.Day)
}

// Parse parses a month and day in the format MM-DD. Pagume 6 is
// accepted since it exists in leap years.
func (md *MonthDay) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid month and day %q, expected MM-DD: %w", val, ethiopian.ErrInvalidDate)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", parts[0], ethiopian.ErrInvalidDate)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", parts[1], ethiopian.ErrInvalidDate)
	}
	// Year 3 is a leap year and hence allows for Pagume 6.
	if err := ethiopian.NewDate(3, month, day).Validate(); err != nil {
		return fmt.Errorf("invalid month and day %q: %w", val, ethiopian.ErrInvalidDate)
	}
	md.Month, md.Day = month, day
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (md *MonthDay) UnmarshalYAML(node *yaml.Node) error {
	var val string
	if err := node.Decode(&val); err != nil {
		return err
	}
	if err := md.Parse(val); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (md MonthDay) MarshalYAML() (any, error) {
	return md.String(), nil
}

// In returns the date of md in the specified year and false if md does
// not occur in that year.
func (md MonthDay) In(year int) (ethiopian.Date, bool) {
	d := ethiopian.NewDate(year, md.Month, md.Day)
	return d, d.Validate() == nil
}
