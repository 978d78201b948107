// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

import (
	"fmt"
	"strconv"
	"strings"
)

const expectedDateFormats = "YYYY-MM-DD or DD/MM/YYYY"

func parseField(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, val, ErrInvalidDate)
	}
	return n, nil
}

// Parse parses an Ethiopian date in the formats YYYY-MM-DD or DD/MM/YYYY,
// the latter being the customary written order. Pagume is month 13.
// The parsed date must be valid as per Validate.
func (d *Date) Parse(val string) error {
	var fields [3]string
	switch parts := strings.Split(val, "/"); {
	case len(parts) == 3:
		fields = [3]string{parts[2], parts[1], parts[0]}
	default:
		parts = strings.Split(val, "-")
		if len(parts) != 3 {
			return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrInvalidDate)
		}
		fields = [3]string{parts[0], parts[1], parts[2]}
	}
	var nd Date
	var err error
	if nd.Year, err = parseField("year", fields[0]); err != nil {
		return err
	}
	if nd.Month, err = parseField("month", fields[1]); err != nil {
		return err
	}
	if nd.Day, err = parseField("day", fields[2]); err != nil {
		return err
	}
	if err := nd.Validate(); err != nil {
		return err
	}
	*d = nd
	return nil
}

// ParseDate is a convenience function that calls Date.Parse.
func ParseDate(val string) (Date, error) {
	var d Date
	err := d.Parse(val)
	return d, err
}

// DateList is a list of Ethiopian dates.
type DateList []Date

// Parse parses a comma separated list of dates.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(DateList, 0, len(parts))
	for _, part := range parts {
		var d Date
		if err := d.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		l = append(l, d)
	}
	*dl = l
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}
