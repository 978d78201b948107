// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/ethiocal/daycount"
)

// FromGregorianList converts each of the supplied Gregorian dates. Dates
// that cannot be converted are left as the zero Date in the returned slice
// and are reported, with their index, in the returned errors.M.
func FromGregorianList(dates []daycount.CalendarDate) ([]Date, error) {
	out := make([]Date, len(dates))
	var errs errors.M
	for i, cd := range dates {
		d, err := FromGregorian(cd)
		if err != nil {
			errs.Append(fmt.Errorf("%d: %w", i, err))
			continue
		}
		out[i] = d
	}
	return out, errs.Err()
}

// ToGregorianList is the inverse of FromGregorianList.
func ToGregorianList(dates []Date) ([]daycount.CalendarDate, error) {
	out := make([]daycount.CalendarDate, len(dates))
	var errs errors.M
	for i, d := range dates {
		cd, err := ToGregorian(d)
		if err != nil {
			errs.Append(fmt.Errorf("%d: %w", i, err))
			continue
		}
		out[i] = cd
	}
	return out, errs.Err()
}
