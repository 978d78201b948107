// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount_test

import (
	"time"

	"cloudeng.io/ethiocal/daycount"
)

func newCalendarDate(y, m, d int) daycount.CalendarDate {
	return daycount.NewCalendarDate(y, daycount.Month(m), d)
}

// unixDays uses the time package as an independent oracle.
func unixDays(cd daycount.CalendarDate) int64 {
	return cd.Time(time.UTC).Unix() / (24 * 60 * 60)
}
