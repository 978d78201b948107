// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian_test

import (
	"cloudeng.io/ethiocal/daycount"
	"cloudeng.io/ethiocal/ethiopian"
)

func newCalendarDate(y, m, d int) daycount.CalendarDate {
	return daycount.NewCalendarDate(y, daycount.Month(m), d)
}

func newDate(y, m, d int) ethiopian.Date {
	return ethiopian.NewDate(y, m, d)
}
