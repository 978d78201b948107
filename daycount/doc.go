// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycount provides a bijection between proleptic Gregorian calendar
// dates and a linear count of days, the EpochDay. Other calendars, such as
// cloudeng.io/ethiocal/ethiopian, convert to and from Gregorian dates by
// projecting onto the same EpochDay axis.
//
// The epoch is Rata Die: 0001-01-01 (Gregorian) is day 1, 0001-01-02 is
// day 2 and 0000-12-31 would be day 0. Only years MinYear..MaxYear are
// supported.
//
//	day, err := daycount.ToEpochDay(daycount.NewCalendarDate(2024, 2, 29))
//	...
//	cd, err := daycount.FromEpochDay(day + 1) // 2024-03-01
//
// All functions are pure and safe for concurrent use.
package daycount
