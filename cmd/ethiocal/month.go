// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/ethiocal/daycount"
	"cloudeng.io/ethiocal/ethiopian"
	"cloudeng.io/logging/ctxlog"
)

func monthCommand(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return month(ctx, os.Stdout, fv.Days, args[0], args[1])
}

func month(ctx context.Context, out io.Writer, days bool, yearArg, monthArg string) error {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", yearArg, ethiopian.ErrInvalidDate)
	}
	mon, err := strconv.Atoi(monthArg)
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", monthArg, ethiopian.ErrInvalidDate)
	}
	r, err := ethiopian.MonthRange(year, mon)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("month", "year", year, "month", mon, "range", r.String(), "days", r.Len())
	if !days {
		from, _ := ethiopian.ToGregorian(r.From())
		to, _ := ethiopian.ToGregorian(r.To())
		fmt.Fprintf(out, "%v - %v\t%v - %v\t%v days\n", r.From(), r.To(), from, to, r.Len())
		return nil
	}
	for d, cd := range r.Gregorian() {
		fmt.Fprintf(out, "%v\t%v %v\n", d, cd, daycount.MustToEpochDay(cd).Weekday())
	}
	return nil
}
