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

	"cloudeng.io/errors"
	"cloudeng.io/ethiocal/daycount"
	"cloudeng.io/ethiocal/ethiopian"
	"cloudeng.io/logging/ctxlog"
)

func toEthiopianCommand(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := withLogger(ctx, values.(*commonFlags).LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return toEthiopian(ctx, os.Stdout, args)
}

func toGregorianCommand(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := withLogger(ctx, values.(*commonFlags).LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return toGregorian(ctx, os.Stdout, args)
}

func leapCommand(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := withLogger(ctx, values.(*commonFlags).LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return leap(ctx, os.Stdout, args)
}

// toEthiopian converts every argument it can and returns an error for
// those it cannot.
func toEthiopian(ctx context.Context, out io.Writer, args []string) error {
	logger := ctxlog.Logger(ctx)
	var errs errors.M
	for _, arg := range args {
		cd, err := daycount.ParseCalendarDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		d, err := ethiopian.FromGregorian(cd)
		if err != nil {
			logger.Error("conversion failed", "gregorian", arg, "error", err)
			errs.Append(err)
			continue
		}
		logger.Debug("converted", "gregorian", cd.String(), "ethiopian", d.String())
		fmt.Fprintf(out, "%v\t%v\n", cd, d)
	}
	return errs.Err()
}

func toGregorian(ctx context.Context, out io.Writer, args []string) error {
	logger := ctxlog.Logger(ctx)
	var errs errors.M
	for _, arg := range args {
		d, err := ethiopian.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		cd, err := ethiopian.ToGregorian(d)
		if err != nil {
			logger.Error("conversion failed", "ethiopian", arg, "error", err)
			errs.Append(err)
			continue
		}
		logger.Debug("converted", "ethiopian", d.String(), "gregorian", cd.String())
		fmt.Fprintf(out, "%v\t%v %v\n", d, cd, daycount.MustToEpochDay(cd).Weekday())
	}
	return errs.Err()
}

func leap(ctx context.Context, out io.Writer, args []string) error {
	var errs errors.M
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year %q: %w", arg, ethiopian.ErrInvalidDate))
			continue
		}
		start, err := ethiopian.NewYear(year)
		if err != nil {
			errs.Append(err)
			continue
		}
		cd, _ := daycount.FromEpochDay(start)
		ctxlog.Logger(ctx).Debug("leap", "year", year, "new_year", cd.String())
		fmt.Fprintf(out, "%v\t%v\tpagume has %v days, new year on %v\n",
			year, ethiopian.IsLeapYear(year), ethiopian.DaysInMonth(year, ethiopian.Pagume), cd)
	}
	return errs.Err()
}
