// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/ethiocal/annual"
	"cloudeng.io/ethiocal/daycount"
	"cloudeng.io/logging/ctxlog"
)

// defaultObservances are fixed to the Ethiopian calendar.
const defaultObservances = `
- name: Enkutatash
  on: 01-01
- name: Meskel
  on: 01-17
- name: Timket
  on: 05-11
- name: Adwa Victory Day
  on: 06-23
`

func observancesCommand(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*observancesFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return observances(ctx, os.Stdout, fv, time.Now())
}

func loadObservances(ctx context.Context, config string) (annual.Observances, error) {
	if len(config) == 0 {
		return annual.ParseConfig([]byte(defaultObservances))
	}
	ctxlog.Logger(ctx).Info("loading observances", "config", config)
	return annual.ParseConfigFile(config)
}

func observances(ctx context.Context, out io.Writer, fv *observancesFlags, now time.Time) error {
	obs, err := loadObservances(ctx, fv.Config)
	if err != nil {
		return err
	}
	var occ []annual.Occurrence
	if fv.Year != 0 {
		occ, err = obs.In(fv.Year)
	} else {
		from := daycount.FromTime(now)
		if len(fv.From) > 0 {
			if from, err = daycount.ParseCalendarDate(fv.From); err != nil {
				return err
			}
		}
		ctxlog.Logger(ctx).Debug("observances", "from", from.String(), "count", fv.Count)
		occ, err = obs.Next(from, fv.Count)
	}
	if err != nil {
		return err
	}
	for _, o := range occ {
		fmt.Fprintf(out, "%v\t%v\t%v\n", o.Date, o.Gregorian, o.Name)
	}
	return nil
}
