// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ethiocal converts dates between the Gregorian and Ethiopian
// calendars.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type commonFlags struct {
	cmdutil.LoggingFlags
}

type monthFlags struct {
	commonFlags
	Days bool `subcmd:"days,false,'print every day of the month rather than its first and last days'"`
}

type observancesFlags struct {
	commonFlags
	Config string `subcmd:"config,,'yaml file of observances, the built in list is used if not specified'"`
	From   string `subcmd:"from,,'gregorian date to start from, defaults to today'"`
	Count  int    `subcmd:"count,10,'number of occurrences to display'"`
	Year   int    `subcmd:"year,0,'display all occurrences in the specified ethiopian year rather than the next --count'"`
}

func init() {
	toEthiopianCmd := subcmd.NewCommand("to-ethiopian",
		subcmd.MustRegisterFlagStruct(&commonFlags{}, nil, nil),
		toEthiopianCommand, subcmd.AtLeastNArguments(1))
	toEthiopianCmd.Document(`convert gregorian dates to ethiopian dates.`,
		"<gregorian-date>...")

	toGregorianCmd := subcmd.NewCommand("to-gregorian",
		subcmd.MustRegisterFlagStruct(&commonFlags{}, nil, nil),
		toGregorianCommand, subcmd.AtLeastNArguments(1))
	toGregorianCmd.Document(`convert ethiopian dates to gregorian dates.`,
		"<ethiopian-date>...")

	monthCmd := subcmd.NewCommand("month",
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil),
		monthCommand, subcmd.ExactlyNumArguments(2))
	monthCmd.Document(`display the gregorian dates spanned by an ethiopian month.`,
		"<ethiopian-year> <ethiopian-month>")

	observancesCmd := subcmd.NewCommand("observances",
		subcmd.MustRegisterFlagStruct(&observancesFlags{}, nil, nil),
		observancesCommand, subcmd.WithoutArguments())
	observancesCmd.Document(`display upcoming occurrences of annual observances.`)

	leapCmd := subcmd.NewCommand("leap",
		subcmd.MustRegisterFlagStruct(&commonFlags{}, nil, nil),
		leapCommand, subcmd.AtLeastNArguments(1))
	leapCmd.Document(`report whether ethiopian years are leap years.`,
		"<ethiopian-year>...")

	cmdSet = subcmd.NewCommandSet(
		toEthiopianCmd,
		toGregorianCmd,
		monthCmd,
		observancesCmd,
		leapCmd)
	cmdSet.Document(`convert dates between the gregorian and ethiopian calendars.

Gregorian dates may be specified as 2006-01-02, 01/02/2006 or Jan-02-2006.
Ethiopian dates may be specified as YYYY-MM-DD or DD/MM/YYYY, with Pagume
being month 13.
`)
}

// withLogger returns a context carrying the logger configured by lf and
// a function to close that logger.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	cfg := lf.LoggingConfig()
	logger, err := cfg.NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}
