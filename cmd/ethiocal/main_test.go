// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/ethiocal/ethiopian"
	"cloudeng.io/logging/ctxlog"
)

func TestToEthiopian(t *testing.T) {
	var logs bytes.Buffer
	ctx := ctxlog.NewJSONLogger(t.Context(), &logs, &slog.HandlerOptions{Level: slog.LevelDebug})
	var out bytes.Buffer
	if err := toEthiopian(ctx, &out, []string{"2023-09-11", "02/29/2024"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2023-09-11\t2015-13-06\n2024-02-29\t2016-06-21\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := strings.Count(logs.String(), `"msg":"converted"`), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	err := toEthiopian(ctx, &out, []string{"2023-02-30", "2023-09-12"})
	if !errors.Is(err, ethiopian.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, ethiopian.ErrInvalidDate)
	}
	if got, want := out.String(), "2023-09-12\t2016-01-01\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToGregorian(t *testing.T) {
	ctx := t.Context()
	var out bytes.Buffer
	if err := toGregorian(ctx, &out, []string{"2015-13-05", "01/01/2016"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2015-13-05\t2023-09-10 Sunday\n2016-01-01\t2023-09-12 Tuesday\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := toGregorian(ctx, &out, []string{"2014-13-06"}); !errors.Is(err, ethiopian.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, ethiopian.ErrInvalidDate)
	}
	if got := out.String(); len(got) != 0 {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLeap(t *testing.T) {
	var out bytes.Buffer
	if err := leap(t.Context(), &out, []string{"2015", "2016"}); err != nil {
		t.Fatal(err)
	}
	want := "2015\ttrue\tpagume has 6 days, new year on 2022-09-11\n" +
		"2016\tfalse\tpagume has 5 days, new year on 2023-09-12\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := leap(t.Context(), &out, []string{"x"}); !errors.Is(err, ethiopian.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, ethiopian.ErrInvalidDate)
	}
	if err := leap(t.Context(), &out, []string{"0"}); !errors.Is(err, ethiopian.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, ethiopian.ErrOutOfRange)
	}
}

func TestMonth(t *testing.T) {
	var out bytes.Buffer
	if err := month(t.Context(), &out, false, "2015", "13"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2015-13-01 - 2015-13-06\t2023-09-06 - 2023-09-11\t6 days\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := month(t.Context(), &out, true, "2016", "13"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 5; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := lines[4], "2016-13-05\t2024-09-10 Tuesday"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := month(t.Context(), &out, false, "2015", "14"); !errors.Is(err, ethiopian.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, ethiopian.ErrInvalidDate)
	}
}

func TestObservances(t *testing.T) {
	ctx := t.Context()
	var out bytes.Buffer
	fv := &observancesFlags{From: "2023-09-01", Count: 3}
	if err := observances(ctx, &out, fv, time.Now()); err != nil {
		t.Fatal(err)
	}
	want := "2016-01-01\t2023-09-12\tEnkutatash\n" +
		"2016-01-17\t2023-09-28\tMeskel\n" +
		"2016-05-11\t2024-01-20\tTimket\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	now := time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC)
	if err := observances(ctx, &out, &observancesFlags{Count: 3}, now); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	config := filepath.Join(t.TempDir(), "observances.yaml")
	if err := os.WriteFile(config, []byte("- name: Pagume Six\n  on: 13-06\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := observances(ctx, &out, &observancesFlags{Config: config, Year: 2015}, now); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2015-13-06\t2023-09-11\tPagume Six\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := observances(ctx, &out, &observancesFlags{Config: config, Year: 2016}, now); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); len(got) != 0 {
		t.Errorf("unexpected output: %q", got)
	}
}
