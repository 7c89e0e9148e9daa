// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Kmcurve estimates Kaplan-Meier survival curves from time-to-event
// data and compares groups with the log-rank test.
//
// Usage:
//
//	kmcurve [-times list] [input.csv]
//
// The input is a CSV file with a header row and three columns: time
// (non-negative number), event (1 for an observed event, 0 for a
// censored subject), and group (a label; may be empty when all
// subjects form one group). If no input is provided, kmcurve reads
// from stdin.
//
// For each group, kmcurve prints the survival curve as a step table
// with 95% Greenwood confidence bounds, followed by the median
// survival time if the curve reaches 0.5. With two or more groups it
// also runs the log-rank test.
//
// The -times option takes a comma-separated list of timepoints and
// adds a numbers-at-risk table evaluated at those times, the form
// printed under published survival plots.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fredrikwermeling/Visualize-sub000/cmd/internal/texttab"
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/survival"
)

var flagTimes = flag.String("times", "", "comma-separated `timepoints` for the numbers-at-risk table")

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: kmcurve [flags] [input.csv]

kmcurve reads time,event,group records from a CSV file (header row
required; event is 1 for observed, 0 for censored) and prints the
Kaplan-Meier survival curve per group, median survival, and the
log-rank test across groups. If no input is provided, it reads from
stdin.

`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("kmcurve: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	r := io.Reader(os.Stdin)
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	subjects, err := readSubjects(r)
	if err != nil {
		log.Fatal(err)
	}

	labels, groups := survival.SplitGroups(subjects)
	w := os.Stdout
	for i, label := range labels {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printCurve(w, label, groups[i]); err != nil {
			log.Fatal(err)
		}
	}

	byLabel := make(map[string][]survival.Subject, len(labels))
	for i, label := range labels {
		byLabel[label] = groups[i]
	}

	if *flagTimes != "" {
		times, err := parseTimes(*flagTimes)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(w)
		printAtRisk(w, labels, byLabel, times)
	}

	if len(labels) >= 2 {
		lr, err := survival.LogRank(byLabel)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(w, "\nlog-rank test: chi2=%.4f df=%d p=%s (%s)\n",
			lr.ChiSq, lr.DF, statmath.FormatPValue(lr.P), statmath.SignificanceLabel(lr.P))
	}
}

func readSubjects(r io.Reader) ([]survival.Subject, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("need at least time and event columns, got %d", len(header))
	}

	var subjects []survival.Subject
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: time: %v", line, err)
		}
		var event bool
		switch strings.TrimSpace(rec[1]) {
		case "1":
			event = true
		case "0":
			event = false
		default:
			return nil, fmt.Errorf("line %d: event must be 0 or 1, got %q", line, rec[1])
		}
		var group string
		if len(rec) > 2 {
			group = strings.TrimSpace(rec[2])
		}
		subjects = append(subjects, survival.Subject{Time: t, Event: event, Group: group})
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("no subjects in input")
	}
	return subjects, nil
}

func printCurve(w io.Writer, label string, subjects []survival.Subject) error {
	curve, err := survival.KaplanMeier(subjects)
	if err != nil {
		return err
	}

	if label != "" {
		fmt.Fprintf(w, "group %s (n=%d)\n", label, len(subjects))
	}
	var tab texttab.Table
	tab.Row().Cell("time", texttab.Right).Cell("at risk", texttab.Right).
		Cell("events", texttab.Right).Cell("censored", texttab.Right).
		Cell("survival", texttab.Right).Cell("95% CI")
	for _, s := range curve {
		tab.Row().Cell(fmt.Sprintf("%g", s.Time), texttab.Right).
			Cell(strconv.Itoa(s.AtRisk), texttab.Right).
			Cell(strconv.Itoa(s.Events), texttab.Right).
			Cell(strconv.Itoa(s.Censored), texttab.Right).
			Cell(fmt.Sprintf("%.4f", s.Survival), texttab.Right).
			Cell(fmt.Sprintf("[%.4f, %.4f]", s.Lo, s.Hi))
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	if m, ok := curve.Median(); ok {
		fmt.Fprintf(w, "median survival: %g\n", m)
	} else {
		fmt.Fprintln(w, "median survival: not reached")
	}
	return nil
}

func parseTimes(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	times := make([]float64, 0, len(parts))
	for _, p := range parts {
		t, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("-times: %v", err)
		}
		times = append(times, t)
	}
	return times, nil
}

func printAtRisk(w io.Writer, labels []string, groups map[string][]survival.Subject, times []float64) {
	table := survival.AtRiskTable(groups, times)

	var tab texttab.Table
	row := tab.Row().Cell("at risk")
	for _, t := range times {
		row.Cell(fmt.Sprintf("t=%g", t), texttab.Right)
	}
	for _, label := range labels {
		name := label
		if name == "" {
			name = "all"
		}
		row := tab.Row().Cell(name)
		for _, n := range table[label] {
			row.Cell(strconv.Itoa(n), texttab.Right)
		}
	}
	tab.Format(w)
}
