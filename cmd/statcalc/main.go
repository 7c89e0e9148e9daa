// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Statcalc runs significance tests on grouped measurements.
//
// Usage:
//
//	statcalc [-test name] [-posthoc name] [-control label] [input.csv]
//
// The input is a CSV file in wide format: the header row names the
// groups and each following row holds one measurement per group.
// Cells may be left empty when group sizes differ. If no input is
// provided, statcalc reads from stdin.
//
// The -test option selects the significance test: welch (two-sample
// Welch t-test, the default), paired (paired t-test), utest
// (Mann-Whitney U-test), wilcoxon (Wilcoxon signed-rank test), anova
// (one-way ANOVA), kruskal (Kruskal-Wallis test), or friedman
// (Friedman test). The two-sample tests require exactly two columns.
// The multi-sample tests accept two or more columns; with exactly two
// columns, anova falls back to the Welch t-test and friedman to the
// Wilcoxon signed-rank test, since the pairwise test is the
// conventional choice there.
//
// The -posthoc option adds pairwise comparisons after a multi-sample
// test: tukey (Tukey's HSD), bonferroni, holm (Holm-Bonferroni
// step-down), or dunnett (comparisons against the control group named
// by -control). After a Friedman test the comparisons are pairwise
// Wilcoxon signed-rank tests with Bonferroni correction regardless of
// the name given.
//
// Statcalc prints a summary table of the groups, the test result with
// a significance marker (*** p<0.001, ** p<0.01, * p<0.05, ns
// otherwise), and the post-hoc table if one was requested.
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
	"github.com/fredrikwermeling/Visualize-sub000/posthoc"
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

var (
	flagTest    = flag.String("test", "welch", "significance `test`: welch, paired, utest, wilcoxon, anova, kruskal, friedman")
	flagPostHoc = flag.String("posthoc", "none", "post-hoc `procedure`: none, tukey, bonferroni, holm, dunnett")
	flagControl = flag.String("control", "", "control group `label` for -posthoc dunnett")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: statcalc [flags] [input.csv]

statcalc reads grouped measurements from a wide-format CSV file (one
column per group, header row naming the groups) and runs the selected
significance test. If no input is provided, it reads from stdin.

`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("statcalc: ")
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

	labels, groups, err := readGroups(r)
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if err := printSummary(w, labels, groups); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(w)

	if err := runTest(w, labels, groups); err != nil {
		log.Fatal(err)
	}
}

// readGroups parses wide-format CSV: a header row of group labels and
// one measurement per group per data row. Empty cells are skipped, so
// groups may have different sizes.
func readGroups(r io.Reader) ([]string, [][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
	}

	groups := make([][]float64, len(labels))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(rec) > len(labels) {
			return nil, nil, fmt.Errorf("row has %d cells, header has %d", len(rec), len(labels))
		}
		for i, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %v", labels[i], err)
			}
			groups[i] = append(groups[i], v)
		}
	}
	for i, g := range groups {
		if len(g) == 0 {
			return nil, nil, fmt.Errorf("column %q has no values", labels[i])
		}
	}
	return labels, groups, nil
}

func printSummary(w io.Writer, labels []string, groups [][]float64) error {
	var tab texttab.Table
	tab.Row().Cell("group").Cell("n", texttab.Right).Cell("mean", texttab.Right).
		Cell("sd", texttab.Right).Cell("sem", texttab.Right).Cell("median", texttab.Right)
	for i, g := range groups {
		s := statmath.Sample{Values: g}
		tab.Row().Cell(labels[i]).
			Cell(strconv.Itoa(s.N()), texttab.Right).
			Cell(fmt.Sprintf("%.4g", s.Mean()), texttab.Right).
			Cell(fmt.Sprintf("%.4g", s.StdDev()), texttab.Right).
			Cell(fmt.Sprintf("%.4g", s.StdErr()), texttab.Right).
			Cell(fmt.Sprintf("%.4g", s.Median()), texttab.Right)
	}
	return tab.Format(w)
}

func runTest(w io.Writer, labels []string, groups [][]float64) error {
	k := len(groups)
	need2 := func(name string) error {
		if k != 2 {
			return fmt.Errorf("%s needs exactly 2 groups, input has %d", name, k)
		}
		return nil
	}
	reportP := func(name, stat string, p float64) {
		fmt.Fprintf(w, "%s: %s p=%s (%s)\n", name, stat, statmath.FormatPValue(p), statmath.SignificanceLabel(p))
	}

	test := *flagTest
	// The pairwise test is the conventional choice for two groups.
	if k == 2 {
		switch test {
		case "anova":
			fmt.Fprintln(w, "2 groups: using Welch t-test instead of ANOVA")
			test = "welch"
		case "friedman":
			fmt.Fprintln(w, "2 groups: using Wilcoxon signed-rank test instead of Friedman")
			test = "wilcoxon"
		}
	}

	switch test {
	case "welch", "paired":
		if err := need2(test + " t-test"); err != nil {
			return err
		}
		r, err := stattest.TTest(groups[0], groups[1], test == "paired")
		if err != nil {
			return err
		}
		name := "Welch t-test"
		if test == "paired" {
			name = "paired t-test"
		}
		reportP(name, fmt.Sprintf("t=%.4f df=%.2f", r.T, r.DF), r.P)

	case "utest":
		if err := need2("Mann-Whitney U-test"); err != nil {
			return err
		}
		r, err := stattest.MannWhitneyU(groups[0], groups[1])
		if err != nil {
			return err
		}
		reportP("Mann-Whitney U-test", fmt.Sprintf("U=%g n=%d+%d", r.U, r.N1, r.N2), r.P)

	case "wilcoxon":
		if err := need2("Wilcoxon signed-rank test"); err != nil {
			return err
		}
		r, err := stattest.WilcoxonSignedRank(groups[0], groups[1])
		if err != nil {
			return err
		}
		reportP("Wilcoxon signed-rank test", fmt.Sprintf("W=%g n=%d", r.W, r.NonZero), r.P)

	case "anova":
		r, err := stattest.OneWayANOVA(groups)
		if err != nil {
			return err
		}
		reportP("one-way ANOVA", fmt.Sprintf("F=%.4f df=%d,%d", r.F, r.DFBetween, r.DFWithin), r.P)
		return runPostHoc(w, labels, groups, false)

	case "kruskal":
		r, err := stattest.KruskalWallis(groups)
		if err != nil {
			return err
		}
		reportP("Kruskal-Wallis test", fmt.Sprintf("H=%.4f df=%d", r.H, r.DF), r.P)
		return runPostHoc(w, labels, groups, false)

	case "friedman":
		r, err := stattest.Friedman(groups)
		if err != nil {
			return err
		}
		reportP("Friedman test", fmt.Sprintf("Q=%.4f df=%d n=%d", r.Q, r.DF, r.N), r.P)
		return runPostHoc(w, labels, groups, true)

	default:
		return fmt.Errorf("unknown test %q", *flagTest)
	}

	if *flagPostHoc != "none" {
		return fmt.Errorf("-posthoc requires a multi-sample test")
	}
	return nil
}

func runPostHoc(w io.Writer, labels []string, groups [][]float64, friedman bool) error {
	var (
		cs  []posthoc.Comparison
		err error
	)
	switch {
	case *flagPostHoc == "none":
		return nil
	case friedman:
		cs, err = posthoc.FriedmanPairwise(groups, labels)
	default:
		switch *flagPostHoc {
		case "tukey":
			cs, err = posthoc.TukeyHSD(groups, labels)
		case "bonferroni":
			cs, err = posthoc.Bonferroni(groups, labels)
		case "holm":
			cs, err = posthoc.HolmBonferroni(groups, labels)
		case "dunnett":
			control := -1
			for i, l := range labels {
				if l == *flagControl {
					control = i
				}
			}
			if control < 0 {
				return fmt.Errorf("-posthoc dunnett: no group labeled %q", *flagControl)
			}
			cs, err = posthoc.Dunnett(groups, labels, control)
		default:
			return fmt.Errorf("unknown post-hoc procedure %q", *flagPostHoc)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	var tab texttab.Table
	tab.Row().Cell("comparison").Cell("p", texttab.Right).Cell("adj p", texttab.Right).Cell("sig")
	for _, c := range cs {
		tab.Row().Cell(c.Label1+" vs "+c.Label2).
			Cell(statmath.FormatPValue(c.P), texttab.Right).
			Cell(statmath.FormatPValue(c.CorrectedP), texttab.Right).
			Cell(c.SigLabel)
	}
	return tab.Format(w)
}
