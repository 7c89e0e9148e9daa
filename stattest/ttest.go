// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stattest implements the hypothesis tests of the analysis
// engine: two-sample tests (Welch t, paired t, Mann-Whitney U,
// Wilcoxon signed-rank) and multi-sample omnibus tests (one-way ANOVA,
// Kruskal-Wallis, Friedman).
//
// Each test family has its own result type so callers can match on
// the family rather than probe a generic record for missing fields.
// All p-values are two-sided.
package stattest

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A TTestResult is the outcome of a t-test.
type TTestResult struct {
	T      float64 // t statistic
	DF     float64 // degrees of freedom (Welch-Satterthwaite for unpaired)
	P      float64 // two-sided p-value
	N1, N2 int
}

// TTest compares the locations of two samples. With paired=false it
// performs Welch's unequal-variance t-test; with paired=true it
// performs a paired t-test on the per-index differences, requiring
// equal-length inputs.
func TTest(a, b []float64, paired bool) (*TTestResult, error) {
	if paired {
		return pairedTTest(a, b)
	}
	if len(a) < 2 || len(b) < 2 {
		got := len(a)
		if len(b) < got {
			got = len(b)
		}
		return nil, &statmath.InsufficientDataError{Op: "Welch's t-test", What: "observations per group", Need: 2, Got: got}
	}
	r, err := stats.TwoSampleWelchTTest(
		stats.Sample{Xs: a}, stats.Sample{Xs: b}, stats.LocationDiffers)
	if err != nil {
		return nil, err
	}
	return &TTestResult{T: r.T, DF: r.DoF, P: r.P, N1: len(a), N2: len(b)}, nil
}

func pairedTTest(a, b []float64) (*TTestResult, error) {
	if len(a) != len(b) {
		return nil, &statmath.UnequalSampleSizeError{Op: "paired t-test", N1: len(a), N2: len(b)}
	}
	if len(a) < 2 {
		return nil, &statmath.InsufficientDataError{Op: "paired t-test", What: "pairs", Need: 2, Got: len(a)}
	}
	r, err := stats.PairedTTest(a, b, 0, stats.LocationDiffers)
	if err != nil {
		return nil, err
	}
	return &TTestResult{T: r.T, DF: r.DoF, P: r.P, N1: len(a), N2: len(b)}, nil
}
