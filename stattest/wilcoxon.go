// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A WilcoxonResult is the outcome of a Wilcoxon signed-rank test.
type WilcoxonResult struct {
	W       float64 // smaller of the positive and negative rank sums
	NonZero int     // number of non-zero differences used
	P       float64 // two-sided p-value
}

// WilcoxonSignedRank performs the Wilcoxon signed-rank test on paired
// samples of equal length. Zero differences are dropped and tied
// absolute differences receive midranks. The p-value uses the normal
// approximation with tie and continuity corrections, which is the
// standard treatment when ties or zeros are present.
func WilcoxonSignedRank(a, b []float64) (*WilcoxonResult, error) {
	if len(a) != len(b) {
		return nil, &statmath.UnequalSampleSizeError{Op: "Wilcoxon signed-rank test", N1: len(a), N2: len(b)}
	}
	if len(a) == 0 {
		return nil, &statmath.InsufficientDataError{Op: "Wilcoxon signed-rank test", What: "pairs", Need: 1, Got: 0}
	}

	var diffs, abs []float64
	for i := range a {
		if d := b[i] - a[i]; d != 0 {
			diffs = append(diffs, d)
			abs = append(abs, math.Abs(d))
		}
	}
	n := len(diffs)
	if n == 0 {
		// Every pair is identical; there is no evidence of a shift.
		return &WilcoxonResult{W: 0, NonZero: 0, P: 1}, nil
	}

	ranks := statmath.Midranks(abs)
	var wPlus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		}
	}
	wMinus := float64(n*(n+1))/2 - wPlus
	w := math.Min(wPlus, wMinus)

	mean := float64(n*(n+1)) / 4
	variance := float64(n*(n+1)*(2*n+1))/24 - statmath.TieCorrection(abs)/48
	if variance <= 0 {
		// All non-zero differences tie at a single magnitude and
		// cancel; the statistic carries no information.
		return &WilcoxonResult{W: w, NonZero: n, P: 1}, nil
	}

	// w <= mean by construction, so the continuity correction moves
	// toward the mean.
	z := (w - mean + 0.5) / math.Sqrt(variance)
	p := 2 * distuv.UnitNormal.CDF(z)
	if p > 1 {
		p = 1
	}
	return &WilcoxonResult{W: w, NonZero: n, P: p}, nil
}
