// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// An ANOVAResult is the outcome of a one-way analysis of variance.
type ANOVAResult struct {
	F         float64
	DFBetween int
	DFWithin  int
	P         float64

	// MSWithin and the per-group means are retained because the
	// post-hoc procedures reuse the same error term.
	MSWithin float64
	Means    []float64
	Sizes    []int
}

// OneWayANOVA performs a one-way ANOVA across two or more groups.
// Single-observation groups are allowed as long as the total
// within-group degrees of freedom stay positive. A call with exactly
// two groups is valid (F equals the square of the pooled t statistic);
// falling back to a t-test in that case is a caller policy, not a
// property of this function.
func OneWayANOVA(samples [][]float64) (*ANOVAResult, error) {
	const op = "one-way ANOVA"
	k := len(samples)
	if k < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}

	n := 0
	means := make([]float64, k)
	sizes := make([]int, k)
	var grand float64
	for i, s := range samples {
		if len(s) == 0 {
			return nil, &statmath.InsufficientDataError{Op: op, What: "observations in a group", Need: 1, Got: 0}
		}
		means[i] = stat.Mean(s, nil)
		sizes[i] = len(s)
		n += len(s)
		for _, v := range s {
			grand += v
		}
	}
	grand /= float64(n)

	dfBetween := k - 1
	dfWithin := n - k
	if dfWithin < 1 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "within-group degrees of freedom", Need: 1, Got: dfWithin}
	}

	var ssBetween, ssWithin float64
	for i, s := range samples {
		d := means[i] - grand
		ssBetween += float64(len(s)) * d * d
		for _, v := range s {
			e := v - means[i]
			ssWithin += e * e
		}
	}

	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "within-group variance", Value: 0.0}
	}
	f := (ssBetween / float64(dfBetween)) / msWithin
	p := 1 - distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}.CDF(f)

	return &ANOVAResult{
		F:         f,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		P:         p,
		MSWithin:  msWithin,
		Means:     means,
		Sizes:     sizes,
	}, nil
}
