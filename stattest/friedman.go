// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A FriedmanResult is the outcome of a Friedman test.
type FriedmanResult struct {
	Q  float64 // χ²-distributed Q statistic
	DF int     // k−1
	N  int     // number of matched blocks
	P  float64
}

// Friedman performs the Friedman test on k matched groups. Each group
// holds one value per block, so all groups must have the same length
// (at least 2). Values within a block are ranked with midranks and the
// statistic is tie-corrected. As with ANOVA, a call with exactly two
// groups is valid; preferring the Wilcoxon signed-rank test there is
// caller policy.
func Friedman(samples [][]float64) (*FriedmanResult, error) {
	const op = "Friedman test"
	k := len(samples)
	if k < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}
	n := len(samples[0])
	for _, s := range samples[1:] {
		if len(s) != n {
			return nil, &statmath.UnequalSampleSizeError{Op: op, N1: n, N2: len(s)}
		}
	}
	if n < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "blocks", Need: 2, Got: n}
	}

	// Rank within each block across the k groups.
	rankSums := make([]float64, k)
	block := make([]float64, k)
	var ties float64
	for b := 0; b < n; b++ {
		for g := 0; g < k; g++ {
			block[g] = samples[g][b]
		}
		ranks := statmath.Midranks(block)
		for g, r := range ranks {
			rankSums[g] += r
		}
		ties += statmath.TieCorrection(block)
	}

	nf, kf := float64(n), float64(k)
	var q float64
	for _, r := range rankSums {
		q += r * r
	}
	q = 12/(nf*kf*(kf+1))*q - 3*nf*(kf+1)

	// Tie correction. The denominator is zero only when every block
	// is constant across all groups.
	c := 1 - ties/(nf*kf*(kf*kf-1))
	if c == 0 {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "observations", Value: "all blocks constant"}
	}
	q /= c

	p := 1 - distuv.ChiSquared{K: float64(k - 1)}.CDF(q)
	return &FriedmanResult{Q: q, DF: k - 1, N: n, P: p}, nil
}
