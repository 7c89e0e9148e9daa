// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A KruskalResult is the outcome of a Kruskal-Wallis test.
type KruskalResult struct {
	H  float64 // tie-corrected H statistic
	DF int     // k−1
	P  float64
}

// KruskalWallis performs the Kruskal-Wallis rank test across two or
// more groups, applying the standard tie-correction factor to H.
func KruskalWallis(samples [][]float64) (*KruskalResult, error) {
	const op = "Kruskal-Wallis test"
	k := len(samples)
	if k < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}

	n := 0
	for _, s := range samples {
		if len(s) == 0 {
			return nil, &statmath.InsufficientDataError{Op: op, What: "observations in a group", Need: 1, Got: 0}
		}
		n += len(s)
	}
	if n < 3 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "observations", Need: 3, Got: n}
	}

	pooled := make([]float64, 0, n)
	for _, s := range samples {
		pooled = append(pooled, s...)
	}
	ranks := statmath.Midranks(pooled)

	nf := float64(n)
	h := -3 * (nf + 1)
	off := 0
	for _, s := range samples {
		var rsum float64
		for i := range s {
			rsum += ranks[off+i]
		}
		off += len(s)
		h += 12 / (nf * (nf + 1)) * rsum * rsum / float64(len(s))
	}

	// Tie correction. C is zero only when every observation is
	// identical, in which case ranks carry no information.
	c := 1 - statmath.TieCorrection(pooled)/(nf*nf*nf-nf)
	if c == 0 {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "observations", Value: "all values identical"}
	}
	h /= c

	p := 1 - distuv.ChiSquared{K: float64(k - 1)}.CDF(h)
	return &KruskalResult{H: h, DF: k - 1, P: p}, nil
}
