// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A UTestResult is the outcome of a Mann-Whitney U-test.
type UTestResult struct {
	U      float64 // smaller of the two U statistics
	P      float64 // two-sided p-value
	N1, N2 int
}

// MannWhitneyU performs the Mann-Whitney U-test on two independent
// samples, using midranks for ties. The p-value is exact for small
// samples without ties and a tie-corrected normal approximation
// otherwise.
func MannWhitneyU(a, b []float64) (*UTestResult, error) {
	if len(a) == 0 || len(b) == 0 {
		got := len(a)
		if len(b) < got {
			got = len(b)
		}
		return nil, &statmath.InsufficientDataError{Op: "Mann-Whitney U-test", What: "observations per group", Need: 1, Got: got}
	}
	r, err := stats.MannWhitneyUTest(a, b, stats.LocationDiffers)
	if err != nil {
		return nil, err
	}
	return &UTestResult{U: r.U, P: r.P, N1: len(a), N2: len(b)}, nil
}
