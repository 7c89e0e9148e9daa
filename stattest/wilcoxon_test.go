// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"errors"
	"testing"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

func TestWilcoxonSignedRank(t *testing.T) {
	// Classic paired blood-pressure data. R's
	// wilcox.test(b, a, paired=TRUE, correct=TRUE) reports V with
	// p = 0.6353 under the normal approximation.
	a := []float64{125, 115, 130, 140, 140, 115, 140, 125, 140, 135}
	b := []float64{110, 122, 125, 120, 140, 124, 123, 137, 135, 145}

	r, err := WilcoxonSignedRank(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if r.W != 18 {
		t.Errorf("W = %v, want 18", r.W)
	}
	if r.NonZero != 9 {
		t.Errorf("NonZero = %d, want 9", r.NonZero)
	}
	if !near(r.P, 0.6353, 1e-3) {
		t.Errorf("P = %v, want 0.6353", r.P)
	}
}

func TestWilcoxonSignedRankOneSided(t *testing.T) {
	// All differences positive and distinct: W = 0.
	a := []float64{0, 0, 0, 0, 0, 0}
	b := []float64{1, 2, 3, 4, 5, 6}

	r, err := WilcoxonSignedRank(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if r.W != 0 {
		t.Errorf("W = %v, want 0", r.W)
	}
	// z = (0 − 10.5 + 0.5)/√22.75, p = 2Φ(z) ≈ 0.0360.
	if !near(r.P, 0.0360, 5e-4) {
		t.Errorf("P = %v, want 0.0360", r.P)
	}
}

func TestWilcoxonSignedRankDegenerate(t *testing.T) {
	// All pairs identical: no evidence of any shift.
	r, err := WilcoxonSignedRank([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if r.NonZero != 0 || r.P != 1 {
		t.Errorf("got NonZero=%d P=%v, want 0 and 1", r.NonZero, r.P)
	}

	var unequal *statmath.UnequalSampleSizeError
	_, err = WilcoxonSignedRank([]float64{1, 2}, []float64{1})
	if !errors.As(err, &unequal) {
		t.Errorf("got %v, want UnequalSampleSizeError", err)
	}
}
