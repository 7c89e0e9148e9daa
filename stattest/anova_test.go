// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"errors"
	"testing"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

func TestOneWayANOVA(t *testing.T) {
	// Means 2, 3, 4 with MS_within = 1 gives F = 3, and
	// 1 − pf(3, 2, 6) = (1+1)^−3 = 0.125 exactly.
	r, err := OneWayANOVA([][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r.F, 3) {
		t.Errorf("F = %v, want 3", r.F)
	}
	if r.DFBetween != 2 || r.DFWithin != 6 {
		t.Errorf("df = %d,%d, want 2,6", r.DFBetween, r.DFWithin)
	}
	if !aeq(r.P, 0.125) {
		t.Errorf("P = %v, want 0.125", r.P)
	}
	if !aeq(r.MSWithin, 1) {
		t.Errorf("MSWithin = %v, want 1", r.MSWithin)
	}
}

func TestANOVAMatchesTTestOnTwoGroups(t *testing.T) {
	// With two equal-size, equal-variance groups, F = t² and the
	// p-values agree.
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{6, 7, 8, 9, 10}

	av, err := OneWayANOVA([][]float64{a, b})
	if err != nil {
		t.Fatal(err)
	}
	tt, err := TTest(a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(av.F, tt.T*tt.T) {
		t.Errorf("F = %v, want t² = %v", av.F, tt.T*tt.T)
	}
	if !near(av.P, tt.P, 1e-9) {
		t.Errorf("ANOVA P = %v, t-test P = %v", av.P, tt.P)
	}
}

func TestOneWayANOVAErrors(t *testing.T) {
	var insuff *statmath.InsufficientDataError

	_, err := OneWayANOVA([][]float64{{1, 2, 3}})
	if !errors.As(err, &insuff) {
		t.Errorf("one group: got %v, want InsufficientDataError", err)
	}

	// Single-observation groups leave no within-group df.
	_, err = OneWayANOVA([][]float64{{1}, {2}})
	if !errors.As(err, &insuff) {
		t.Errorf("no within df: got %v, want InsufficientDataError", err)
	}

	// But they are fine when another group supplies df.
	if _, err := OneWayANOVA([][]float64{{1}, {2, 3, 4}}); err != nil {
		t.Errorf("singleton group alongside a larger one: %v", err)
	}

	_, err = OneWayANOVA([][]float64{{1, 2}, {}})
	if !errors.As(err, &insuff) {
		t.Errorf("empty group: got %v, want InsufficientDataError", err)
	}
}

func TestKruskalWallis(t *testing.T) {
	// Non-overlapping groups, no ties: H = 7.2 and
	// p = exp(−3.6) for df = 2.
	r, err := KruskalWallis([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r.H, 7.2) {
		t.Errorf("H = %v, want 7.2", r.H)
	}
	if r.DF != 2 {
		t.Errorf("DF = %d, want 2", r.DF)
	}
	if !aeq(r.P, 0.02732372244729256) {
		t.Errorf("P = %v, want exp(-3.6)", r.P)
	}
}

func TestKruskalWallisTies(t *testing.T) {
	// Ties across groups inflate H via the correction factor; the
	// result must stay a valid p-value.
	r, err := KruskalWallis([][]float64{{1, 1, 2}, {2, 2, 3}, {3, 3, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if r.P < 0 || r.P > 1 {
		t.Errorf("P = %v out of range", r.P)
	}
	if r.H <= 0 {
		t.Errorf("H = %v, want > 0", r.H)
	}
}

func TestFriedman(t *testing.T) {
	// Four blocks, three treatments, no within-block ties:
	// rank sums 5, 8, 11 give Q = 4.5 and p = exp(−2.25).
	r, err := Friedman([][]float64{{1, 1, 2, 1}, {2, 3, 1, 2}, {3, 2, 3, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r.Q, 4.5) {
		t.Errorf("Q = %v, want 4.5", r.Q)
	}
	if r.DF != 2 || r.N != 4 {
		t.Errorf("DF,N = %d,%d, want 2,4", r.DF, r.N)
	}
	if !aeq(r.P, 0.10539922456186433) {
		t.Errorf("P = %v, want exp(-2.25)", r.P)
	}
}

func TestFriedmanErrors(t *testing.T) {
	var unequal *statmath.UnequalSampleSizeError
	_, err := Friedman([][]float64{
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6},
	})
	if !errors.As(err, &unequal) {
		t.Errorf("sizes 5,5,4: got %v, want UnequalSampleSizeError", err)
	}

	var insuff *statmath.InsufficientDataError
	_, err = Friedman([][]float64{{1}, {2}})
	if !errors.As(err, &insuff) {
		t.Errorf("single block: got %v, want InsufficientDataError", err)
	}
}
