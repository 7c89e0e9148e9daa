// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repmeas

import (
	"errors"
	"math"
	"testing"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

func near(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}

func growthTable() *Table {
	return &Table{
		Labels: []string{"A", "B"},
		Times:  []float64{1, 2},
		Values: [][][]float64{
			{{1, 2}, {2, 3}},
			{{3, 5}, {4, 5}},
		},
	}
}

func TestANOVA(t *testing.T) {
	// Hand-worked decomposition: SS_group = 10.125 on (1,2) against
	// MS_subj = 0.625; SS_time = 3.125 and SS_inter = 0.125 on (1,2)
	// against MS_err = 0.125.
	r, err := ANOVA(growthTable())
	if err != nil {
		t.Fatal(err)
	}
	check := func(name string, e Effect, f float64, df1, df2 int, p float64) {
		t.Helper()
		if !near(e.F, f, 1e-9) {
			t.Errorf("%s F = %v, want %v", name, e.F, f)
		}
		if e.DF1 != df1 || e.DF2 != df2 {
			t.Errorf("%s df = %d,%d, want %d,%d", name, e.DF1, e.DF2, df1, df2)
		}
		if !near(e.P, p, 1e-4) {
			t.Errorf("%s P = %v, want %v", name, e.P, p)
		}
	}
	check("group", r.Group, 16.2, 1, 2, 0.056546)
	check("time", r.Time, 25, 1, 2, 0.037750)
	check("interaction", r.Interaction, 1, 1, 2, 0.422650)
}

func TestANOVAErrors(t *testing.T) {
	var insuff *statmath.InsufficientDataError

	one := growthTable()
	one.Labels = one.Labels[:1]
	one.Values = one.Values[:1]
	if _, err := ANOVA(one); !errors.As(err, &insuff) {
		t.Errorf("one group: got %v, want InsufficientDataError", err)
	}

	flat := growthTable()
	flat.Times = flat.Times[:1]
	if _, err := ANOVA(flat); !errors.As(err, &insuff) {
		t.Errorf("one timepoint: got %v, want InsufficientDataError", err)
	}

	var unequal *statmath.UnequalSampleSizeError
	ragged := growthTable()
	ragged.Values[1][0] = []float64{3}
	if _, err := ANOVA(ragged); !errors.As(err, &unequal) {
		t.Errorf("ragged subject: got %v, want UnequalSampleSizeError", err)
	}
}

func TestPostHocTwoGroups(t *testing.T) {
	// With two groups there is no gatekeeper: every timepoint is
	// compared.
	cs, err := PostHoc(growthTable(), Options{Correction: Bonferroni})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(cs))
	}
	for _, c := range cs {
		want := c.P * 2
		if want > 1 {
			want = 1
		}
		if !near(c.CorrectedP, want, 1e-12) {
			t.Errorf("t=%v: corrected %v, want raw×2 = %v", c.Time, c.CorrectedP, want)
		}
	}
	if cs[0].Time != 1 || cs[1].Time != 2 {
		t.Errorf("timepoints out of order: %v, %v", cs[0].Time, cs[1].Time)
	}
}

func gateTable() *Table {
	return &Table{
		Labels: []string{"ctl", "mid", "high"},
		Times:  []float64{0, 7},
		Values: [][][]float64{
			{{1, 1}, {2, 2}, {3, 3}},
			{{1.1, 11}, {2.1, 12}, {3.1, 13}},
			{{0.9, 21}, {1.9, 22}, {2.9, 23}},
		},
	}
}

func TestPostHocGatekeeper(t *testing.T) {
	// At t=0 the groups are indistinguishable, so the per-timepoint
	// ANOVA blocks all pairs there; at t=7 they are far apart.
	cs, err := PostHoc(gateTable(), Options{Correction: Holm})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 3 {
		t.Fatalf("got %d comparisons, want 3 (t=7 only)", len(cs))
	}
	for _, c := range cs {
		if c.Time != 7 {
			t.Errorf("comparison at gated timepoint %v", c.Time)
		}
	}
}

func TestPostHocVsControl(t *testing.T) {
	cs, err := PostHoc(gateTable(), Options{Correction: None, Scope: VsControl, Control: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(cs))
	}
	for _, c := range cs {
		if c.Index1 != 0 && c.Index2 != 0 {
			t.Errorf("comparison does not involve the control: %+v", c)
		}
		if c.CorrectedP != c.P {
			t.Errorf("no correction requested, but %v != %v", c.CorrectedP, c.P)
		}
	}
}

func TestPostHocBadControl(t *testing.T) {
	var invalid *statmath.InvalidParameterError
	_, err := PostHoc(gateTable(), Options{Scope: VsControl, Control: 5})
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want InvalidParameterError", err)
	}
}
