// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repmeas

import (
	"github.com/fredrikwermeling/Visualize-sub000/posthoc"
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

// A Correction selects how the pooled set of pairwise p-values is
// adjusted for multiple comparisons.
type Correction int

const (
	Holm Correction = iota
	Bonferroni
	Sidak
	None
)

// A Scope selects which group pairs are compared at each timepoint.
type Scope int

const (
	AllPairs Scope = iota
	VsControl
)

// Options configures PostHoc.
type Options struct {
	Correction Correction
	Scope      Scope
	Control    int     // control group index, used with VsControl
	Alpha      float64 // gatekeeper level; 0 means 0.05
}

// A TimeComparison is one pairwise comparison at one timepoint.
type TimeComparison struct {
	Time           float64
	Index1, Index2 int
	Label1, Label2 string
	P              float64
	CorrectedP     float64
	Significant    bool
	SigLabel       string
}

// PostHoc runs the gatekeeping post-hoc over a growth table. For more
// than two groups, each timepoint first runs a one-way ANOVA across
// groups; pairwise Welch t-tests happen only at timepoints whose
// omnibus p-value passes the gate. With exactly two groups the gate is
// skipped and the pair is tested at every timepoint. The chosen
// correction is applied jointly across all pairwise p-values from all
// timepoints, so the family-wise error rate covers the whole time
// course.
func PostHoc(t *Table, opts Options) ([]TimeComparison, error) {
	const op = "growth post-hoc"
	if err := t.validate(op); err != nil {
		return nil, err
	}
	k := len(t.Values)
	if opts.Scope == VsControl && (opts.Control < 0 || opts.Control >= k) {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "control index", Value: opts.Control}
	}
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 0.05
	}

	var cs []TimeComparison
	for ti, tv := range t.Times {
		cols := t.column(ti)

		if k > 2 {
			gate, err := stattest.OneWayANOVA(cols)
			if err != nil {
				return nil, err
			}
			if gate.P >= alpha {
				continue
			}
		}

		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if opts.Scope == VsControl && i != opts.Control && j != opts.Control {
					continue
				}
				r, err := stattest.TTest(cols[i], cols[j], false)
				if err != nil {
					return nil, err
				}
				cs = append(cs, TimeComparison{
					Time:   tv,
					Index1: i, Index2: j,
					Label1: t.Labels[i], Label2: t.Labels[j],
					P: r.P,
				})
			}
		}
	}

	raw := make([]float64, len(cs))
	for i := range cs {
		raw[i] = cs[i].P
	}
	var adj []float64
	switch opts.Correction {
	case Holm:
		adj = posthoc.AdjustHolm(raw)
	case Bonferroni:
		adj = posthoc.AdjustBonferroni(raw)
	case Sidak:
		adj = posthoc.AdjustSidak(raw)
	case None:
		adj = raw
	default:
		return nil, &statmath.InvalidParameterError{Op: op, Param: "correction", Value: int(opts.Correction)}
	}
	for i := range cs {
		cs[i].CorrectedP = adj[i]
		cs[i].Significant = cs[i].CorrectedP < 0.05
		cs[i].SigLabel = statmath.SignificanceLabel(cs[i].CorrectedP)
	}
	return cs, nil
}
