// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package posthoc implements multiple-comparison procedures run after
// a significant omnibus test: Tukey's HSD, Bonferroni and
// Holm-Bonferroni corrected pairwise t-tests, Dunnett's
// treatment-vs-control procedure, and Bonferroni-corrected pairwise
// Wilcoxon tests for Friedman designs.
//
// Whether to run a procedure at all (conventionally only when the
// omnibus p-value is below 0.05) is the caller's gatekeeping
// decision; the procedures themselves compute corrections
// unconditionally.
package posthoc

import (
	"math"
	"sort"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

// alpha is the significance threshold for the Significant flag on a
// corrected comparison.
const alpha = 0.05

// A Comparison is one pairwise comparison from a post-hoc batch.
type Comparison struct {
	Index1, Index2 int    // group indexes in the input order
	Label1, Label2 string // group labels
	P              float64
	CorrectedP     float64
	Significant    bool // CorrectedP < 0.05
	SigLabel       string
}

// finish fills the derived fields of c from its CorrectedP.
func (c *Comparison) finish() {
	if c.CorrectedP > 1 {
		c.CorrectedP = 1
	}
	c.Significant = c.CorrectedP < alpha
	c.SigLabel = statmath.SignificanceLabel(c.CorrectedP)
}

func checkLabels(op string, samples [][]float64, labels []string) error {
	if len(labels) != len(samples) {
		return &statmath.InvalidParameterError{Op: op, Param: "labels", Value: len(labels)}
	}
	return nil
}

// rawPairwise runs unpaired Welch t-tests on every unordered pair, in
// input index order.
func rawPairwise(op string, samples [][]float64, labels []string) ([]Comparison, error) {
	k := len(samples)
	if k < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}
	if err := checkLabels(op, samples, labels); err != nil {
		return nil, err
	}
	var cs []Comparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r, err := stattest.TTest(samples[i], samples[j], false)
			if err != nil {
				return nil, err
			}
			cs = append(cs, Comparison{
				Index1: i, Index2: j,
				Label1: labels[i], Label2: labels[j],
				P: r.P,
			})
		}
	}
	return cs, nil
}

// AdjustBonferroni returns the ps multiplied by their count, capped at 1.
func AdjustBonferroni(ps []float64) []float64 {
	m := float64(len(ps))
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = capP(p * m)
	}
	return out
}

// AdjustHolm applies the Holm-Bonferroni step-down correction:
// ascending raw p-values are multiplied by the number of remaining
// comparisons, with enforced monotonicity. Holm-corrected values are
// never larger than the Bonferroni-corrected ones.
func AdjustHolm(ps []float64) []float64 {
	m := len(ps)
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ps[order[a]] < ps[order[b]] })

	out := make([]float64, m)
	running := 0.0
	for rank, idx := range order {
		p := ps[idx] * float64(m-rank)
		if p < running {
			p = running
		}
		running = p
		out[idx] = capP(p)
	}
	return out
}

// AdjustSidak applies the Šidák correction 1−(1−p)^m.
func AdjustSidak(ps []float64) []float64 {
	m := float64(len(ps))
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = capP(1 - math.Pow(1-p, m))
	}
	return out
}

func capP(p float64) float64 {
	if p > 1 {
		return 1
	}
	return p
}
