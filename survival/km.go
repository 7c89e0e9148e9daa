// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survival implements Kaplan-Meier survival estimation with
// Greenwood confidence intervals, median-survival lookup, at-risk
// tables, and the log-rank test across groups.
package survival

import (
	"math"
	"sort"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A Subject is one observation in a survival analysis. Event reports
// whether the outcome occurred at Time; a false Event means the
// subject was censored (lost to follow-up) at Time.
type Subject struct {
	Time  float64
	Event bool
	Group string
}

// A Step is one point of a Kaplan-Meier curve: the state of the
// estimator at a distinct observation time. AtRisk counts subjects
// still under observation just before Time.
type Step struct {
	Time     float64
	Survival float64
	AtRisk   int
	Events   int
	Censored int
	Lo, Hi   float64 // 95% Greenwood confidence interval
}

// A Curve is a Kaplan-Meier survival curve: steps in increasing time
// order, beginning with a survival-1 anchor at time 0. Survival is
// non-increasing across steps.
type Curve []Step

// z95 is the two-sided 95% normal quantile used for Greenwood
// intervals.
const z95 = 1.959963984540054

// KaplanMeier estimates the survival curve for one group of subjects.
// Censoring-only times produce a step with unchanged survival (so the
// caller can draw censor marks) and do not contribute to the Greenwood
// variance.
func KaplanMeier(subjects []Subject) (Curve, error) {
	const op = "Kaplan-Meier estimate"
	if len(subjects) == 0 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "subjects", Need: 1, Got: 0}
	}
	for _, s := range subjects {
		if s.Time < 0 || math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return nil, &statmath.InvalidParameterError{Op: op, Param: "time", Value: s.Time}
		}
	}

	sorted := append([]Subject(nil), subjects...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	n := len(sorted)
	curve := Curve{{Time: 0, Survival: 1, AtRisk: n, Lo: 1, Hi: 1}}

	surv := 1.0
	var greenwood float64
	atRisk := n
	for i := 0; i < n; {
		t := sorted[i].Time
		events, censored := 0, 0
		for ; i < n && sorted[i].Time == t; i++ {
			if sorted[i].Event {
				events++
			} else {
				censored++
			}
		}

		if events > 0 {
			d, r := float64(events), float64(atRisk)
			surv *= 1 - d/r
			if atRisk > events {
				greenwood += d / (r * (r - d))
			}
		}
		se := surv * math.Sqrt(greenwood)
		curve = append(curve, Step{
			Time:     t,
			Survival: surv,
			AtRisk:   atRisk,
			Events:   events,
			Censored: censored,
			Lo:       clampUnit(surv - z95*se),
			Hi:       clampUnit(surv + z95*se),
		})
		atRisk -= events + censored
	}
	return curve, nil
}

// Median returns the first time at which survival drops to 0.5 or
// below. The second result is false when the curve never reaches 0.5
// (a right-censored tail).
func (c Curve) Median() (float64, bool) {
	for _, s := range c {
		if s.Survival <= 0.5 {
			return s.Time, true
		}
	}
	return 0, false
}

// SplitGroups partitions subjects by group label, preserving the order
// in which labels first appear.
func SplitGroups(subjects []Subject) (labels []string, groups [][]Subject) {
	index := make(map[string]int)
	for _, s := range subjects {
		i, ok := index[s.Group]
		if !ok {
			i = len(labels)
			index[s.Group] = i
			labels = append(labels, s.Group)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return labels, groups
}

// AtRiskTable returns, for each group and each requested timepoint,
// the number of subjects still at risk (time ≥ t). The counts are
// keyed by group label, aligned with times.
func AtRiskTable(groups map[string][]Subject, times []float64) map[string][]int {
	table := make(map[string][]int, len(groups))
	for label, subjects := range groups {
		counts := make([]int, len(times))
		for i, t := range times {
			for _, s := range subjects {
				if s.Time >= t {
					counts[i]++
				}
			}
		}
		table[label] = counts
	}
	return table
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
