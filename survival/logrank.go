// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survival

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A LogRankResult compares the full survival experience of two or
// more groups.
type LogRankResult struct {
	ChiSq float64
	DF    int // group count − 1
	P     float64
}

// LogRank performs the log-rank test across the given groups. At each
// pooled event time it accumulates observed and expected events per
// group, with expectations proportional to the at-risk counts; the
// statistic is Σ(O−E)²/E with groupCount−1 degrees of freedom and an
// exact χ² p-value.
func LogRank(groups map[string][]Subject) (*LogRankResult, error) {
	const op = "log-rank test"
	if len(groups) < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: len(groups)}
	}

	// Fix a group order so the accumulators line up.
	labels := make([]string, 0, len(groups))
	for label, subjects := range groups {
		if len(subjects) == 0 {
			return nil, &statmath.InsufficientDataError{Op: op, What: "subjects in a group", Need: 1, Got: 0}
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	k := len(labels)

	// Distinct event times pooled across groups.
	timeSet := make(map[float64]bool)
	for _, subjects := range groups {
		for _, s := range subjects {
			if s.Time < 0 {
				return nil, &statmath.InvalidParameterError{Op: op, Param: "time", Value: s.Time}
			}
			if s.Event {
				timeSet[s.Time] = true
			}
		}
	}
	if len(timeSet) == 0 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "events", Need: 1, Got: 0}
	}
	times := make([]float64, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Float64s(times)

	observed := make([]float64, k)
	expected := make([]float64, k)
	for _, t := range times {
		var totalRisk, totalEvents float64
		risk := make([]float64, k)
		events := make([]float64, k)
		for g, label := range labels {
			for _, s := range groups[label] {
				if s.Time >= t {
					risk[g]++
				}
				if s.Event && s.Time == t {
					events[g]++
				}
			}
			totalRisk += risk[g]
			totalEvents += events[g]
		}
		for g := range labels {
			observed[g] += events[g]
			expected[g] += totalEvents * risk[g] / totalRisk
		}
	}

	var chi float64
	for g := range labels {
		if expected[g] > 0 {
			d := observed[g] - expected[g]
			chi += d * d / expected[g]
		}
	}
	df := k - 1
	p := 1 - distuv.ChiSquared{K: float64(df)}.CDF(chi)
	return &LogRankResult{ChiSq: chi, DF: df, P: p}, nil
}
