// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repmeas

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// An Effect is one F-test from the repeated-measures decomposition.
type Effect struct {
	F        float64
	DF1, DF2 int
	P        float64
}

// An ANOVAResult holds the three effects of the Group × Time design.
type ANOVAResult struct {
	Group       Effect // between-subjects main effect
	Time        Effect // within-subjects main effect
	Interaction Effect // Group × Time
}

// ANOVA performs a two-way mixed ANOVA on t: Group as the
// between-subjects factor, Time as the within-subjects factor. The
// Group effect is tested against subjects-within-groups error and the
// Time and interaction effects against the within-subjects residual.
func ANOVA(t *Table) (*ANOVAResult, error) {
	const op = "repeated-measures ANOVA"
	if err := t.validate(op); err != nil {
		return nil, err
	}

	k := len(t.Values)
	nt := len(t.Times)
	n := t.subjects()
	if n-k < 1 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "subjects beyond groups", Need: k + 1, Got: n}
	}

	// Grand, group, time, cell, and subject means.
	var grand float64
	groupMeans := make([]float64, k)
	timeMeans := make([]float64, nt)
	cellMeans := make([][]float64, k)
	var subjMeans [][]float64
	for g, group := range t.Values {
		cellMeans[g] = make([]float64, nt)
		means := make([]float64, len(group))
		for s, subject := range group {
			for ti, v := range subject {
				grand += v
				groupMeans[g] += v
				timeMeans[ti] += v
				cellMeans[g][ti] += v
				means[s] += v
			}
			means[s] /= float64(nt)
		}
		subjMeans = append(subjMeans, means)
		for ti := range cellMeans[g] {
			cellMeans[g][ti] /= float64(len(group))
		}
		groupMeans[g] /= float64(len(group) * nt)
	}
	grand /= float64(n * nt)
	for ti := range timeMeans {
		timeMeans[ti] /= float64(n)
	}

	// Sums of squares.
	var ssTotal, ssSubjects, ssGroup, ssTime, ssInter float64
	for g, group := range t.Values {
		ng := float64(len(group))
		d := groupMeans[g] - grand
		ssGroup += float64(nt) * ng * d * d
		for ti := range t.Times {
			e := cellMeans[g][ti] - groupMeans[g] - timeMeans[ti] + grand
			ssInter += ng * e * e
		}
		for s, subject := range group {
			sd := subjMeans[g][s] - grand
			ssSubjects += float64(nt) * sd * sd
			for _, v := range subject {
				dv := v - grand
				ssTotal += dv * dv
			}
		}
	}
	for _, tm := range timeMeans {
		d := tm - grand
		ssTime += float64(n) * d * d
	}

	ssSubjWithin := ssSubjects - ssGroup
	ssWithin := ssTotal - ssSubjects
	ssErr := ssWithin - ssTime - ssInter

	dfGroup := k - 1
	dfSubjWithin := n - k
	dfTime := nt - 1
	dfInter := dfGroup * dfTime
	dfErr := dfSubjWithin * dfTime

	msSubjWithin := ssSubjWithin / float64(dfSubjWithin)
	msErr := ssErr / float64(dfErr)
	if msSubjWithin == 0 || msErr == 0 {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "error variance", Value: 0.0}
	}

	effect := func(ss float64, df1, df2 int, ms float64) Effect {
		f := (ss / float64(df1)) / ms
		p := 1 - distuv.F{D1: float64(df1), D2: float64(df2)}.CDF(f)
		return Effect{F: f, DF1: df1, DF2: df2, P: p}
	}
	return &ANOVAResult{
		Group:       effect(ssGroup, dfGroup, dfSubjWithin, msSubjWithin),
		Time:        effect(ssTime, dfTime, dfErr, msErr),
		Interaction: effect(ssInter, dfInter, dfErr, msErr),
	}, nil
}
