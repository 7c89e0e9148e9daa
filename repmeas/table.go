// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repmeas implements the repeated-measures engine: a two-way
// (Group × Time) mixed ANOVA with one within-subject factor, and a
// per-timepoint gatekeeping post-hoc procedure for growth-curve data.
package repmeas

import (
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A Table holds repeated measurements. Each group contributes a set
// of subjects, and each subject is measured once per timepoint, so
// every subject row must have exactly len(Times) values.
type Table struct {
	Labels []string      // group names, one per group
	Times  []float64     // timepoint values, shared by all subjects
	Values [][][]float64 // [group][subject][timepoint]
}

// validate checks the Table's shape for op.
func (t *Table) validate(op string) error {
	k := len(t.Values)
	if len(t.Labels) != k {
		return &statmath.InvalidParameterError{Op: op, Param: "labels", Value: len(t.Labels)}
	}
	if k < 2 {
		return &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}
	nt := len(t.Times)
	if nt < 2 {
		return &statmath.InsufficientDataError{Op: op, What: "timepoints", Need: 2, Got: nt}
	}
	for _, group := range t.Values {
		if len(group) == 0 {
			return &statmath.InsufficientDataError{Op: op, What: "subjects in a group", Need: 1, Got: 0}
		}
		for _, subject := range group {
			if len(subject) != nt {
				return &statmath.UnequalSampleSizeError{Op: op, N1: nt, N2: len(subject)}
			}
		}
	}
	return nil
}

// subjects returns the total subject count.
func (t *Table) subjects() int {
	n := 0
	for _, g := range t.Values {
		n += len(g)
	}
	return n
}

// column returns, for each group, the subjects' values at timepoint ti.
func (t *Table) column(ti int) [][]float64 {
	cols := make([][]float64, len(t.Values))
	for g, group := range t.Values {
		col := make([]float64, len(group))
		for s, subject := range group {
			col[s] = subject[ti]
		}
		cols[g] = col
	}
	return cols
}
