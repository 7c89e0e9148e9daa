// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "fmt"

// InsufficientDataError reports that an operation was invoked with too
// few observations, groups, or timepoints to produce a meaningful
// result.
type InsufficientDataError struct {
	Op   string // operation that failed, e.g. "one-way ANOVA"
	What string // what was counted, e.g. "groups"
	Need int    // minimum count required
	Got  int    // count actually supplied
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d %s, got %d", e.Op, e.Need, e.What, e.Got)
}

// UnequalSampleSizeError reports paired or blocked input whose sizes
// don't satisfy the test's balance requirement.
type UnequalSampleSizeError struct {
	Op     string
	N1, N2 int
}

func (e *UnequalSampleSizeError) Error() string {
	return fmt.Sprintf("%s: sample sizes must match, got %d and %d", e.Op, e.N1, e.N2)
}

// InvalidParameterError reports a parameter outside its valid range,
// such as an out-of-range control group index.
type InvalidParameterError struct {
	Op    string
	Param string
	Value any
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v", e.Op, e.Param, e.Value)
}
