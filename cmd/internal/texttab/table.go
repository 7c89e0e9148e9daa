// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab does layout of simple text-based tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Table collects rows of cells and formats them with aligned
// columns.
//
// Its methods return the Table so callers can chain them to build up
// many cells at once.
type Table struct {
	rows [][]cell
}

type cell struct {
	value string
	align Align
}

// An Align controls how a cell is padded within its column.
type Align int

const (
	Left Align = iota
	Center
	Right
)

func (a Align) pad(s string, w int) string {
	switch a {
	default:
		return s
	case Center:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case Right:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row. The default
// alignment is Left.
func (t *Table) Cell(value string, opts ...Align) *Table {
	a := Left
	if len(opts) > 0 {
		a = opts[0]
	}
	if len(t.rows) == 0 {
		t.Row()
	}
	i := len(t.rows) - 1
	t.rows[i] = append(t.rows[i], cell{value, a})
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and trailing spaces are trimmed from each line.
func (t *Table) Format(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for col, c := range row {
			for len(widths) <= col {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > widths[col] {
				widths[col] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, c := range row {
			if col > 0 {
				line.WriteString("  ")
			}
			s := c.align.pad(c.value, widths[col])
			if col < len(row)-1 {
				s = fmt.Sprintf("%-*s", widths[col], s)
			}
			line.WriteString(s)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
