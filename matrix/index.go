// SPDX-License-Identifier: MIT

// Package matrix - Index storage for agent identifiers.
//
// Index is the integer twin of Dense: a row-major r×c buffer of ints used for
// preference orders, rank tables and slot-wise match tables. Values are agent
// indices, so accessors never perform arithmetic on them beyond Shift.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxIndexAt   = "At"
	ctxIndexSet  = "Set"
	ctxIndexFrom = "NewIndexFrom"
)

func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Index.%s(%d,%d): %w", method, row, col, err)
}

// Index is a row-major matrix of int values.
type Index struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Index)(nil)

// NewIndex creates an r×c zero Index.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
func NewIndex(rows, cols int) (*Index, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Index{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewIndexFrom copies a rectangular [][]int literal.
// Errors: ErrInvalidDimensions on empty input, ErrRagged on uneven rows.
func NewIndexFrom(rows [][]int) (*Index, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m := &Index{r: len(rows), c: cols, data: make([]int, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, indexErrorf(ctxIndexFrom, i, len(row), ErrRagged)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIndexFromVector builds an n×1 column Index from v.
// This is the shape the stability verifier expects for one-slot matchings.
func NewIndexFromVector(v []int) (*Index, error) {
	if len(v) == 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]int, len(v))
	copy(buf, v)

	return &Index{r: len(v), c: 1, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Index) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Index) Cols() int { return m.c }

// At retrieves the element at (row, col) or ErrOutOfRange.
func (m *Index) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, indexErrorf(ctxIndexAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (m *Index) Set(row, col, v int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return indexErrorf(ctxIndexSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Index) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, indexErrorf(ctxIndexAt, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// row exposes row i without copying; callers in this package must not retain it.
func (m *Index) row(i int) []int {
	return m.data[i*m.c : (i+1)*m.c]
}

// Shift returns a copy with delta added to every element.
// Shift(-1) converts 1-based external numbering to 0-based, Shift(1) the reverse.
func (m *Index) Shift(delta int) *Index {
	buf := make([]int, len(m.data))
	for k, v := range m.data {
		buf[k] = v + delta
	}

	return &Index{r: m.r, c: m.c, data: buf}
}

// Clone returns a deep copy.
func (m *Index) Clone() *Index {
	return m.Shift(0)
}

// String implements fmt.Stringer.
func (m *Index) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
