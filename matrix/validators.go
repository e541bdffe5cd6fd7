// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep algorithm packages minimal by delegating shape/nil/permutation checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - ValidateRowPermutations allocates one bitmap of ceil(cols/64) words and
//     reuses it across rows.

package matrix

import (
	"fmt"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/errors"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense stored in the interface is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIndexNotNil is the Index counterpart of ValidateNotNil.
func ValidateIndexNotNil(m *Index) error {
	if m == nil {
		return validatorErrorf("ValidateIndexNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
//
// Implementation: assumes m is not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch naming the offending axis.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape: rows %d != %d", m.Rows(), rows), ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: cols %d != %d", m.Cols(), cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every entry of m is finite.
// Matrices built with the default policy already satisfy this; the check
// exists for foreign Matrix implementations.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if !isFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateRange ensures every value of m lies in [lo, hi].
// Returns the first violation, wrapped ErrOutOfRange.
// Complexity: O(r*c).
func ValidateRange(m *Index, lo, hi int) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v := m.data[i*m.c+j]; v < lo || v > hi {
				return validatorErrorf(fmt.Sprintf("ValidateRange(%d,%d): %d not in [%d,%d]", i, j, v, lo, hi), ErrOutOfRange)
			}
		}
	}

	return nil
}

// ValidateRowPermutations ensures every row of m is a permutation of [0, cols).
//
// Implementation:
//   - Stage 1: allocate one bitmap of cols bits.
//   - Stage 2: per row, reject values outside [0, cols) and repeats; clear the
//     bits touched before moving on.
//   - Stage 3: aggregate every failing row into one error.
//
// Return: nil, or an error matching ErrNotPermutation listing each bad row.
// Complexity: Time O(r*c), Space O(c/64).
func ValidateRowPermutations(m *Index) error {
	seen := bitmap.New(m.c)
	errs := &errors.M{}
	var i int
	for i = 0; i < m.r; i++ {
		row := m.row(i)
		if bad := firstNonPermutation(row, seen); bad >= 0 {
			errs.Append(validatorErrorf(
				fmt.Sprintf("ValidateRowPermutations: row %d: value %d at column %d", i, row[bad], bad),
				ErrNotPermutation))
		}
		for _, v := range row {
			seen.Clear(v)
		}
	}

	return errs.Err()
}

// firstNonPermutation returns the column of the first out-of-range or repeated
// value in row, or -1 when row is a permutation of [0, len(row)).
func firstNonPermutation(row []int, seen bitmap.T) int {
	for k, v := range row {
		if v < 0 || v >= len(row) || seen.IsSet(v) {
			return k
		}
		seen.Set(v)
	}

	return -1
}
