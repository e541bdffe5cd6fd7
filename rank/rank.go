package rank

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmatch/matrix"
)

// ErrContractViolation is returned when an input breaks a stated precondition
// (nil or empty matrix, a row that is not a permutation). The concrete cause
// from package matrix is wrapped alongside it.
var ErrContractViolation = errors.New("rank: contract violation")

func contractErrorf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrContractViolation, cause)
}

// SortDescending returns, for each row of u, the column indices ordered from
// highest to lowest utility.
//
// Ties: equal values keep ascending original column index. NaN values (only
// possible when u opted out of the finite policy) sort after every number.
//
// Errors: ErrContractViolation wrapping matrix.ErrNilMatrix or
// matrix.ErrInvalidDimensions.
//
// Complexity: Time O(R·C·log C), Space O(R·C).
func SortDescending(u matrix.Matrix) (*matrix.Index, error) {
	const method = "SortDescending"
	if err := matrix.ValidateNotNil(u); err != nil {
		return nil, contractErrorf(method, err)
	}
	rows, cols := u.Rows(), u.Cols()
	out, err := matrix.NewIndex(rows, cols)
	if err != nil {
		return nil, contractErrorf(method, err)
	}

	vals := make([]float64, cols)
	order := make([]int, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if vals[j], err = u.At(i, j); err != nil {
				return nil, contractErrorf(method, err)
			}
			order[j] = j
		}
		// Stable sort keeps ascending column order among equal utilities.
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(vals[b], vals[a])
		})
		for j = 0; j < cols; j++ {
			_ = out.Set(i, j, order[j])
		}
	}

	return out, nil
}

// InvertPermutation returns the row-wise inverse of sorted:
// rank[row][sorted[row][k]] = k. With sorted produced by SortDescending,
// rank 0 marks the most preferred column.
//
// Errors: ErrContractViolation wrapping matrix.ErrNilMatrix, or
// matrix.ErrNotPermutation listing every malformed row.
//
// Complexity: Time O(R·C), Space O(R·C).
func InvertPermutation(sorted *matrix.Index) (*matrix.Index, error) {
	const method = "InvertPermutation"
	if err := checkPermutations(sorted); err != nil {
		return nil, contractErrorf(method, err)
	}
	rows, cols := sorted.Rows(), sorted.Cols()
	out, err := matrix.NewIndex(rows, cols)
	if err != nil {
		return nil, contractErrorf(method, err)
	}
	var i, k, col int
	for i = 0; i < rows; i++ {
		for k = 0; k < cols; k++ {
			col, _ = sorted.At(i, k)
			_ = out.Set(i, col, k)
		}
	}

	return out, nil
}

// Ranks is InvertPermutation(SortDescending(u)).
func Ranks(u matrix.Matrix) (*matrix.Index, error) {
	sorted, err := SortDescending(u)
	if err != nil {
		return nil, err
	}

	return InvertPermutation(sorted)
}

// UtilitiesFromOrder builds cardinal utilities consistent with an ordinal
// preference order: u[i][pref[i][k]] = cols - k. The most preferred column
// scores cols, the least preferred scores 1, so SortDescending(u) == pref.
//
// Errors: same as InvertPermutation.
//
// Complexity: Time O(R·C), Space O(R·C).
func UtilitiesFromOrder(pref *matrix.Index) (*matrix.Dense, error) {
	const method = "UtilitiesFromOrder"
	if err := checkPermutations(pref); err != nil {
		return nil, contractErrorf(method, err)
	}
	rows, cols := pref.Rows(), pref.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, contractErrorf(method, err)
	}
	var i, k, col int
	for i = 0; i < rows; i++ {
		for k = 0; k < cols; k++ {
			col, _ = pref.At(i, k)
			_ = out.Set(i, col, float64(cols-k))
		}
	}

	return out, nil
}

func checkPermutations(m *matrix.Index) error {
	if err := matrix.ValidateIndexNotNil(m); err != nil {
		return err
	}

	return matrix.ValidateRowPermutations(m)
}
