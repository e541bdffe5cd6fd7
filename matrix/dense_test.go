// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.Inf(-1)}}, matrix.WithAllowNaNInf())
	assert.NoError(t, err, "policy opt-out accepts -Inf")
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_RowAndClone(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v, "Row must return a copy")

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -5))
	v, _ = m.At(0, 0)
	assert.Equal(t, 1.0, v, "Clone must be deep")

	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_PadCols(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	p, err := m.PadCols(1, -1e10)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.Equal(t, 2, m.Cols(), "source untouched")

	for i := 0; i < 2; i++ {
		v, err := p.At(i, 2)
		require.NoError(t, err)
		assert.Equal(t, -1e10, v)
	}
	v, _ := p.At(1, 1)
	assert.Equal(t, 4.0, v)

	same, err := m.PadCols(0, 0)
	require.NoError(t, err)
	assert.Equal(t, m.String(), same.String())

	_, err = m.PadCols(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.PadCols(1, math.NaN())
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
