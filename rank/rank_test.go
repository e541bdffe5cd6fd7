package rank_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/katalvlaran/lvmatch/rank"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func mustIndex(t *testing.T, rows [][]int) *matrix.Index {
	t.Helper()
	m, err := matrix.NewIndexFrom(rows)
	require.NoError(t, err)
	return m
}

// TestSortDescending_Basic checks per-row descending order.
func TestSortDescending_Basic(t *testing.T) {
	u := mustDense(t, [][]float64{
		{0.1, 0.9, 0.5},
		{3, 2, 1},
	})
	got, err := rank.SortDescending(u)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 0]\n[0, 1, 2]\n", got.String())
}

// TestSortDescending_TiesKeepAscendingIndex pins the documented tie rule.
func TestSortDescending_TiesKeepAscendingIndex(t *testing.T) {
	u := mustDense(t, [][]float64{
		{1, 2, 2, 1},
		{5, 5, 5, 5},
	})
	got, err := rank.SortDescending(u)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 0, 3]\n[0, 1, 2, 3]\n", got.String())
}

func TestSortDescending_Nil(t *testing.T) {
	_, err := rank.SortDescending(nil)
	assert.ErrorIs(t, err, rank.ErrContractViolation)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInvertPermutation checks rank[row][sorted[row][k]] == k.
func TestInvertPermutation(t *testing.T) {
	sorted := mustIndex(t, [][]int{
		{2, 0, 1},
		{0, 1, 2},
	})
	got, err := rank.InvertPermutation(sorted)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 0]\n[0, 1, 2]\n", got.String())
}

func TestInvertPermutation_ContractViolation(t *testing.T) {
	_, err := rank.InvertPermutation(nil)
	assert.ErrorIs(t, err, rank.ErrContractViolation)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = rank.InvertPermutation(mustIndex(t, [][]int{{0, 0, 1}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, rank.ErrContractViolation))
	assert.True(t, errors.Is(err, matrix.ErrNotPermutation))
}

// TestRanks_RoundTrip checks the round-trip laws on random matrices:
//   - inverting twice restores the sorted order;
//   - a higher utility always has a strictly smaller rank.
func TestRanks_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		u, err := builder.RandomUtilities(5, 7, builder.WithSeed(seed))
		require.NoError(t, err)

		sorted, err := rank.SortDescending(u)
		require.NoError(t, err)
		ranks, err := rank.InvertPermutation(sorted)
		require.NoError(t, err)
		back, err := rank.InvertPermutation(ranks)
		require.NoError(t, err)
		assert.Equal(t, sorted.String(), back.String(), "seed %d", seed)

		viaRanks, err := rank.Ranks(u)
		require.NoError(t, err)
		assert.Equal(t, ranks.String(), viaRanks.String())

		for i := 0; i < u.Rows(); i++ {
			row, _ := u.Row(i)
			for a := range row {
				for b := range row {
					if row[a] > row[b] {
						ra, _ := ranks.At(i, a)
						rb, _ := ranks.At(i, b)
						assert.Less(t, ra, rb, "seed %d row %d", seed, i)
					}
				}
			}
		}
	}
}

// TestUtilitiesFromOrder_RoundTrip checks SortDescending(UtilitiesFromOrder(p)) == p.
func TestUtilitiesFromOrder_RoundTrip(t *testing.T) {
	pref, err := builder.RandomPreferences(6, 4, builder.WithSeed(11))
	require.NoError(t, err)

	u, err := rank.UtilitiesFromOrder(pref)
	require.NoError(t, err)
	back, err := rank.SortDescending(u)
	require.NoError(t, err)
	assert.Equal(t, pref.String(), back.String())

	top, _ := pref.At(0, 0)
	v, _ := u.At(0, top)
	assert.Equal(t, 4.0, v, "best column scores cols")

	_, err = rank.UtilitiesFromOrder(mustIndex(t, [][]int{{1, 1}}))
	assert.ErrorIs(t, err, rank.ErrContractViolation)
}
