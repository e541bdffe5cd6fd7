// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/matrix"
)

func TestRandomUtilities_Validation(t *testing.T) {
	_, err := builder.RandomUtilities(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewAgents)
	_, err = builder.RandomMarket(2, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewAgents)
	_, err = builder.RandomPreferences(-1, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewAgents)
}

func TestRandomUtilities_DeterministicAndInRange(t *testing.T) {
	a, err := builder.RandomUtilities(4, 5, builder.WithSeed(42), builder.WithRange(-2, 3))
	require.NoError(t, err)
	b, err := builder.RandomUtilities(4, 5, builder.WithSeed(42), builder.WithRange(-2, 3))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed must give identical matrices")

	for i := 0; i < a.Rows(); i++ {
		row, err := a.Row(i)
		require.NoError(t, err)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -2.0)
			assert.Less(t, v, 3.0)
		}
	}

	c, err := builder.RandomUtilities(4, 5, builder.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestRandomUtilities_DefaultSeedMatchesZero(t *testing.T) {
	a, err := builder.RandomUtilities(3, 3)
	require.NoError(t, err)
	b, err := builder.RandomUtilities(3, 3, builder.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRandomUtilities_FullCorrelation(t *testing.T) {
	u, err := builder.RandomUtilities(3, 4, builder.WithSeed(7), builder.WithCorrelation(1))
	require.NoError(t, err)

	first, err := u.Row(0)
	require.NoError(t, err)
	for i := 1; i < u.Rows(); i++ {
		row, err := u.Row(i)
		require.NoError(t, err)
		assert.Equal(t, first, row, "w=1 makes every row the common vector")
	}
}

func TestRandomMarket_Shapes(t *testing.T) {
	mk, err := builder.RandomMarket(3, 5, builder.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	assert.Equal(t, 3, mk.Proposers())
	assert.Equal(t, 5, mk.Reviewers())
	require.NoError(t, matrix.ValidateShape(mk.ProposerUtils, 3, 5))
	require.NoError(t, matrix.ValidateShape(mk.ReviewerUtils, 5, 3))
}

func TestRandomPreferences_ArePermutations(t *testing.T) {
	p, err := builder.RandomPreferences(6, 9, builder.WithSeed(5))
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateRowPermutations(p))
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRange(1, 1) })
	assert.Panics(t, func() { builder.WithCorrelation(1.5) })
}
