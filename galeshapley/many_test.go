package galeshapley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/katalvlaran/lvmatch/rank"
	"github.com/katalvlaran/lvmatch/stability"
)

// TestMatchManyToOne_SeatsFold: two reviewers with two seats each, three
// proposers who all prefer reviewer 0.
func TestMatchManyToOne_SeatsFold(t *testing.T) {
	pref := mustIndex(t, [][]int{{0, 1}, {0, 1}, {0, 1}})
	ru := mustDense(t, [][]float64{{3, 2, 1}, {1, 2, 3}})

	var trace []galeshapley.Proposal
	res, err := galeshapley.MatchManyToOne(pref, ru, 2, galeshapley.WithOnProposal(func(p galeshapley.Proposal) {
		trace = append(trace, p)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, res.Proposals)
	assert.Equal(t, "[0, 1]\n[2, 3]\n", res.Engagements.String())
	assert.Equal(t, 2, res.Slots)
	assert.Equal(t, 6, res.Rounds)
	assert.Equal(t, 3, res.ReviewerUnmatched())
	assert.Equal(t, 2, res.ProposerUnmatched())

	assert.Equal(t, []galeshapley.Proposal{
		{Proposer: 2, Reviewer: 0, Slot: 0, Outcome: galeshapley.Engaged, Displaced: 3},
		{Proposer: 1, Reviewer: 0, Slot: 0, Outcome: galeshapley.Poached, Displaced: 2},
		{Proposer: 0, Reviewer: 0, Slot: 0, Outcome: galeshapley.Poached, Displaced: 1},
		{Proposer: 2, Reviewer: 0, Slot: 1, Outcome: galeshapley.Engaged, Displaced: 3},
		{Proposer: 1, Reviewer: 0, Slot: 1, Outcome: galeshapley.Poached, Displaced: 2},
		{Proposer: 2, Reviewer: 1, Slot: 0, Outcome: galeshapley.Engaged, Displaced: 3},
	}, trace)

	pu, err := rank.UtilitiesFromOrder(pref)
	require.NoError(t, err)
	props, err := res.ProposalIndex()
	require.NoError(t, err)
	ok, err := stability.Check(pu, ru, props, res.Engagements, stability.WithIndexBase(0))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestMatchManyToOne_OneSlotEqualsMatch: a single seat per reviewer is plain
// one-to-one matching.
func TestMatchManyToOne_OneSlotEqualsMatch(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		mk, err := builder.RandomMarket(6, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		pref, err := rank.SortDescending(mk.ProposerUtils)
		require.NoError(t, err)

		one, err := galeshapley.Match(pref, mk.ReviewerUtils)
		require.NoError(t, err)
		many, err := galeshapley.MatchManyToOne(pref, mk.ReviewerUtils, 1)
		require.NoError(t, err)

		assert.Equal(t, one.Proposals, many.Proposals)
		assert.Equal(t, one.Rounds, many.Rounds)
		for r, p := range one.Engagements {
			got, err := many.Engagements.At(r, 0)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}
}

// TestMatchManyToOne_RandomStable audits seat tables of random markets.
func TestMatchManyToOne_RandomStable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		mk, err := builder.RandomMarket(9, 3, builder.WithSeed(seed), builder.WithCorrelation(0.5))
		require.NoError(t, err)
		pref, err := rank.SortDescending(mk.ProposerUtils)
		require.NoError(t, err)

		res, err := galeshapley.MatchManyToOne(pref, mk.ReviewerUtils, 2)
		require.NoError(t, err)

		seated := 0
		for r := 0; r < res.Engagements.Rows(); r++ {
			row, err := res.Engagements.Row(r)
			require.NoError(t, err)
			for _, p := range row {
				if p == res.ReviewerUnmatched() {
					continue
				}
				seated++
				assert.Equal(t, r, res.Proposals[p])
			}
		}
		assert.Equal(t, 6, seated)

		props, err := res.ProposalIndex()
		require.NoError(t, err)
		ok, err := stability.Check(mk.ProposerUtils, mk.ReviewerUtils, props, res.Engagements, stability.WithIndexBase(0))
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
	}
}

func TestMatchManyToOne_InvalidSlots(t *testing.T) {
	pref := mustIndex(t, [][]int{{0}})
	ru := mustDense(t, [][]float64{{1}})

	_, err := galeshapley.MatchManyToOne(pref, ru, 0)
	assert.ErrorIs(t, err, galeshapley.ErrContractViolation)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
