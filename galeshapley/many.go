package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

// ManyResult holds a many-to-one matching where every reviewer has Slots seats.
//   - Proposals[p] is the reviewer holding proposer p, or N when unmatched.
//   - Engagements is N×Slots; row r lists the proposers seated at r, with M
//     marking an empty seat.
type ManyResult struct {
	Proposals   []int
	Engagements *matrix.Index
	Slots       int
	Rounds      int
}

// ProposerUnmatched returns the sentinel stored in Proposals (N).
func (r *ManyResult) ProposerUnmatched() int { return r.Engagements.Rows() }

// ReviewerUnmatched returns the sentinel stored in empty seats (M).
func (r *ManyResult) ReviewerUnmatched() int { return len(r.Proposals) }

// ProposalIndex returns Proposals as an M×1 index matrix (0-based).
func (r *ManyResult) ProposalIndex() (*matrix.Index, error) {
	return matrix.NewIndexFromVector(r.Proposals)
}

// MatchManyToOne runs deferred acceptance with reviewer capacity slots.
//
// Every reviewer r is split into clones r·slots+0 … r·slots+slots-1 that share
// r's utilities; each proposer ranks r's clones consecutively where it ranked
// r. The one-to-one algorithm runs on the cloned market and seats are folded
// back: clone r·slots+s is seat s of reviewer r.
//
// OnProposal reports original reviewer indices with Slot set to the seat.
//
// Errors: ErrContractViolation for the conditions listed on Match and for slots < 1.
//
// Complexity: Time O(M·N·slots), Space O(M·N·slots).
func MatchManyToOne(proposerPref *matrix.Index, reviewerUtils matrix.Matrix, slots int, opts ...Option) (*ManyResult, error) {
	const method = "MatchManyToOne"
	if slots < 1 {
		return nil, contractErrorf(method, fmt.Errorf("slots=%d: %w", slots, matrix.ErrInvalidDimensions))
	}
	mk, err := newMarket(method, proposerPref, reviewerUtils)
	if err != nil {
		return nil, err
	}

	one := run(cloneReviewers(mk, slots), gatherOptions(opts))

	res := &ManyResult{Proposals: make([]int, mk.m), Slots: slots, Rounds: one.Rounds}
	for p, c := range one.Proposals {
		if c == one.ProposerUnmatched() {
			res.Proposals[p] = mk.n
			continue
		}
		res.Proposals[p] = c / slots
	}
	if res.Engagements, err = matrix.NewIndex(mk.n, slots); err != nil {
		return nil, contractErrorf(method, err)
	}
	for c, p := range one.Engagements {
		_ = res.Engagements.Set(c/slots, c%slots, p)
	}

	return res, nil
}

// cloneReviewers expands every reviewer into slots identical clones.
func cloneReviewers(mk market, slots int) market {
	n := mk.n * slots
	out := market{m: mk.m, n: n, slots: slots, prefs: make([][]int, mk.m), utils: make([]float64, n*mk.m)}
	for p, row := range mk.prefs {
		exp := make([]int, 0, n)
		for _, r := range row {
			for s := 0; s < slots; s++ {
				exp = append(exp, r*slots+s)
			}
		}
		out.prefs[p] = exp
	}
	for c := 0; c < n; c++ {
		copy(out.utils[c*mk.m:(c+1)*mk.m], mk.utils[(c/slots)*mk.m:(c/slots+1)*mk.m])
	}

	return out
}
