package stability

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmatch/matrix"
)

// audit is the validated, 0-based, padded input of one check.
//   - pu[w] is proposer w's utility row (N or N+1 columns).
//   - ru[f] is reviewer f's utility row (M or M+1 columns).
//   - props is M×slotsP, engs is N×slotsR; the "no match" entry is N / M.
type audit struct {
	pu, ru      [][]float64
	props, engs *matrix.Index
}

// Check reports whether the matching described by proposals and engagements
// admits no blocking pair.
//
// Shapes: proposerUtils is M×N, reviewerUtils is N×M, proposals is M×slotsP
// and engagements is N×slotsR (one column per slot). Entries are agent
// indices in the configured base; the "no match" entry is the opposite side's
// count in 0-based terms (N+1 / M+1 when 1-based).
//
// When total capacities differ, the side that can be left over gets one
// extra utility column filled with UnmatchedUtility. The same happens to any
// side whose match table contains the "no match" entry.
//
// A blocking pair (w, f) exists when, for some slot swX of w and some slot
// sfX of f, f strictly prefers w to its sfX-th partner and w strictly prefers
// f to its swX-th partner. The first such pair ends the search; its
// diagnostic line goes to the configured logger.
//
// Complexity: Time O(M·N·slotsP·slotsR), Space O(M·N).
func Check(proposerUtils, reviewerUtils matrix.Matrix, proposals, engagements *matrix.Index, opts ...Option) (bool, error) {
	_, found, err := find("Check", proposerUtils, reviewerUtils, proposals, engagements, opts)
	if err != nil {
		return false, err
	}

	return !found, nil
}

// FindBlockingPair is Check returning the first blocking pair found.
// ok is false when the matching is stable.
func FindBlockingPair(proposerUtils, reviewerUtils matrix.Matrix, proposals, engagements *matrix.Index, opts ...Option) (bp BlockingPair, ok bool, err error) {
	return find("FindBlockingPair", proposerUtils, reviewerUtils, proposals, engagements, opts)
}

func find(method string, pu, ru matrix.Matrix, proposals, engagements *matrix.Index, opts []Option) (BlockingPair, bool, error) {
	o := gatherOptions(opts)
	if o.err != nil {
		return BlockingPair{}, false, o.err
	}
	a, err := newAudit(pu, ru, proposals, engagements, o.IndexBase)
	if err != nil {
		return BlockingPair{}, false, contractErrorf(method, err)
	}

	bp, found := a.scan()
	if !found {
		return BlockingPair{}, false, nil
	}
	bp.Proposer += o.IndexBase
	bp.Reviewer += o.IndexBase
	o.Logger.Info(bp.String(),
		slog.Int("proposer", bp.Proposer),
		slog.Int("reviewer", bp.Reviewer),
		slog.Int("proposer_slot", bp.ProposerSlot),
		slog.Int("reviewer_slot", bp.ReviewerSlot))

	return bp, true, nil
}

// newAudit validates shapes, converts indices to 0-based and pads utilities.
func newAudit(pu, ru matrix.Matrix, proposals, engagements *matrix.Index, base int) (*audit, error) {
	for _, m := range []matrix.Matrix{pu, ru} {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, err
		}
	}
	for _, m := range []*matrix.Index{proposals, engagements} {
		if err := matrix.ValidateIndexNotNil(m); err != nil {
			return nil, err
		}
	}

	nw, nf := pu.Rows(), pu.Cols()
	if err := matrix.ValidateShape(ru, nf, nw); err != nil {
		return nil, fmt.Errorf("reviewer utilities: %w", err)
	}
	if proposals.Rows() != nw {
		return nil, fmt.Errorf("proposals: rows %d != %d: %w", proposals.Rows(), nw, matrix.ErrDimensionMismatch)
	}
	if engagements.Rows() != nf {
		return nil, fmt.Errorf("engagements: rows %d != %d: %w", engagements.Rows(), nf, matrix.ErrDimensionMismatch)
	}
	for _, m := range []matrix.Matrix{pu, ru} {
		if err := matrix.ValidateFinite(m); err != nil {
			return nil, err
		}
	}

	props := proposals.Shift(-base)
	engs := engagements.Shift(-base)
	if err := matrix.ValidateRange(props, 0, nf); err != nil {
		return nil, fmt.Errorf("proposals: %w", err)
	}
	if err := matrix.ValidateRange(engs, 0, nw); err != nil {
		return nil, fmt.Errorf("engagements: %w", err)
	}

	capP, capR := nw*props.Cols(), nf*engs.Cols()
	padP := capP > capR || holds(props, nf)
	padR := capR > capP || holds(engs, nw)

	a := &audit{props: props, engs: engs}
	var err error
	if a.pu, err = utilityRows(pu, padP); err != nil {
		return nil, err
	}
	if a.ru, err = utilityRows(ru, padR); err != nil {
		return nil, err
	}

	return a, nil
}

// scan runs the quadruple loop; indices in the result are 0-based.
func (a *audit) scan() (BlockingPair, bool) {
	nw, nf := len(a.pu), len(a.ru)
	slotsP, slotsR := a.props.Cols(), a.engs.Cols()
	var w, f, swX, sfX, partnerW, partnerF int
	for w = 0; w < nw; w++ {
		for f = 0; f < nf; f++ {
			for swX = 0; swX < slotsP; swX++ {
				partnerW, _ = a.props.At(w, swX)
				for sfX = 0; sfX < slotsR; sfX++ {
					partnerF, _ = a.engs.At(f, sfX)
					if a.ru[f][w] > a.ru[f][partnerF] && a.pu[w][f] > a.pu[w][partnerW] {
						return BlockingPair{Proposer: w, Reviewer: f, ProposerSlot: swX, ReviewerSlot: sfX}, true
					}
				}
			}
		}
	}

	return BlockingPair{}, false
}

// utilityRows copies m row by row, appending the UnmatchedUtility column when pad is set.
func utilityRows(m matrix.Matrix, pad bool) ([][]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if pad {
		if d, err = d.PadCols(1, UnmatchedUtility); err != nil {
			return nil, err
		}
	}
	rows := make([][]float64, d.Rows())
	for i := range rows {
		if rows[i], err = d.Row(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// holds reports whether any entry of m equals v.
func holds(m *matrix.Index, v int) bool {
	var i, j, x int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if x, _ = m.At(i, j); x == v {
				return true
			}
		}
	}

	return false
}
