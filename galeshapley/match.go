package galeshapley

import (
	"log/slog"

	"github.com/katalvlaran/lvmatch/matrix"
)

// market is the validated, flattened input of one run.
//   - prefs[p] is proposer p's preference order over reviewers.
//   - utils[r*m+p] is reviewer r's utility for proposer p.
//   - slots is the number of clones per original reviewer (1 when not cloned);
//     reviewer r of the market is seat r%slots of original reviewer r/slots.
type market struct {
	m, n  int
	slots int
	prefs [][]int
	utils []float64
}

// matcher encapsulates mutable deferred-acceptance state.
type matcher struct {
	mk          market
	opts        Options
	queue       *bachelors
	next        []int // next[p]: position in prefs[p] of p's next proposal
	proposals   []int
	engagements []int
	rounds      int
}

// Match runs proposer-optimal deferred acceptance.
//
// proposerPref is M×N; row p lists reviewer indices from most to least
// preferred and must be a permutation of [0, N). reviewerUtils is N×M; entry
// (r, p) is reviewer r's cardinal utility for proposer p. Utilities only
// decide whether a reviewer poaches; proposers follow proposerPref.
//
// Algorithm:
//  1. Every agent starts UNMATCHED; proposers M-1, …, 0 enter the bachelor
//     queue in that order.
//  2. Pop the front proposer p and walk its remaining preferences:
//     a free reviewer engages p; a reviewer that strictly prefers p to its
//     current proposer drops that proposer to the back of the queue and
//     engages p; otherwise move on.
//  3. A proposer whose list is exhausted stays UNMATCHED for good.
//
// Reviewers only ever trade up, so a reviewer that rejected p once rejects p
// forever; each proposer therefore resumes its walk where it stopped and the
// run makes at most M·N proposals.
//
// Errors: ErrContractViolation (see types.go). There is no partial result.
//
// Complexity: Time O(M·N), Space O(M·N).
func Match(proposerPref *matrix.Index, reviewerUtils matrix.Matrix, opts ...Option) (*Result, error) {
	mk, err := newMarket("Match", proposerPref, reviewerUtils)
	if err != nil {
		return nil, err
	}

	return run(mk, gatherOptions(opts)), nil
}

// newMarket validates inputs and flattens them.
func newMarket(method string, proposerPref *matrix.Index, reviewerUtils matrix.Matrix) (market, error) {
	if err := matrix.ValidateIndexNotNil(proposerPref); err != nil {
		return market{}, contractErrorf(method, err)
	}
	if err := matrix.ValidateNotNil(reviewerUtils); err != nil {
		return market{}, contractErrorf(method, err)
	}
	m, n := proposerPref.Rows(), proposerPref.Cols()
	if err := matrix.ValidateShape(reviewerUtils, n, m); err != nil {
		return market{}, contractErrorf(method, err)
	}
	if err := matrix.ValidateRowPermutations(proposerPref); err != nil {
		return market{}, contractErrorf(method, err)
	}
	if err := matrix.ValidateFinite(reviewerUtils); err != nil {
		return market{}, contractErrorf(method, err)
	}

	mk := market{m: m, n: n, slots: 1, prefs: make([][]int, m), utils: make([]float64, n*m)}
	var p, r int
	for p = 0; p < m; p++ {
		mk.prefs[p], _ = proposerPref.Row(p)
	}
	for r = 0; r < n; r++ {
		for p = 0; p < m; p++ {
			mk.utils[r*m+p], _ = reviewerUtils.At(r, p)
		}
	}

	return mk, nil
}

// run executes the algorithm on a validated market.
func run(mk market, o Options) *Result {
	w := &matcher{
		mk:          mk,
		opts:        o,
		queue:       newBachelors(mk.m),
		next:        make([]int, mk.m),
		proposals:   make([]int, mk.m),
		engagements: make([]int, mk.n),
	}
	for p := range w.proposals {
		w.proposals[p] = mk.n
	}
	for r := range w.engagements {
		w.engagements[r] = mk.m
	}

	for w.queue.len() > 0 {
		w.propose(w.queue.pop())
	}

	res := &Result{Proposals: w.proposals, Engagements: w.engagements, Rounds: w.rounds}
	o.Logger.Debug("galeshapley: matching complete",
		slog.Int("proposers", mk.m),
		slog.Int("reviewers", mk.n/mk.slots),
		slog.Int("slots", mk.slots),
		slog.Int("rounds", w.rounds),
		slog.Int("unmatched_proposers", len(res.UnmatchedProposers())))

	return res
}

// propose walks p's remaining preferences until p is engaged or exhausted.
func (w *matcher) propose(p int) {
	prefs := w.mk.prefs[p]
	for w.next[p] < len(prefs) {
		r := prefs[w.next[p]]
		w.next[p]++
		w.rounds++

		cur := w.engagements[r]
		switch {
		case cur == w.mk.m:
			w.engage(p, r)
			w.report(Proposal{Proposer: p, Reviewer: r, Outcome: Engaged, Displaced: w.mk.m})
			return
		case w.util(r, p) > w.util(r, cur):
			w.proposals[cur] = w.mk.n
			w.queue.push(cur)
			w.engage(p, r)
			w.report(Proposal{Proposer: p, Reviewer: r, Outcome: Poached, Displaced: cur})
			return
		default:
			w.report(Proposal{Proposer: p, Reviewer: r, Outcome: Rejected, Displaced: w.mk.m})
		}
	}
	w.opts.Logger.Debug("galeshapley: preferences exhausted", slog.Int("proposer", p))
}

func (w *matcher) engage(p, r int) {
	w.engagements[r] = p
	w.proposals[p] = r
}

func (w *matcher) util(r, p int) float64 {
	return w.mk.utils[r*w.mk.m+p]
}

func (w *matcher) report(pr Proposal) {
	pr.Slot = pr.Reviewer % w.mk.slots
	pr.Reviewer /= w.mk.slots
	w.opts.Logger.Debug("galeshapley: proposal",
		slog.Int("proposer", pr.Proposer),
		slog.Int("reviewer", pr.Reviewer),
		slog.Int("slot", pr.Slot),
		slog.String("outcome", pr.Outcome.String()))
	w.opts.OnProposal(pr)
}
