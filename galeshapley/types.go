// Package galeshapley provides tunable options, result types and error
// definitions for deferred-acceptance matching.
package galeshapley

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmatch/matrix"
)

// Sentinel errors for matching.
var (
	// ErrContractViolation is returned when an input breaks a precondition:
	// nil or empty matrices, a preference row that is not a permutation,
	// reviewer utilities that are not N×M, non-finite utilities or slots < 1.
	// The concrete cause (usually a matrix sentinel) is wrapped alongside it.
	ErrContractViolation = errors.New("galeshapley: contract violation")
)

func contractErrorf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrContractViolation, cause)
}

// Outcome classifies what happened to a single proposal.
type Outcome int

const (
	// Engaged: the reviewer was free and accepted.
	Engaged Outcome = iota
	// Poached: the reviewer dropped its current proposer for this one.
	Poached
	// Rejected: the reviewer kept its current proposer.
	Rejected
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Engaged:
		return "engaged"
	case Poached:
		return "poached"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Proposal describes one step of the algorithm, as reported to OnProposal.
//   - Displaced is the proposer that lost the reviewer on Poached, or the
//     proposer-side UNMATCHED sentinel (M) otherwise.
//   - Slot is the reviewer slot involved; always 0 for one-to-one matching.
type Proposal struct {
	Proposer  int
	Reviewer  int
	Slot      int
	Outcome   Outcome
	Displaced int
}

// Option configures matching via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Logger receives a debug record per proposal and a summary per run.
	Logger *slog.Logger

	// OnProposal is called after every proposal, in execution order.
	OnProposal func(Proposal)
}

// DefaultOptions returns Options with a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		OnProposal: func(Proposal) {},
	}
}

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnProposal registers a callback run after each proposal.
func WithOnProposal(fn func(Proposal)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProposal = fn
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Result holds a one-to-one matching:
//   - Proposals[p] is the reviewer matched to proposer p, or N when unmatched.
//   - Engagements[r] is the proposer matched to reviewer r, or M when unmatched.
//   - Rounds counts proposals made.
//
// Proposals[p] == r ⟺ Engagements[r] == p for every matched pair.
type Result struct {
	Proposals   []int
	Engagements []int
	Rounds      int
}

// ProposerUnmatched returns the sentinel stored in Proposals for an unmatched proposer (N).
func (r *Result) ProposerUnmatched() int { return len(r.Engagements) }

// ReviewerUnmatched returns the sentinel stored in Engagements for an unmatched reviewer (M).
func (r *Result) ReviewerUnmatched() int { return len(r.Proposals) }

// IsMatched reports whether proposer p holds a reviewer.
func (r *Result) IsMatched(p int) bool {
	return p >= 0 && p < len(r.Proposals) && r.Proposals[p] != r.ProposerUnmatched()
}

// MatchedPairs lists (proposer, reviewer) pairs in ascending proposer order.
func (r *Result) MatchedPairs() [][2]int {
	pairs := make([][2]int, 0, min(len(r.Proposals), len(r.Engagements)))
	for p, rv := range r.Proposals {
		if rv != r.ProposerUnmatched() {
			pairs = append(pairs, [2]int{p, rv})
		}
	}

	return pairs
}

// UnmatchedProposers lists proposers left without a reviewer, ascending.
func (r *Result) UnmatchedProposers() []int {
	var out []int
	for p := range r.Proposals {
		if !r.IsMatched(p) {
			out = append(out, p)
		}
	}

	return out
}

// ProposalIndex returns Proposals as an M×1 index matrix (0-based), the
// shape stability.Check expects for one slot per proposer.
func (r *Result) ProposalIndex() (*matrix.Index, error) {
	return matrix.NewIndexFromVector(r.Proposals)
}

// EngagementIndex returns Engagements as an N×1 index matrix (0-based).
func (r *Result) EngagementIndex() (*matrix.Index, error) {
	return matrix.NewIndexFromVector(r.Engagements)
}
