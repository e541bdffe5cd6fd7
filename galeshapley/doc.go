// Package galeshapley computes proposer-optimal stable matchings with the
// deferred-acceptance (Gale–Shapley) algorithm.
//
// What is deferred acceptance?
//
//	Proposers walk their preference lists from best to worst; each reviewer
//	holds the best proposal received so far and drops it the moment a
//	strictly better one arrives. Nothing is final until nobody is left to
//	propose. The outcome is stable (no proposer and reviewer both prefer each
//	other to what they got) and weakly best for every proposer among all
//	stable matchings.
//
// Inputs:
//
//   - proposerPref: M×N *matrix.Index, row p a permutation of reviewers,
//     most preferred first (see rank.SortDescending to derive it).
//   - reviewerUtils: N×M matrix.Matrix of cardinal utilities; only compared
//     with strict '>' when deciding whether to poach.
//
// Outputs (Result):
//
//   - Proposals[p]: reviewer of proposer p, or N when unmatched.
//   - Engagements[r]: proposer of reviewer r, or M when unmatched.
//
// The sentinels are the opposite side's size, so they never collide with a
// real index.
//
// Many-to-one:
//
//	MatchManyToOne gives every reviewer a fixed number of seats by cloning it
//	and folding the one-to-one result back into an N×slots seat table.
//
// Hooks & logging:
//
//	WithOnProposal observes every proposal (engaged / poached / rejected);
//	WithLogger sends debug records to a *slog.Logger.
//
// Complexity: O(M·N) time and memory for Match, O(M·N·slots) for MatchManyToOne.
// Every call owns its state, so concurrent calls on disjoint inputs are safe.
package galeshapley
