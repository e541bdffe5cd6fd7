// Package stability audits a matching for blocking pairs.
//
// A matching is stable when no proposer and reviewer would both rather be
// matched to each other than keep what they hold. Check answers that question
// for any matching, whether it came from galeshapley or from elsewhere, and
// FindBlockingPair also says who blocks.
//
// Slots:
//
//	proposals and engagements are index matrices with one column per slot, so
//	one-to-one (1 column each), many-to-one (engagements N×seats) and
//	many-to-many audits share the same entry point.
//
// Numbering:
//
//	Entries are 1-based by default, matching statistical front ends. Pass
//	WithIndexBase(0) when auditing galeshapley results directly. The "no
//	match" entry is the size of the opposite side in 0-based terms.
//
// Unmatched agents:
//
//	The side that may be left over gets a synthetic option worth
//	UnmatchedUtility (-1e10), so any real partner beats staying single.
//
// Diagnostics:
//
//	The first blocking pair is logged as one line through WithLogger or the
//	context logger attached with cloudeng.io/logging/ctxlog (WithContext).
//	Logging is advisory; the verdict is the return value.
package stability
