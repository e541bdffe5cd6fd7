// Package stability provides tunable options and error definitions for
// blocking-pair detection.
package stability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// UnmatchedUtility is the utility of the synthetic "stay unmatched" option
// appended to the side with spare capacity. It is far below any realistic
// utility, so every real partner beats it and being unmatched is never
// itself reported as a blocking opportunity.
const UnmatchedUtility = -1e10

// DefaultIndexBase is the numbering of proposals/engagements entries:
// 1-based, the convention of statistical front ends.
const DefaultIndexBase = 1

// Sentinel errors for stability checks.
var (
	// ErrContractViolation is returned when inputs are nil, mis-shaped,
	// non-finite, or hold indices outside their side's range.
	ErrContractViolation = errors.New("stability: contract violation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stability: invalid option supplied")
)

func contractErrorf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrContractViolation, cause)
}

// BlockingPair names a proposer and a reviewer who both strictly prefer each
// other to the partners held in the given slots. Proposer and Reviewer use the
// caller's numbering (see WithIndexBase); slots are 0-based column positions.
type BlockingPair struct {
	Proposer     int
	Reviewer     int
	ProposerSlot int
	ReviewerSlot int
}

// String renders the pair as a single human-readable line.
func (b BlockingPair) String() string {
	return fmt.Sprintf("matching is not stable; proposer %d would rather be matched to reviewer %d and vice versa",
		b.Proposer, b.Reviewer)
}

// Option configures a check via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the effective configuration of a check.
type Options struct {
	// IndexBase is 1 (default) or 0.
	IndexBase int

	// Logger receives the diagnostic line when a blocking pair is found.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns 1-based indexing and a discarding logger.
func DefaultOptions() Options {
	return Options{
		IndexBase: DefaultIndexBase,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithIndexBase selects 1-based (external) or 0-based (in-process) numbering
// of proposals/engagements entries. Any other value is an option violation.
func WithIndexBase(base int) Option {
	return func(o *Options) {
		if base != 0 && base != 1 {
			o.err = fmt.Errorf("%w: index base must be 0 or 1 (got %d)", ErrOptionViolation, base)
			return
		}
		o.IndexBase = base
	}
}

// WithLogger routes the instability diagnostic to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext uses the logger carried by ctx (see cloudeng.io/logging/ctxlog).
// A context without a logger yields a discarding logger.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Logger = ctxlog.Logger(ctx)
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
