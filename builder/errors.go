// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewAgents indicates that a side of the market has fewer than one agent.
var ErrTooFewAgents = errors.New("builder: market side must have at least one agent")

// builderErrorf prefixes err with the generator name, preserving the sentinel.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
