// Package matrix provides the dense storage shared by the matching packages.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix for cardinal utilities, with a
//     strict finite-value policy (NaN/Inf rejected by default) and PadCols for
//     appending synthetic "stay unmatched" options.
//   - Index: a row-major int matrix for preference orders, rank tables and
//     slot-wise match tables, with Shift for 1-based ↔ 0-based conversion.
//   - Validators (shape, range, finiteness, row permutations) returning
//     sentinel errors so every algorithm package reports contract violations
//     the same way.
//
// All accessors are bounds-checked and return errors instead of panicking.
package matrix
