// Package matrix implements the generic, exact-arithmetic matrix engine
// of lvlmat.
//
// The matrix package provides:
//
//   - Matrix[T]: an immutable rectangular grid over any number.Number
//     element type, with validated construction and factory helpers
//     (Zeros, Ones, Identity, Filled, FromVector).
//   - Checked arithmetic: elementwise add/sub/negate, scalar scaling,
//     and the standard matrix product, all failing fast on shape
//     mismatches and on per-element overflow; no result is ever
//     partially computed.
//   - Step-traced algebra: Echelon (reduced row echelon form with a
//     step-minimizing pivot heuristic), Inverse (via the augmented
//     [A|I] reduction), and CheckedPow (exponentiation by squaring).
//     Multi-step transformations return an Aftermath carrying the
//     result together with the rendered derivation trail.
//   - LaTeX export: bmatrix rendering, with an augmented-matrix form
//     for matrices carrying a concat separator.
//
// All operations are deterministic value transformations: fixed loop
// orders, no mutation of inputs, O(n³) worst case for product, echelon
// and inverse. Errors are package-level sentinels matched via errors.Is;
// malformed input never panics.
package matrix
