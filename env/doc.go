// Package env provides the symbol environment of the calculator: the
// mapping from identifiers to stored values and built-in functions.
//
// What you get:
//
//   - Identifier: a validated symbol name, plus the reserved result
//     name "$" that always holds the last evaluation.
//   - Value[T]: a tagged union of a scalar and a matrix over any
//     number.Number element type.
//   - Environment[T]: an insertion-ordered store of named values with
//     a fixed table of built-in functions (transpose, identity,
//     inverse).
//
// The environment never evaluates anything on its own; the expr
// package drives it.
package env
