// Package number defines the numeric capability set used by the lvlmat
// engine and the two element types that satisfy it.
//
// The number package provides:
//
//   - Number[T]: the generic constraint every matrix element type must
//     meet: checked (fallible) ring operations, sign queries, integer
//     conversions, and textual/LaTeX rendering.
//   - Rational: an exact fraction over int64, always stored reduced with
//     a positive denominator. The canonical element type of the calculator.
//   - Int: a checked 64-bit integer, handy for tests and integer-only
//     sessions.
//   - Pow: exponentiation by squaring over any Number, used for the
//     scalar `^` operator.
//
// Checked operations never panic and never wrap silently: on overflow or
// division by zero they report ok=false and the caller decides how to
// surface the failure.
package number
