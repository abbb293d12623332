// SPDX-License-Identifier: MIT
// Package number: the Number capability constraint and generic helpers.

package number

// Number is the capability set required of a matrix element type T.
//
// It is a type-parameter constraint, not a runtime interface: Matrix[T],
// Value[T] and the expression evaluator are all written generically
// against it. Implementations must be immutable value types;
// operation returns a new value.
//
// The checked quartet (CheckedAdd/Sub/Mul/Div) reports ok=false on
// overflow or division by zero instead of wrapping or panicking.
// Zero and One are constant constructors and may be called on any
// receiver, including the zero value. FromUint converts an unsigned
// integer literal (ok=false when the literal does not fit). Int converts
// an integer-valued element to a machine integer (ok=false otherwise);
// the evaluator needs it for exponents.
//
// LaTeX renders the canonical form. LaTeXSingle renders the value as a
// standalone factor, parenthesizing anything that is not strictly
// positive so that derivation steps like "w_2 : (-1/2)" stay unambiguous.
type Number[T any] interface {
	comparable

	CheckedAdd(other T) (T, bool)
	CheckedSub(other T) (T, bool)
	CheckedMul(other T) (T, bool)
	CheckedDiv(other T) (T, bool)

	Zero() T
	One() T

	IsZero() bool
	IsOne() bool
	IsPositive() bool
	IsNegative() bool

	FromUint(v uint64) (T, bool)
	Int() (int64, bool)

	String() string
	LaTeX() string
	LaTeXSingle() string
}

// Pow computes x**n by exponentiation by squaring, performing O(log n)
// checked multiplications. n == 0 yields One. Reports ok=false as soon
// as any intermediate product overflows.
//
// Determinism:
//   - Fixed square-and-multiply order; no data-dependent reassociation.
//
// Complexity:
//   - Time O(log n) multiplications, Space O(1).
func Pow[T Number[T]](x T, n uint64) (T, bool) {
	acc := x.One()
	base := x
	var ok bool
	for n > 0 {
		if n&1 == 1 {
			if acc, ok = acc.CheckedMul(base); !ok {
				return x.Zero(), false
			}
		}
		n >>= 1
		if n > 0 {
			if base, ok = base.CheckedMul(base); !ok {
				return x.Zero(), false
			}
		}
	}
	return acc, true
}
