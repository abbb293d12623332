// SPDX-License-Identifier: MIT
// Package number: the checked Int element type.

package number

import (
	"fmt"
	"math"
)

// Int is a checked 64-bit signed integer satisfying Number[Int].
// Division is truncating (like Go's /) and fails on a zero divisor or
// on the MinInt64 / -1 overflow. Primarily an element type for tests
// and integer-only sessions; the calculator's canonical type is
// Rational.
type Int int64

// CheckedAdd returns i+o, ok=false on overflow.
func (i Int) CheckedAdd(o Int) (Int, bool) {
	s, ok := addInt64(int64(i), int64(o))
	return Int(s), ok
}

// CheckedSub returns i-o, ok=false on overflow.
func (i Int) CheckedSub(o Int) (Int, bool) {
	d, ok := subInt64(int64(i), int64(o))
	return Int(d), ok
}

// CheckedMul returns i*o, ok=false on overflow.
func (i Int) CheckedMul(o Int) (Int, bool) {
	p, ok := mulInt64(int64(i), int64(o))
	return Int(p), ok
}

// CheckedDiv returns the truncated quotient i/o, ok=false when o == 0
// or for MinInt64 / -1.
func (i Int) CheckedDiv(o Int) (Int, bool) {
	if o == 0 {
		return 0, false
	}
	if int64(i) == math.MinInt64 && o == -1 {
		return 0, false
	}
	return i / o, true
}

// Zero returns 0.
func (Int) Zero() Int { return 0 }

// One returns 1.
func (Int) One() Int { return 1 }

// IsZero reports i == 0.
func (i Int) IsZero() bool { return i == 0 }

// IsOne reports i == 1.
func (i Int) IsOne() bool { return i == 1 }

// IsPositive reports i > 0.
func (i Int) IsPositive() bool { return i > 0 }

// IsNegative reports i < 0.
func (i Int) IsNegative() bool { return i < 0 }

// FromUint converts an unsigned literal; ok=false when v does not fit.
func (Int) FromUint(v uint64) (Int, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return Int(v), true
}

// Int returns the machine integer value.
func (i Int) Int() (int64, bool) { return int64(i), true }

// String renders the decimal numeral.
func (i Int) String() string { return fmt.Sprintf("%d", int64(i)) }

// LaTeX renders the decimal numeral (integers are their own LaTeX).
func (i Int) LaTeX() string { return i.String() }

// LaTeXSingle parenthesizes non-positive values used as factors.
func (i Int) LaTeXSingle() string {
	if i.IsPositive() {
		return i.LaTeX()
	}
	return fmt.Sprintf(`\left(%s\right)`, i.LaTeX())
}
