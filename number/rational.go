// SPDX-License-Identifier: MIT
// Package number: the exact Rational element type.

package number

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroDenominator is returned by NewRational when den == 0.
var ErrZeroDenominator = errors.New("number: zero denominator")

// ErrRange is returned by NewRational when the reduced value does not
// fit the int64 numerator/denominator pair (only reachable for
// math.MinInt64 inputs whose sign must flip).
var ErrRange = errors.New("number: value out of range")

// Rational is an exact fraction over int64.
//
// Invariants (maintained by every constructor and operation):
//   - stored in lowest terms: gcd(|num|, den) == 1;
//   - den >= 1: the sign lives in the numerator.
//
// The zero value behaves as 0; all other values must come from
// NewRational, FromInt, FromUint or an arithmetic operation.
// Rational is a comparable value type: == on two canonical values is
// exact numeric equality.
type Rational struct {
	num, den int64
}

// NewRational builds the reduced, sign-normalized fraction num/den.
// Fails with ErrZeroDenominator when den == 0 and with ErrRange in the
// corner cases where normalization overflows int64.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	r, ok := reduce(num, den)
	if !ok {
		return Rational{}, ErrRange
	}
	return r, nil
}

// FromInt wraps an integer as the fraction v/1.
func FromInt(v int64) Rational {
	return Rational{num: v, den: 1}
}

// split returns the numerator/denominator pair, mapping the zero value
// onto the canonical 0/1.
func (r Rational) split() (int64, int64) {
	if r.den == 0 {
		return r.num, 1
	}
	return r.num, r.den
}

// reduce canonicalizes num/den (den != 0): divides by the gcd and moves
// the sign into the numerator. ok=false when the result does not fit.
func reduce(num, den int64) (Rational, bool) {
	if num == 0 {
		return Rational{num: 0, den: 1}, true
	}
	negative := (num < 0) != (den < 0)
	un, ud := absUint64(num), absUint64(den)
	g := gcdUint64(un, ud)
	un /= g
	ud /= g
	if ud > math.MaxInt64 {
		return Rational{}, false
	}
	if negative {
		// |MinInt64| is representable as a negative numerator.
		if un > uint64(math.MaxInt64)+1 {
			return Rational{}, false
		}
		if un == uint64(math.MaxInt64)+1 {
			return Rational{num: math.MinInt64, den: int64(ud)}, true
		}
		return Rational{num: -int64(un), den: int64(ud)}, true
	}
	if un > math.MaxInt64 {
		return Rational{}, false
	}
	return Rational{num: int64(un), den: int64(ud)}, true
}

// Num returns the (signed) numerator of the canonical form.
func (r Rational) Num() int64 { n, _ := r.split(); return n }

// Den returns the (positive) denominator of the canonical form.
func (r Rational) Den() int64 { _, d := r.split(); return d }

// CheckedAdd returns r+o, ok=false on int64 overflow.
func (r Rational) CheckedAdd(o Rational) (Rational, bool) {
	rn, rd := r.split()
	on, od := o.split()
	left, ok := mulInt64(rn, od)
	if !ok {
		return Rational{}, false
	}
	right, ok := mulInt64(on, rd)
	if !ok {
		return Rational{}, false
	}
	num, ok := addInt64(left, right)
	if !ok {
		return Rational{}, false
	}
	den, ok := mulInt64(rd, od)
	if !ok {
		return Rational{}, false
	}
	return reduce(num, den)
}

// CheckedSub returns r-o, ok=false on int64 overflow.
func (r Rational) CheckedSub(o Rational) (Rational, bool) {
	rn, rd := r.split()
	on, od := o.split()
	left, ok := mulInt64(rn, od)
	if !ok {
		return Rational{}, false
	}
	right, ok := mulInt64(on, rd)
	if !ok {
		return Rational{}, false
	}
	num, ok := subInt64(left, right)
	if !ok {
		return Rational{}, false
	}
	den, ok := mulInt64(rd, od)
	if !ok {
		return Rational{}, false
	}
	return reduce(num, den)
}

// CheckedMul returns r*o, ok=false on int64 overflow.
//
// Operands are cross-reduced first (gcd of each numerator with the
// opposite denominator) so products like (3/7)*(7/3) never overflow
// through an unreduced intermediate.
func (r Rational) CheckedMul(o Rational) (Rational, bool) {
	rn, rd := r.split()
	on, od := o.split()
	if g := gcdUint64(absUint64(rn), absUint64(od)); g > 1 {
		rn /= int64(g)
		od /= int64(g)
	}
	if g := gcdUint64(absUint64(on), absUint64(rd)); g > 1 {
		on /= int64(g)
		rd /= int64(g)
	}
	num, ok := mulInt64(rn, on)
	if !ok {
		return Rational{}, false
	}
	den, ok := mulInt64(rd, od)
	if !ok {
		return Rational{}, false
	}
	return reduce(num, den)
}

// CheckedDiv returns r/o, ok=false when o is zero or on overflow.
func (r Rational) CheckedDiv(o Rational) (Rational, bool) {
	if o.IsZero() {
		return Rational{}, false
	}
	on, od := o.split()
	return r.CheckedMul(Rational{num: od, den: on})
}

// Zero returns the additive identity 0/1.
func (Rational) Zero() Rational { return Rational{num: 0, den: 1} }

// One returns the multiplicative identity 1/1.
func (Rational) One() Rational { return Rational{num: 1, den: 1} }

// IsZero reports whether the value equals 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsOne reports whether the value equals 1.
func (r Rational) IsOne() bool { return r.num == 1 && r.Den() == 1 }

// IsPositive reports num > 0.
func (r Rational) IsPositive() bool { return r.num > 0 }

// IsNegative reports num < 0.
func (r Rational) IsNegative() bool { return r.num < 0 }

// FromUint converts an unsigned integer literal; ok=false when v does
// not fit a signed numerator.
func (Rational) FromUint(v uint64) (Rational, bool) {
	if v > math.MaxInt64 {
		return Rational{}, false
	}
	return Rational{num: int64(v), den: 1}, true
}

// Int converts an integer-valued Rational to int64; ok=false for proper
// fractions.
func (r Rational) Int() (int64, bool) {
	n, d := r.split()
	if d != 1 {
		return 0, false
	}
	return n, true
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	n, d := r.split()
	if d == 1 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d/%d", n, d)
}

// LaTeX renders integers as a bare numeral and proper fractions as
// \frac{...}{...} with the sign hoisted in front.
func (r Rational) LaTeX() string {
	n, d := r.split()
	if d == 1 {
		return fmt.Sprintf("%d", n)
	}
	sign := ""
	if n < 0 {
		sign = "-"
	}
	return fmt.Sprintf(`%s\frac{%d}{%d}`, sign, absUint64(n), d)
}

// LaTeXSingle renders the value as a factor: strictly positive values
// stay bare, everything else (negatives and zero) is parenthesized.
func (r Rational) LaTeXSingle() string {
	if r.IsPositive() {
		return r.LaTeX()
	}
	return fmt.Sprintf(`\left(%s\right)`, r.LaTeX())
}
