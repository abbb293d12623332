// SPDX-License-Identifier: MIT
// Package number: checked int64 primitives shared by Rational and Int.

package number

import "math"

// addInt64 returns a+b, ok=false on signed overflow.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s <= 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// subInt64 returns a-b, ok=false on signed overflow.
func subInt64(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}
	return d, true
}

// mulInt64 returns a*b, ok=false on signed overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// absUint64 returns |a| as an unsigned value; total, valid for MinInt64.
func absUint64(a int64) uint64 {
	if a >= 0 {
		return uint64(a)
	}
	return uint64(-(a + 1)) + 1
}

// gcdUint64 is the classic Euclid loop on unsigned magnitudes.
// gcd(0, x) = x by convention.
func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
