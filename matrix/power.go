// SPDX-License-Identifier: MIT
// Package matrix: integer powers of square matrices.

package matrix

import "fmt"

// CheckedPow raises a square matrix to a non-negative integer power by
// binary exponentiation over checked matrix products.
//
// Behavior highlights:
//   - exp == 0 yields the identity of the same order, including for
//     the empty matrix (whose identity is itself).
//
// Errors:
//   - ErrNonSquare for a non-square receiver.
//   - ErrArithmetic when any intermediate product overflows.
//
// Complexity:
//   - Time O(n³·log exp), Space O(n²).
func (m Matrix[T]) CheckedPow(exp uint64) (Matrix[T], error) {
	if !m.IsSquare() {
		return Matrix[T]{}, matrixErrorf(opPow, fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare))
	}
	if m.IsEmpty() {
		return m, nil
	}

	acc, err := Identity[T](m.rows)
	if err != nil {
		return Matrix[T]{}, matrixErrorf(opPow, err)
	}
	base := m
	for exp > 0 {
		if exp&1 == 1 {
			if acc, err = acc.CheckedMul(base); err != nil {
				return Matrix[T]{}, matrixErrorf(opPow, err)
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = base.CheckedMul(base); err != nil {
				return Matrix[T]{}, matrixErrorf(opPow, err)
			}
		}
	}
	return acc, nil
}
