// SPDX-License-Identifier: MIT
// Package matrix: inversion through augmented echelon reduction.

package matrix

import "fmt"

// Inverse computes the multiplicative inverse of a square matrix,
// returning the inverse together with the echelon derivation of the
// augmented system [m | I].
//
// Implementation:
//   - Stage 1: adjoin the identity on the right, with the augmentation
//     separator placed between the two blocks.
//   - Stage 2: reduce the augmented matrix to reduced row echelon form.
//   - Stage 3: split at the separator; the matrix is invertible exactly
//     when the left block reduced to the identity, in which case the
//     right block is the inverse.
//
// The trace covers the whole augmented reduction, so every step renders
// both blocks side by side. The empty matrix is its own inverse with an
// empty trace.
//
// Errors:
//   - ErrNonSquare for a non-square receiver.
//   - ErrSingular when the left block fails to reach the identity.
//   - ErrArithmetic when the underlying reduction overflows.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m Matrix[T]) Inverse() (Aftermath[T], error) {
	if !m.IsSquare() {
		return Aftermath[T]{}, matrixErrorf(opInverse, fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare))
	}
	if m.IsEmpty() {
		return Aftermath[T]{Result: m}, nil
	}

	id, err := Identity[T](m.rows)
	if err != nil {
		return Aftermath[T]{}, matrixErrorf(opInverse, err)
	}
	augmented, err := ConcatHorizontal(m, id)
	if err != nil {
		return Aftermath[T]{}, matrixErrorf(opInverse, err)
	}

	reduced, err := augmented.Echelon()
	if err != nil {
		return Aftermath[T]{}, err
	}

	left, right, err := reduced.Result.SplitHorizontal(m.cols)
	if err != nil {
		return Aftermath[T]{}, matrixErrorf(opInverse, err)
	}
	if !left.isIdentity() {
		return Aftermath[T]{}, matrixErrorf(opInverse, fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrSingular))
	}

	return Aftermath[T]{Result: right, Steps: reduced.Steps}, nil
}
