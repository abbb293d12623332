// SPDX-License-Identifier: MIT
// Package matrix: checked elementwise and product arithmetic.
//
// Purpose:
//   - Declare the canonical checked kernels shared across the package.
//   - Define operation tags for uniform error wrapping.
//
// Notes:
//   - All kernels validate shapes before touching elements and fail the
//     whole operation on the first per-element failure, so no result is
//     ever partially computed.
//   - Results never carry a rendering separator.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing
// magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opNeg     = "Neg"
	opMul     = "Mul"
	opScale   = "Scale"
	opConcat  = "Concat"
	opSplit   = "Split"
	opEchelon = "Echelon"
	opInverse = "Inverse"
	opPow     = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is keeps matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkedZip applies a fallible element function across two same-shaped
// matrices in fixed i→j order. Shape mismatch is ErrDimensionMismatch;
// any per-element failure aborts with ErrArithmetic.
// Shared kernel for every binary elementwise operation.
func (m Matrix[T]) checkedZip(o Matrix[T], opTag string, f func(a, b T) (T, bool)) (Matrix[T], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Empty[T](), matrixErrorf(opTag, fmt.Errorf("%dx%d vs %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch))
	}
	grid := make([][]T, m.rows)
	var (
		i, j int
		ok   bool
	)
	for i = 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		for j = 0; j < m.cols; j++ {
			if row[j], ok = f(m.data[i][j], o.data[i][j]); !ok {
				return Empty[T](), matrixErrorf(opTag, fmt.Errorf("at (%d,%d): %w", i, j, ErrArithmetic))
			}
		}
		grid[i] = row
	}
	return fromGrid(grid, m.rows, m.cols, noSeparator), nil
}

// checkedApply applies a fallible element function to every element.
// Implemented as a zip of the matrix with itself, so one kernel carries
// both arities.
func (m Matrix[T]) checkedApply(opTag string, f func(a T) (T, bool)) (Matrix[T], error) {
	return m.checkedZip(m, opTag, func(a, _ T) (T, bool) { return f(a) })
}

// CheckedAdd returns the elementwise sum m+o.
//
// Errors:
//   - ErrDimensionMismatch (different shapes).
//   - ErrArithmetic (element overflow).
func (m Matrix[T]) CheckedAdd(o Matrix[T]) (Matrix[T], error) {
	return m.checkedZip(o, opAdd, func(a, b T) (T, bool) { return a.CheckedAdd(b) })
}

// CheckedSub returns the elementwise difference m-o.
//
// Errors:
//   - ErrDimensionMismatch (different shapes).
//   - ErrArithmetic (element overflow).
func (m Matrix[T]) CheckedSub(o Matrix[T]) (Matrix[T], error) {
	return m.checkedZip(o, opSub, func(a, b T) (T, bool) { return a.CheckedSub(b) })
}

// CheckedNeg returns the elementwise negation, computed as zero-minus
// so the same checked subtraction path covers MinInt64-style overflow.
func (m Matrix[T]) CheckedNeg() (Matrix[T], error) {
	return m.checkedApply(opNeg, func(a T) (T, bool) { return a.Zero().CheckedSub(a) })
}

// CheckedMulScalar scales every element by s.
//
// Errors:
//   - ErrArithmetic (element overflow).
func (m Matrix[T]) CheckedMulScalar(s T) (Matrix[T], error) {
	return m.checkedApply(opScale, func(a T) (T, bool) { return a.CheckedMul(s) })
}

// CheckedMul computes the standard matrix product m×o with a checked
// multiply-accumulate per cell.
//
// Implementation:
//   - Stage 1: validate inner dimensions (m.Cols == o.Rows).
//   - Stage 2: fixed i→j→k triple loop; each product and each running
//     sum goes through the element type's checked operations.
//
// Errors:
//   - ErrDimensionMismatch (inner dimension mismatch).
//   - ErrArithmetic (overflow in any product or accumulation).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func (m Matrix[T]) CheckedMul(o Matrix[T]) (Matrix[T], error) {
	if m.cols != o.rows {
		return Empty[T](), matrixErrorf(opMul, fmt.Errorf("%dx%d times %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch))
	}
	if m.rows == 0 || o.cols == 0 {
		return Empty[T](), nil
	}
	var zero T
	grid := make([][]T, m.rows)
	var (
		i, j, k   int
		acc, prod T
		ok        bool
	)
	for i = 0; i < m.rows; i++ {
		row := make([]T, o.cols)
		for j = 0; j < o.cols; j++ {
			acc = zero.Zero()
			for k = 0; k < m.cols; k++ {
				if prod, ok = m.data[i][k].CheckedMul(o.data[k][j]); !ok {
					return Empty[T](), matrixErrorf(opMul, fmt.Errorf("at (%d,%d) term %d: %w", i, j, k, ErrArithmetic))
				}
				if acc, ok = acc.CheckedAdd(prod); !ok {
					return Empty[T](), matrixErrorf(opMul, fmt.Errorf("at (%d,%d) term %d: %w", i, j, k, ErrArithmetic))
				}
			}
			row[j] = acc
		}
		grid[i] = row
	}
	return fromGrid(grid, m.rows, o.cols, noSeparator), nil
}

// Transpose returns mᵀ. Pure element movement, cannot fail.
func (m Matrix[T]) Transpose() Matrix[T] {
	if m.IsEmpty() {
		return Empty[T]()
	}
	grid := make([][]T, m.cols)
	for j := 0; j < m.cols; j++ {
		row := make([]T, m.rows)
		for i := 0; i < m.rows; i++ {
			row[i] = m.data[i][j]
		}
		grid[j] = row
	}
	return fromGrid(grid, m.cols, m.rows, noSeparator)
}

// isIdentity reports whether m is square with unit diagonal and zero
// elsewhere, using the element type's own queries.
func (m Matrix[T]) isIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if i == j && !m.data[i][j].IsOne() {
				return false
			}
			if i != j && !m.data[i][j].IsZero() {
				return false
			}
		}
	}
	return true
}
