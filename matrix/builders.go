// SPDX-License-Identifier: MIT
// Package matrix: validated construction and factory helpers.
// Every entry point routes through the same rectangularity validation
// and shape canonicalization; emptiness is always normalized to (0,0).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/number"
)

// New builds a matrix from a row-major grid.
//
// Validation:
//   - every row must have the same length (ErrNonRectangular);
//   - zero rows, or rows of width zero, canonicalize to the (0,0)
//     empty matrix.
//
// The grid is deep-copied; the caller keeps ownership of data.
func New[T number.Number[T]](data [][]T) (Matrix[T], error) {
	rows := len(data)
	if rows == 0 {
		return Empty[T](), nil
	}
	cols := len(data[0])
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return Empty[T](), fmt.Errorf("New: row %d: %w", i, ErrNonRectangular)
		}
	}
	if cols == 0 {
		return Empty[T](), nil
	}
	grid := make([][]T, rows)
	for i := 0; i < rows; i++ {
		row := make([]T, cols)
		copy(row, data[i])
		grid[i] = row
	}
	return Matrix[T]{data: grid, rows: rows, cols: cols, sep: noSeparator}, nil
}

// Empty returns the canonical (0,0) matrix.
func Empty[T number.Number[T]]() Matrix[T] {
	return Matrix[T]{sep: noSeparator}
}

// Filled builds an r×c matrix whose element at (i, j) is supply(i, j).
// Negative dimensions are ErrBadShape; r == 0 or c == 0 yields the
// empty matrix.
func Filled[T number.Number[T]](r, c int, supply func(i, j int) T) (Matrix[T], error) {
	if r < 0 || c < 0 {
		return Empty[T](), fmt.Errorf("Filled: %dx%d: %w", r, c, ErrBadShape)
	}
	if r == 0 || c == 0 {
		return Empty[T](), nil
	}
	grid := make([][]T, r)
	for i := 0; i < r; i++ {
		row := make([]T, c)
		for j := 0; j < c; j++ {
			row[j] = supply(i, j)
		}
		grid[i] = row
	}
	return Matrix[T]{data: grid, rows: r, cols: c, sep: noSeparator}, nil
}

// Zeros builds an r×c matrix of additive identities.
func Zeros[T number.Number[T]](r, c int) (Matrix[T], error) {
	var zero T
	return Filled(r, c, func(int, int) T { return zero.Zero() })
}

// Ones builds an r×c matrix of multiplicative identities.
func Ones[T number.Number[T]](r, c int) (Matrix[T], error) {
	var zero T
	return Filled(r, c, func(int, int) T { return zero.One() })
}

// Identity builds the n×n identity matrix.
func Identity[T number.Number[T]](n int) (Matrix[T], error) {
	var zero T
	return Filled(n, n, func(i, j int) T {
		if i == j {
			return zero.One()
		}
		return zero.Zero()
	})
}

// FromVector reshapes a flat row-major slice into an r×c matrix.
// len(v) must equal r*c (ErrBadShape otherwise).
func FromVector[T number.Number[T]](v []T, r, c int) (Matrix[T], error) {
	if r < 0 || c < 0 || len(v) != r*c {
		return Empty[T](), fmt.Errorf("FromVector: %d elements into %dx%d: %w", len(v), r, c, ErrBadShape)
	}
	return Filled(r, c, func(i, j int) T { return v[i*c+j] })
}

// fromGrid wraps an already-validated grid without copying.
// Internal fast path; callers guarantee rectangularity and shape.
func fromGrid[T number.Number[T]](grid [][]T, rows, cols, sep int) Matrix[T] {
	if rows == 0 || cols == 0 {
		return Empty[T]()
	}
	return Matrix[T]{data: grid, rows: rows, cols: cols, sep: sep}
}
