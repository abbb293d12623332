// SPDX-License-Identifier: MIT
// Package matrix: horizontal concatenation and splitting.
// These build and tear down augmented matrices for inversion; the
// separator they manage is a rendering concern only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/number"
)

// ConcatHorizontal joins a and b side by side: the result has a's rows
// and a.Cols+b.Cols columns, and carries a separator at a.Cols so LaTeX
// rendering shows the augmented boundary.
//
// Errors:
//   - ErrDimensionMismatch when row counts differ.
//
// Either operand may be empty; concatenating two empty matrices yields
// the empty matrix (no separator).
func ConcatHorizontal[T number.Number[T]](a, b Matrix[T]) (Matrix[T], error) {
	if a.IsEmpty() && b.IsEmpty() {
		return Empty[T](), nil
	}
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.rows != b.rows {
		return Empty[T](), matrixErrorf(opConcat, fmt.Errorf("%d vs %d rows: %w", a.rows, b.rows, ErrDimensionMismatch))
	}
	cols := a.cols + b.cols
	grid := make([][]T, a.rows)
	for i := 0; i < a.rows; i++ {
		row := make([]T, 0, cols)
		row = append(row, a.data[i]...)
		row = append(row, b.data[i]...)
		grid[i] = row
	}
	return fromGrid(grid, a.rows, cols, a.cols), nil
}

// SplitHorizontal divides m at column boundary at: the left part keeps
// columns [0,at), the right part the rest. Both halves drop the
// rendering separator.
//
// Errors:
//   - ErrOutOfRange unless 0 <= at <= Cols.
func (m Matrix[T]) SplitHorizontal(at int) (left, right Matrix[T], err error) {
	if at < 0 || at > m.cols {
		return Empty[T](), Empty[T](), matrixErrorf(opSplit, fmt.Errorf("boundary %d of %d columns: %w", at, m.cols, ErrOutOfRange))
	}
	lGrid := make([][]T, m.rows)
	rGrid := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		lRow := make([]T, at)
		copy(lRow, m.data[i][:at])
		rRow := make([]T, m.cols-at)
		copy(rRow, m.data[i][at:])
		lGrid[i] = lRow
		rGrid[i] = rRow
	}
	return fromGrid(lGrid, m.rows, at, noSeparator), fromGrid(rGrid, m.rows, m.cols-at, noSeparator), nil
}
