// SPDX-License-Identifier: MIT
// Package matrix: core value types and shape accessors.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmat/number"
)

// noSeparator marks a matrix without an augmented-rendering boundary.
const noSeparator = -1

// Matrix is an immutable rectangular grid over a checked numeric
// element type. The canonical empty matrix has shape (0,0) regardless
// of how emptiness arose; every constructor enforces rectangular rows.
//
// sep is the optional separator column index used purely for
// augmented-matrix rendering (see ConcatHorizontal); it has no
// arithmetic meaning and arithmetic results never carry one.
//
// All operations return new Matrix values; the receiver is never
// mutated.
type Matrix[T number.Number[T]] struct {
	data [][]T
	rows int
	cols int
	sep  int
}

// Aftermath bundles the final matrix of a multi-step transformation
// with the ordered, rendered derivation trail. For a non-empty input
// Steps[0] is the initial matrix's rendering and the last entry shows
// the final form.
type Aftermath[T number.Number[T]] struct {
	Result Matrix[T]
	Steps  []string
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// IsEmpty reports whether the matrix is the canonical (0,0) matrix.
func (m Matrix[T]) IsEmpty() bool { return m.rows == 0 }

// IsSquare reports rows == cols (true for the empty matrix).
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Separator returns the augmented-rendering column boundary and whether
// one is set.
func (m Matrix[T]) Separator() (int, bool) {
	if m.sep == noSeparator {
		return 0, false
	}
	return m.sep, true
}

// At returns the element at (i, j) or ErrOutOfRange.
func (m Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return m.data[i][j], nil
}

// Data returns a deep copy of the element grid; mutating it does not
// affect the matrix.
func (m Matrix[T]) Data() [][]T {
	return m.cloneData()
}

// Equal reports exact elementwise equality of shape and content.
// The rendering-only separator is ignored.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j] != o.data[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders rows as "[1 2; 3 4]" for host display and debugging.
func (m Matrix[T]) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	rows := make([]string, m.rows)
	cells := make([]string, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cells[j] = m.data[i][j].String()
		}
		rows[i] = strings.Join(cells, " ")
	}
	return "[" + strings.Join(rows, "; ") + "]"
}

// cloneData deep-copies the element grid.
func (m Matrix[T]) cloneData() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i])
		out[i] = row
	}
	return out
}
