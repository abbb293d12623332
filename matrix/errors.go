// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation may panic on
// user-triggered error conditions; panics are reserved for violated
// internal invariants in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Context is added at operation
// boundaries via fmt.Errorf("Op: %w", ErrX); callers still match with
// errors.Is.

var (
	// ErrNonRectangular is returned by constructors when rows have
	// differing lengths. Construction entry points validate this
	// eagerly; it can never surface from a use site.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions, or FromVector with rows*cols != len(v)).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index (row, column, or split boundary)
	// outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// elementwise ops on different shapes, a product with a.Cols !=
	// b.Rows, or a concat with differing row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrArithmetic indicates a checked element operation failed:
	// overflow or division by zero inside the numeric type.
	ErrArithmetic = errors.New("matrix: checked arithmetic failed")

	// ErrNonSquare signals that a square matrix was required (power,
	// inverse) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion meets a non-invertible
	// matrix: the left half of the reduced [A|I] is not the identity.
	ErrSingular = errors.New("matrix: singular matrix")
)
