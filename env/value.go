// SPDX-License-Identifier: MIT
// Package env: the scalar/matrix value union.

package env

import (
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// Kind discriminates the two shapes a Value can take.
type Kind uint8

const (
	// KindScalar marks a single numeric value.
	KindScalar Kind = iota
	// KindMatrix marks a matrix value.
	KindMatrix
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	if k == KindScalar {
		return "scalar"
	}
	return "matrix"
}

// Value is a tagged union holding either a scalar or a matrix. The
// zero value is the scalar zero of T.
type Value[T number.Number[T]] struct {
	kind   Kind
	scalar T
	matrix matrix.Matrix[T]
}

// Scalar wraps a scalar into a Value.
func Scalar[T number.Number[T]](s T) Value[T] {
	return Value[T]{kind: KindScalar, scalar: s}
}

// FromMatrix wraps a matrix into a Value.
func FromMatrix[T number.Number[T]](m matrix.Matrix[T]) Value[T] {
	return Value[T]{kind: KindMatrix, matrix: m}
}

// Kind returns the discriminator of v.
func (v Value[T]) Kind() Kind {
	return v.kind
}

// AsScalar unwraps a scalar value; ok is false for a matrix.
func (v Value[T]) AsScalar() (T, bool) {
	if v.kind != KindScalar {
		var zero T
		return zero.Zero(), false
	}
	return v.scalar, true
}

// AsMatrix unwraps a matrix value; ok is false for a scalar.
func (v Value[T]) AsMatrix() (matrix.Matrix[T], bool) {
	if v.kind != KindMatrix {
		return matrix.Matrix[T]{}, false
	}
	return v.matrix, true
}

// String renders the value in plain text: the scalar's own rendering,
// or the bracketed row list of a matrix.
func (v Value[T]) String() string {
	if v.kind == KindScalar {
		return v.scalar.String()
	}
	return v.matrix.String()
}

// LaTeX renders the value as a LaTeX fragment.
func (v Value[T]) LaTeX() string {
	if v.kind == KindScalar {
		return v.scalar.LaTeX()
	}
	return v.matrix.ToLaTeX()
}

// LaTeXSingle renders the value for embedding into a larger
// expression: negative scalars come out parenthesized.
func (v Value[T]) LaTeXSingle() string {
	if v.kind == KindScalar {
		return v.scalar.LaTeXSingle()
	}
	return v.matrix.ToLaTeXSingle()
}
