// SPDX-License-Identifier: MIT
// Package env: the built-in function table.

package env

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// Callable is a built-in unary function over values. Built-ins are
// fixed at environment construction; their names cannot be rebound.
type Callable[T number.Number[T]] struct {
	// Name is the identifier the function is invoked by.
	Name string
	// Apply evaluates the function on one argument.
	Apply func(Value[T]) (Value[T], error)
}

// builtins constructs the fixed function table. Kept as a function
// rather than a package variable because the table is generic in T.
func builtins[T number.Number[T]]() []Callable[T] {
	return []Callable[T]{
		{Name: "transpose", Apply: applyTranspose[T]},
		{Name: "identity", Apply: applyIdentity[T]},
		{Name: "inverse", Apply: applyInverse[T]},
	}
}

// applyTranspose flips a matrix across its main diagonal. A scalar is
// its own transpose.
func applyTranspose[T number.Number[T]](v Value[T]) (Value[T], error) {
	if m, ok := v.AsMatrix(); ok {
		return FromMatrix(m.Transpose()), nil
	}
	return v, nil
}

// applyIdentity builds the n-by-n identity from a non-negative integer
// scalar n.
func applyIdentity[T number.Number[T]](v Value[T]) (Value[T], error) {
	s, ok := v.AsScalar()
	if !ok {
		return Value[T]{}, fmt.Errorf("identity of a %s: %w", v.Kind(), ErrBadArgument)
	}
	n, ok := s.Int()
	if !ok || n < 0 {
		return Value[T]{}, fmt.Errorf("identity of %s: %w", s, ErrBadArgument)
	}
	id, err := matrix.Identity[T](int(n))
	if err != nil {
		return Value[T]{}, fmt.Errorf("identity of %s: %w", s, ErrBadArgument)
	}
	return FromMatrix(id), nil
}

// applyInverse inverts the argument: the multiplicative inverse of a
// matrix, the reciprocal of a scalar.
func applyInverse[T number.Number[T]](v Value[T]) (Value[T], error) {
	if m, ok := v.AsMatrix(); ok {
		inv, err := m.Inverse()
		if err != nil {
			return Value[T]{}, err
		}
		return FromMatrix(inv.Result), nil
	}
	s, _ := v.AsScalar()
	r, ok := s.One().CheckedDiv(s)
	if !ok {
		return Value[T]{}, fmt.Errorf("inverse of %s: %w", s, ErrBadArgument)
	}
	return Scalar(r), nil
}
