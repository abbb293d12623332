// SPDX-License-Identifier: MIT
// Package expr: sentinel error set (unified, consistent).
// All parse and evaluation failures wrap one of these sentinels (or a
// matrix package sentinel surfacing through an operator); tests match
// them via errors.Is. Malformed input never panics.

package expr

import "errors"

var (
	// ErrLex is returned by the tokenizer: an unexpected character, a
	// malformed identifier, or an integer literal that does not fit
	// the numeric type.
	ErrLex = errors.New("expr: lexical error")

	// ErrSyntax is returned by the parser: illegal token adjacency, a
	// bracket mismatch, or an assignment operator inside an
	// expression.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUndefined is returned when an expression references an
	// identifier with no binding in the environment.
	ErrUndefined = errors.New("expr: undefined identifier")

	// ErrTypeMismatch is returned when an operator is applied to a
	// scalar/matrix combination it does not define.
	ErrTypeMismatch = errors.New("expr: type mismatch")

	// ErrArithmetic is returned when a checked scalar operation fails:
	// overflow, division by zero, or a negative or fractional
	// exponent.
	ErrArithmetic = errors.New("expr: checked arithmetic failed")
)
