// SPDX-License-Identifier: MIT
// Package env: sentinel error set (unified, consistent).
// All operations return these sentinels wrapped with context; tests
// match them via errors.Is.

package env

import "errors"

var (
	// ErrInvalidIdentifier is returned by NewIdentifier when the name
	// does not start with a letter or underscore, or contains a
	// character other than letters, digits and underscores.
	ErrInvalidIdentifier = errors.New("env: invalid identifier")

	// ErrReserved is returned on an attempt to bind a value to the
	// result name "$" or to a built-in function name. Lookups that
	// miss report false instead; the caller decides how to surface
	// an unknown name.
	ErrReserved = errors.New("env: identifier is reserved")

	// ErrBadArgument is returned by a built-in function when the
	// argument has the wrong kind or lies outside the function's
	// domain (identity of a matrix, identity of a negative size).
	ErrBadArgument = errors.New("env: bad builtin argument")
)
