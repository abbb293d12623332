// SPDX-License-Identifier: MIT
// Package env: validated symbol names.

package env

import (
	"fmt"
	"unicode"
)

// resultName is the reserved identifier that always holds the value of
// the most recent evaluation. It is not spellable through
// NewIdentifier; only Result constructs it.
const resultName = "$"

// Identifier is a validated symbol name. The zero value is not valid;
// identifiers are obtained from NewIdentifier or Result.
type Identifier struct {
	name string
}

// NewIdentifier validates name and wraps it. A valid identifier starts
// with a Unicode letter or underscore and continues with letters,
// digits and underscores only.
//
// Errors:
//   - ErrInvalidIdentifier when name is empty or malformed.
func NewIdentifier(name string) (Identifier, error) {
	if name == "" {
		return Identifier{}, fmt.Errorf("%q: %w", name, ErrInvalidIdentifier)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return Identifier{}, fmt.Errorf("%q: %w", name, ErrInvalidIdentifier)
	}
	return Identifier{name: name}, nil
}

// Result returns the reserved identifier "$".
func Result() Identifier {
	return Identifier{name: resultName}
}

// IsResult reports whether id is the reserved result identifier.
func (id Identifier) IsResult() bool {
	return id.name == resultName
}

// String returns the identifier text.
func (id Identifier) String() string {
	return id.name
}
