// SPDX-License-Identifier: MIT
// Package env: the insertion-ordered symbol store.

package env

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/number"
)

// Environment maps identifiers to values and exposes the built-in
// function table. Bindings enumerate in insertion order; rebinding a
// name keeps its original position. Not safe for concurrent use.
type Environment[T number.Number[T]] struct {
	names  []Identifier
	values map[string]Value[T]
	fns    map[string]Callable[T]
}

// NewEnvironment returns an empty environment with the built-in table
// installed.
func NewEnvironment[T number.Number[T]]() *Environment[T] {
	fns := make(map[string]Callable[T])
	for _, fn := range builtins[T]() {
		fns[fn.Name] = fn
	}
	return &Environment[T]{
		values: make(map[string]Value[T]),
		fns:    fns,
	}
}

// Insert binds v to id, overwriting any previous binding while keeping
// the identifier's enumeration position. The result identifier "$"
// and built-in function names cannot be bound.
//
// Errors:
//   - ErrReserved for "$" or a built-in name.
func (e *Environment[T]) Insert(id Identifier, v Value[T]) error {
	if id.IsResult() {
		return fmt.Errorf("%s: %w", id, ErrReserved)
	}
	if _, ok := e.fns[id.String()]; ok {
		return fmt.Errorf("%s: %w", id, ErrReserved)
	}
	e.setValue(id, v)
	return nil
}

// SetResult stores v under the reserved result identifier "$".
func (e *Environment[T]) SetResult(v Value[T]) {
	e.setValue(Result(), v)
}

// setValue is the unguarded write path shared by Insert and SetResult.
func (e *Environment[T]) setValue(id Identifier, v Value[T]) {
	if _, ok := e.values[id.String()]; !ok {
		e.names = append(e.names, id)
	}
	e.values[id.String()] = v
}

// Value looks up the binding of id; ok is false when id is unbound.
func (e *Environment[T]) Value(id Identifier) (Value[T], bool) {
	v, ok := e.values[id.String()]
	return v, ok
}

// Function looks up the built-in named by id; ok is false when id is
// not a built-in.
func (e *Environment[T]) Function(id Identifier) (Callable[T], bool) {
	fn, ok := e.fns[id.String()]
	return fn, ok
}

// Identifiers returns the bound identifiers in insertion order. The
// slice is a copy; mutating it does not affect the environment.
func (e *Environment[T]) Identifiers() []Identifier {
	out := make([]Identifier, len(e.names))
	copy(out, e.names)
	return out
}
