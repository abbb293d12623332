// SPDX-License-Identifier: MIT
// Package expr: the public entry points.

package expr

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/env"
	"github.com/katalvlaran/lvlmat/number"
)

// ParseExpression tokenizes, parses and evaluates one expression
// against e. The environment is read, never written.
//
// Errors:
//   - ErrLex, ErrSyntax, ErrUndefined, ErrTypeMismatch, ErrArithmetic,
//     plus matrix sentinels surfacing from matrix operators.
func ParseExpression[T number.Number[T]](input string, e *env.Environment[T]) (env.Value[T], error) {
	toks, err := tokenize[T](input)
	if err != nil {
		return env.Value[T]{}, err
	}
	queue, err := toPostfix(toks)
	if err != nil {
		return env.Value[T]{}, err
	}
	return evaluate(queue, e)
}

// ParseInstruction evaluates one instruction line against e:
// "identifier = expression" binds the result to the identifier, a
// bare expression stores its result under the reserved "$". The
// returned identifier names wherever the result landed.
//
// Errors:
//   - every ParseExpression error, plus ErrSyntax when the assignment
//     target is not a lone identifier and env.ErrReserved when it is
//     "$" or a built-in name.
func ParseInstruction[T number.Number[T]](input string, e *env.Environment[T]) (env.Identifier, error) {
	toks, err := tokenize[T](input)
	if err != nil {
		return env.Identifier{}, err
	}

	assign := -1
	for i, t := range toks {
		if t.kind == tokAssign {
			assign = i
			break
		}
	}

	if assign == -1 {
		queue, err := toPostfix(toks)
		if err != nil {
			return env.Identifier{}, err
		}
		v, err := evaluate(queue, e)
		if err != nil {
			return env.Identifier{}, err
		}
		e.SetResult(v)
		return env.Result(), nil
	}

	if assign != 1 || toks[0].kind != tokIdent {
		return env.Identifier{}, fmt.Errorf("assignment target must be a single identifier: %w", ErrSyntax)
	}
	target := toks[0].ident
	if target.IsResult() {
		return env.Identifier{}, fmt.Errorf("%s: %w", target, env.ErrReserved)
	}

	queue, err := toPostfix(toks[assign+1:])
	if err != nil {
		return env.Identifier{}, err
	}
	v, err := evaluate(queue, e)
	if err != nil {
		return env.Identifier{}, err
	}
	if err = e.Insert(target, v); err != nil {
		return env.Identifier{}, err
	}
	return target, nil
}
