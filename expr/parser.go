// SPDX-License-Identifier: MIT
// Package expr: the shunting-yard parser.

package expr

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/number"
)

// Operator precedence levels. Unary operators outrank every binary
// operator, so "-2^2" negates before exponentiating.
const (
	precAdditive       = 1
	precMultiplicative = 2
	precExponent       = 3
	precUnary          = 4
)

// opEntry is an operator on the parser stack or in the postfix queue.
type opEntry struct {
	kind  tokenKind
	unary bool
}

// precedence returns the binding strength of the operator entry.
func (o opEntry) precedence() int {
	if o.unary {
		return precUnary
	}
	switch o.kind {
	case tokPlus, tokMinus:
		return precAdditive
	case tokStar, tokSlash:
		return precMultiplicative
	case tokCaret:
		return precExponent
	}
	panic("expr: precedence of a non-operator")
}

// rightAssociative reports whether equal precedence keeps the entry on
// the stack. Exponentiation chains to the right; unary operators stack
// freely; everything else folds left to right.
func (o opEntry) rightAssociative() bool {
	return o.unary || o.kind == tokCaret
}

// postfixItem is one element of the evaluation-ordered queue: either
// an operand token or an operator entry.
type postfixItem[T number.Number[T]] struct {
	operand token[T]
	op      opEntry
	isOp    bool
}

// prevClass tracks what the previous token was, for adjacency checks.
type prevClass uint8

const (
	prevStart   prevClass = iota // beginning of input or after '('
	prevOperand                  // number, identifier, or ')'
	prevOp                       // binary or unary operator
)

// toPostfix runs the shunting-yard algorithm over toks, validating
// every token against its left neighbor before accepting it.
//
// Implementation:
//   - Operators wait on a stack; operands go straight to the output
//     queue. An incoming operator first flushes stacked operators of
//     higher precedence (or equal, when left-associative), then takes
//     their place. '(' marks a flush barrier that ')' removes.
//   - A '+' or '-' after the start, an operator, or '(' is unary and
//     is pushed at unary precedence.
//
// Errors:
//   - ErrSyntax for illegal adjacency, an '=' inside the expression,
//     an unmatched bracket in either direction, or a trailing
//     operator.
func toPostfix[T number.Number[T]](toks []token[T]) ([]postfixItem[T], error) {
	var (
		out   []postfixItem[T]
		stack []opEntry
		prev  = prevStart
	)
	// depth counts open brackets; an opEntry with kind tokLParen is
	// the barrier marker on the stack.
	depth := 0

	for _, t := range toks {
		switch t.kind {
		case tokNumber, tokIdent:
			if prev == prevOperand {
				return nil, fmt.Errorf("%s at %d after an operand: %w", t.kind, t.pos, ErrSyntax)
			}
			out = append(out, postfixItem[T]{operand: t})
			prev = prevOperand

		case tokPlus, tokMinus:
			entry := opEntry{kind: t.kind, unary: prev != prevOperand}
			stack = flush(stack, entry, &out)
			stack = append(stack, entry)
			prev = prevOp

		case tokStar, tokSlash, tokCaret:
			if prev != prevOperand {
				return nil, fmt.Errorf("%s at %d with no left operand: %w", t.kind, t.pos, ErrSyntax)
			}
			entry := opEntry{kind: t.kind}
			stack = flush(stack, entry, &out)
			stack = append(stack, entry)
			prev = prevOp

		case tokAssign:
			return nil, fmt.Errorf(`"=" at %d inside an expression: %w`, t.pos, ErrSyntax)

		case tokLParen:
			if prev == prevOperand {
				return nil, fmt.Errorf(`"(" at %d after an operand: %w`, t.pos, ErrSyntax)
			}
			stack = append(stack, opEntry{kind: tokLParen})
			depth++
			prev = prevStart

		case tokRParen:
			if depth == 0 {
				return nil, fmt.Errorf(`unmatched ")" at %d: %w`, t.pos, ErrSyntax)
			}
			if prev != prevOperand {
				return nil, fmt.Errorf(`")" at %d with no operand before it: %w`, t.pos, ErrSyntax)
			}
			for stack[len(stack)-1].kind != tokLParen {
				out = append(out, postfixItem[T]{op: stack[len(stack)-1], isOp: true})
				stack = stack[:len(stack)-1]
			}
			stack = stack[:len(stack)-1]
			depth--
			prev = prevOperand
		}
	}

	if prev != prevOperand {
		return nil, fmt.Errorf("expression ends without an operand: %w", ErrSyntax)
	}
	if depth != 0 {
		return nil, fmt.Errorf(`unmatched "(": %w`, ErrSyntax)
	}
	for len(stack) > 0 {
		out = append(out, postfixItem[T]{op: stack[len(stack)-1], isOp: true})
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// flush pops stacked operators that bind at least as tight as the
// incoming entry (strictly tighter when the entry is
// right-associative) into the output queue, stopping at a bracket
// barrier.
func flush[T number.Number[T]](stack []opEntry, incoming opEntry, out *[]postfixItem[T]) []opEntry {
	p := incoming.precedence()
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind == tokLParen {
			break
		}
		tp := top.precedence()
		if tp < p || (tp == p && incoming.rightAssociative()) {
			break
		}
		*out = append(*out, postfixItem[T]{op: top, isOp: true})
		stack = stack[:len(stack)-1]
	}
	return stack
}
