// SPDX-License-Identifier: MIT
// Package expr: the postfix evaluator.

package expr

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/env"
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// evaluate folds an evaluation-ordered queue into a single value,
// resolving identifiers against e and dispatching each operator on the
// scalar/matrix kinds of its operands.
//
// Errors:
//   - ErrUndefined for an unbound identifier.
//   - ErrTypeMismatch for a scalar/matrix combination the operator
//     does not define.
//   - ErrArithmetic for a failed checked scalar operation.
//   - matrix sentinels (ErrDimensionMismatch, ErrArithmetic,
//     ErrNonSquare) surface unchanged from matrix operators.
func evaluate[T number.Number[T]](queue []postfixItem[T], e *env.Environment[T]) (env.Value[T], error) {
	var stack []env.Value[T]
	for _, item := range queue {
		if !item.isOp {
			v, err := operandValue(item.operand, e)
			if err != nil {
				return env.Value[T]{}, err
			}
			stack = append(stack, v)
			continue
		}

		var (
			res env.Value[T]
			err error
		)
		if item.op.unary {
			// The parser guarantees the operand count; a short stack
			// is a violated internal invariant.
			if len(stack) < 1 {
				panic("expr: unary operator with an empty stack")
			}
			res, err = applyUnary(item.op.kind, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		} else {
			if len(stack) < 2 {
				panic("expr: binary operator with a short stack")
			}
			res, err = applyBinary(item.op.kind, stack[len(stack)-2], stack[len(stack)-1])
			stack = stack[:len(stack)-2]
		}
		if err != nil {
			return env.Value[T]{}, err
		}
		stack = append(stack, res)
	}

	if len(stack) != 1 {
		panic("expr: evaluation left more than one value")
	}
	return stack[0], nil
}

// operandValue turns an operand token into a value: a literal wraps
// into a scalar, an identifier resolves against the environment.
func operandValue[T number.Number[T]](t token[T], e *env.Environment[T]) (env.Value[T], error) {
	if t.kind == tokNumber {
		return env.Scalar(t.num), nil
	}
	v, ok := e.Value(t.ident)
	if !ok {
		return env.Value[T]{}, fmt.Errorf("%s: %w", t.ident, ErrUndefined)
	}
	return v, nil
}

// applyUnary evaluates a unary operator. '+' is the identity; '-' is
// checked zero-minus negation.
func applyUnary[T number.Number[T]](kind tokenKind, v env.Value[T]) (env.Value[T], error) {
	if kind == tokPlus {
		return v, nil
	}
	if m, ok := v.AsMatrix(); ok {
		neg, err := m.CheckedNeg()
		if err != nil {
			return env.Value[T]{}, err
		}
		return env.FromMatrix(neg), nil
	}
	s, _ := v.AsScalar()
	neg, ok := s.Zero().CheckedSub(s)
	if !ok {
		return env.Value[T]{}, fmt.Errorf("negating %s: %w", s, ErrArithmetic)
	}
	return env.Scalar(neg), nil
}

// applyBinary dispatches a binary operator on the kind combination of
// its operands.
//
// Defined combinations:
//   - '+', '-': scalar with scalar, matrix with matrix (same shape).
//   - '*': scalar with scalar, matrix with matrix (product), and
//     either mixed order (scaling).
//   - '/': scalar with scalar only.
//   - '^': scalar base with a non-negative integer scalar exponent,
//     or a square matrix base with such an exponent.
func applyBinary[T number.Number[T]](kind tokenKind, a, b env.Value[T]) (env.Value[T], error) {
	switch kind {
	case tokPlus:
		return applyAdditive(a, b, "+",
			func(x, y T) (T, bool) { return x.CheckedAdd(y) },
			matrix.Matrix[T].CheckedAdd)
	case tokMinus:
		return applyAdditive(a, b, "-",
			func(x, y T) (T, bool) { return x.CheckedSub(y) },
			matrix.Matrix[T].CheckedSub)
	case tokStar:
		return applyMul(a, b)
	case tokSlash:
		return applyDiv(a, b)
	case tokCaret:
		return applyPow(a, b)
	}
	panic("expr: dispatch of a non-operator")
}

// applyAdditive covers '+' and '-': the scalar and the matrix path
// share everything but the element operation.
func applyAdditive[T number.Number[T]](
	a, b env.Value[T],
	symbol string,
	scalarOp func(T, T) (T, bool),
	matrixOp func(matrix.Matrix[T], matrix.Matrix[T]) (matrix.Matrix[T], error),
) (env.Value[T], error) {
	if sa, ok := a.AsScalar(); ok {
		sb, ok2 := b.AsScalar()
		if !ok2 {
			return env.Value[T]{}, typeMismatch(symbol, a, b)
		}
		r, okOp := scalarOp(sa, sb)
		if !okOp {
			return env.Value[T]{}, fmt.Errorf("%s %s %s: %w", sa, symbol, sb, ErrArithmetic)
		}
		return env.Scalar(r), nil
	}
	ma, _ := a.AsMatrix()
	mb, ok := b.AsMatrix()
	if !ok {
		return env.Value[T]{}, typeMismatch(symbol, a, b)
	}
	r, err := matrixOp(ma, mb)
	if err != nil {
		return env.Value[T]{}, err
	}
	return env.FromMatrix(r), nil
}

// applyMul covers '*': scalar product, matrix product, and scaling in
// either operand order.
func applyMul[T number.Number[T]](a, b env.Value[T]) (env.Value[T], error) {
	sa, aScalar := a.AsScalar()
	sb, bScalar := b.AsScalar()
	switch {
	case aScalar && bScalar:
		r, ok := sa.CheckedMul(sb)
		if !ok {
			return env.Value[T]{}, fmt.Errorf("%s * %s: %w", sa, sb, ErrArithmetic)
		}
		return env.Scalar(r), nil

	case !aScalar && !bScalar:
		ma, _ := a.AsMatrix()
		mb, _ := b.AsMatrix()
		r, err := ma.CheckedMul(mb)
		if err != nil {
			return env.Value[T]{}, err
		}
		return env.FromMatrix(r), nil

	case aScalar:
		mb, _ := b.AsMatrix()
		r, err := mb.CheckedMulScalar(sa)
		if err != nil {
			return env.Value[T]{}, err
		}
		return env.FromMatrix(r), nil

	default:
		ma, _ := a.AsMatrix()
		r, err := ma.CheckedMulScalar(sb)
		if err != nil {
			return env.Value[T]{}, err
		}
		return env.FromMatrix(r), nil
	}
}

// applyDiv covers '/': defined on scalars only.
func applyDiv[T number.Number[T]](a, b env.Value[T]) (env.Value[T], error) {
	sa, aScalar := a.AsScalar()
	sb, bScalar := b.AsScalar()
	if !aScalar || !bScalar {
		return env.Value[T]{}, typeMismatch("/", a, b)
	}
	r, ok := sa.CheckedDiv(sb)
	if !ok {
		return env.Value[T]{}, fmt.Errorf("%s / %s: %w", sa, sb, ErrArithmetic)
	}
	return env.Scalar(r), nil
}

// applyPow covers '^'. The exponent must be a non-negative integer
// scalar; the base may be a scalar or a square matrix.
func applyPow[T number.Number[T]](a, b env.Value[T]) (env.Value[T], error) {
	sb, bScalar := b.AsScalar()
	if !bScalar {
		return env.Value[T]{}, typeMismatch("^", a, b)
	}
	n, ok := sb.Int()
	if !ok || n < 0 {
		return env.Value[T]{}, fmt.Errorf("exponent %s: %w", sb, ErrArithmetic)
	}

	if sa, aScalar := a.AsScalar(); aScalar {
		r, okPow := number.Pow(sa, uint64(n))
		if !okPow {
			return env.Value[T]{}, fmt.Errorf("%s ^ %s: %w", sa, sb, ErrArithmetic)
		}
		return env.Scalar(r), nil
	}

	ma, _ := a.AsMatrix()
	r, err := ma.CheckedPow(uint64(n))
	if err != nil {
		return env.Value[T]{}, err
	}
	return env.FromMatrix(r), nil
}

// typeMismatch builds the uniform error for an undefined kind
// combination.
func typeMismatch[T number.Number[T]](symbol string, a, b env.Value[T]) error {
	return fmt.Errorf("%s %s %s: %w", a.Kind(), symbol, b.Kind(), ErrTypeMismatch)
}
