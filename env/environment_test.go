// SPDX-License-Identifier: MIT

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/env"
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// ident builds a validated identifier or fails the test.
func ident(t *testing.T, name string) env.Identifier {
	t.Helper()
	id, err := env.NewIdentifier(name)
	require.NoError(t, err)
	return id
}

// TestEnvironment_InsertAndLookup verifies the basic store round trip.
func TestEnvironment_InsertAndLookup(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()
	require.NoError(t, e.Insert(ident(t, "x"), env.Scalar(number.FromInt(7))))

	v, ok := e.Value(ident(t, "x"))
	require.True(t, ok)
	s, ok := v.AsScalar()
	require.True(t, ok)
	assert.Equal(t, number.FromInt(7), s)

	_, ok = e.Value(ident(t, "y"))
	assert.False(t, ok)
}

// TestEnvironment_InsertionOrder verifies identifiers enumerate in
// first-bind order, with rebinding keeping the original position.
func TestEnvironment_InsertionOrder(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()
	require.NoError(t, e.Insert(ident(t, "b"), env.Scalar(number.FromInt(1))))
	require.NoError(t, e.Insert(ident(t, "a"), env.Scalar(number.FromInt(2))))
	require.NoError(t, e.Insert(ident(t, "c"), env.Scalar(number.FromInt(3))))
	require.NoError(t, e.Insert(ident(t, "a"), env.Scalar(number.FromInt(4))))

	ids := e.Identifiers()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)

	v, ok := e.Value(ident(t, "a"))
	require.True(t, ok)
	s, _ := v.AsScalar()
	assert.Equal(t, number.FromInt(4), s, "rebinding updates the value")
}

// TestEnvironment_ReservedNames verifies "$" and builtin names reject
// Insert while SetResult works.
func TestEnvironment_ReservedNames(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()

	err := e.Insert(env.Result(), env.Scalar(number.FromInt(1)))
	require.ErrorIs(t, err, env.ErrReserved)

	for _, name := range []string{"transpose", "identity", "inverse"} {
		err = e.Insert(ident(t, name), env.Scalar(number.FromInt(1)))
		require.ErrorIs(t, err, env.ErrReserved, "name %q", name)
	}

	e.SetResult(env.Scalar(number.FromInt(9)))
	v, ok := e.Value(env.Result())
	require.True(t, ok)
	s, _ := v.AsScalar()
	assert.Equal(t, number.FromInt(9), s)
}

// TestEnvironment_FunctionTable verifies the builtin table is present
// and distinct from the value store.
func TestEnvironment_FunctionTable(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()

	for _, name := range []string{"transpose", "identity", "inverse"} {
		fn, ok := e.Function(ident(t, name))
		require.True(t, ok, "builtin %q", name)
		assert.Equal(t, name, fn.Name)
	}

	_, ok := e.Function(ident(t, "nothere"))
	assert.False(t, ok)
	_, ok = e.Value(ident(t, "transpose"))
	assert.False(t, ok, "builtins are not value bindings")
}

// TestBuiltin_Transpose verifies the transpose builtin on both kinds.
func TestBuiltin_Transpose(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()
	fn, ok := e.Function(ident(t, "transpose"))
	require.True(t, ok)

	m, err := matrix.New([][]number.Rational{
		{number.FromInt(1), number.FromInt(2), number.FromInt(3)},
	})
	require.NoError(t, err)

	out, err := fn.Apply(env.FromMatrix(m))
	require.NoError(t, err)
	tr, ok := out.AsMatrix()
	require.True(t, ok)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 1, tr.Cols())

	out, err = fn.Apply(env.Scalar(number.FromInt(5)))
	require.NoError(t, err)
	s, ok := out.AsScalar()
	require.True(t, ok)
	assert.Equal(t, number.FromInt(5), s, "a scalar is its own transpose")
}

// TestBuiltin_Identity verifies matrix construction from a size scalar
// and its domain checks.
func TestBuiltin_Identity(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()
	fn, ok := e.Function(ident(t, "identity"))
	require.True(t, ok)

	out, err := fn.Apply(env.Scalar(number.FromInt(3)))
	require.NoError(t, err)
	m, ok := out.AsMatrix()
	require.True(t, ok)
	id, err := matrix.Identity[number.Rational](3)
	require.NoError(t, err)
	assert.True(t, m.Equal(id))

	_, err = fn.Apply(env.Scalar(number.FromInt(-1)))
	require.ErrorIs(t, err, env.ErrBadArgument)

	half, err := number.NewRational(1, 2)
	require.NoError(t, err)
	_, err = fn.Apply(env.Scalar(half))
	require.ErrorIs(t, err, env.ErrBadArgument)

	_, err = fn.Apply(env.FromMatrix(id))
	require.ErrorIs(t, err, env.ErrBadArgument)
}

// TestBuiltin_Inverse verifies matrix inversion and the scalar
// reciprocal.
func TestBuiltin_Inverse(t *testing.T) {
	e := env.NewEnvironment[number.Rational]()
	fn, ok := e.Function(ident(t, "inverse"))
	require.True(t, ok)

	m, err := matrix.New([][]number.Rational{
		{number.FromInt(2), number.FromInt(0)},
		{number.FromInt(0), number.FromInt(4)},
	})
	require.NoError(t, err)

	out, err := fn.Apply(env.FromMatrix(m))
	require.NoError(t, err)
	inv, ok := out.AsMatrix()
	require.True(t, ok)
	prod, err := m.CheckedMul(inv)
	require.NoError(t, err)
	id, err := matrix.Identity[number.Rational](2)
	require.NoError(t, err)
	assert.True(t, prod.Equal(id))

	out, err = fn.Apply(env.Scalar(number.FromInt(4)))
	require.NoError(t, err)
	s, ok := out.AsScalar()
	require.True(t, ok)
	quarter, err := number.NewRational(1, 4)
	require.NoError(t, err)
	assert.Equal(t, quarter, s)

	_, err = fn.Apply(env.Scalar(number.Rational{}))
	require.ErrorIs(t, err, env.ErrBadArgument, "zero has no reciprocal")

	singular, err := matrix.New([][]number.Rational{
		{number.FromInt(1), number.FromInt(2)},
		{number.FromInt(2), number.FromInt(4)},
	})
	require.NoError(t, err)
	_, err = fn.Apply(env.FromMatrix(singular))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestValue_Rendering verifies String and the LaTeX pair on both
// kinds.
func TestValue_Rendering(t *testing.T) {
	half, err := number.NewRational(1, 2)
	require.NoError(t, err)
	s := env.Scalar(half)
	assert.Equal(t, env.KindScalar, s.Kind())
	assert.Equal(t, "1/2", s.String())
	assert.Equal(t, `\frac{1}{2}`, s.LaTeX())

	neg := env.Scalar(number.FromInt(-2))
	assert.Equal(t, `\left(-2\right)`, neg.LaTeXSingle())

	m, err := matrix.New([][]number.Rational{
		{number.FromInt(1), number.FromInt(2)},
	})
	require.NoError(t, err)
	v := env.FromMatrix(m)
	assert.Equal(t, env.KindMatrix, v.Kind())
	assert.Equal(t, "[1 2]", v.String())
	assert.Equal(t, `\begin{bmatrix}1 & 2\end{bmatrix}`, v.LaTeX())
}
