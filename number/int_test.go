// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/number"
)

// TestInt_Arithmetic exercises the checked operations on the integer
// element type.
func TestInt_Arithmetic(t *testing.T) {
	a, b := number.Int(10), number.Int(3)

	sum, ok := a.CheckedAdd(b)
	require.True(t, ok)
	assert.Equal(t, number.Int(13), sum)

	diff, ok := a.CheckedSub(b)
	require.True(t, ok)
	assert.Equal(t, number.Int(7), diff)

	prod, ok := a.CheckedMul(b)
	require.True(t, ok)
	assert.Equal(t, number.Int(30), prod)

	quot, ok := a.CheckedDiv(b)
	require.True(t, ok)
	assert.Equal(t, number.Int(3), quot, "integer division truncates")
}

// TestInt_Overflow verifies checked failure at the int64 bounds,
// including the MinInt64 / -1 quotient.
func TestInt_Overflow(t *testing.T) {
	_, ok := number.Int(math.MaxInt64).CheckedAdd(1)
	assert.False(t, ok)

	_, ok = number.Int(math.MinInt64).CheckedSub(1)
	assert.False(t, ok)

	_, ok = number.Int(math.MaxInt64).CheckedMul(2)
	assert.False(t, ok)

	_, ok = number.Int(math.MinInt64).CheckedDiv(-1)
	assert.False(t, ok)

	_, ok = number.Int(1).CheckedDiv(0)
	assert.False(t, ok)
}

// TestInt_Rendering verifies String and the LaTeX pair.
func TestInt_Rendering(t *testing.T) {
	assert.Equal(t, "-4", number.Int(-4).String())
	assert.Equal(t, "-4", number.Int(-4).LaTeX())
	assert.Equal(t, `\left(-4\right)`, number.Int(-4).LaTeXSingle())
	assert.Equal(t, "4", number.Int(4).LaTeXSingle())
}

// TestInt_FromUintBound verifies literal conversion overflow is
// detected at the boundary.
func TestInt_FromUintBound(t *testing.T) {
	var z number.Int
	v, ok := z.FromUint(math.MaxInt64)
	require.True(t, ok)
	assert.Equal(t, number.Int(math.MaxInt64), v)

	_, ok = z.FromUint(uint64(math.MaxInt64) + 1)
	assert.False(t, ok)
}

// TestPow_IntOverflow verifies exponentiation reports overflow instead
// of wrapping.
func TestPow_IntOverflow(t *testing.T) {
	v, ok := number.Pow(number.Int(2), 62)
	require.True(t, ok)
	assert.Equal(t, number.Int(1)<<62, v)

	_, ok = number.Pow(number.Int(2), 64)
	assert.False(t, ok)
}
