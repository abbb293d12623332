// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// TestCheckedPow_Fibonacci verifies powers of the Fibonacci generator
// [[1,1],[1,0]]: its tenth power holds F(11)..F(9).
func TestCheckedPow_Fibonacci(t *testing.T) {
	m := ints(t, [][]int64{{1, 1}, {1, 0}})

	p, err := m.CheckedPow(10)
	require.NoError(t, err)
	assert.True(t, p.Equal(ints(t, [][]int64{{89, 55}, {55, 34}})))
}

// TestCheckedPow_ZeroExponent verifies the empty product is the
// identity.
func TestCheckedPow_ZeroExponent(t *testing.T) {
	m := ints(t, [][]int64{{7, -3}, {2, 5}})

	p, err := m.CheckedPow(0)
	require.NoError(t, err)
	id, err := matrix.Identity[number.Rational](2)
	require.NoError(t, err)
	assert.True(t, p.Equal(id))
}

// TestCheckedPow_One verifies exponent one returns the base unchanged.
func TestCheckedPow_One(t *testing.T) {
	m := ints(t, [][]int64{{7, -3}, {2, 5}})

	p, err := m.CheckedPow(1)
	require.NoError(t, err)
	assert.True(t, p.Equal(m))
}

// TestCheckedPow_MatchesRepeatedMul cross-checks binary exponentiation
// against naive repeated multiplication.
func TestCheckedPow_MatchesRepeatedMul(t *testing.T) {
	m := ints(t, [][]int64{{2, 1}, {0, 1}})

	want, err := matrix.Identity[number.Rational](2)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		want, err = want.CheckedMul(m)
		require.NoError(t, err)
	}

	p, err := m.CheckedPow(7)
	require.NoError(t, err)
	assert.True(t, p.Equal(want))
}

// TestCheckedPow_NonSquare verifies the shape guard.
func TestCheckedPow_NonSquare(t *testing.T) {
	m := ints(t, [][]int64{{1, 2, 3}})

	_, err := m.CheckedPow(2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestCheckedPow_Overflow verifies overflow surfaces as ErrArithmetic
// instead of wrapping.
func TestCheckedPow_Overflow(t *testing.T) {
	m, err := matrix.New([][]number.Int{{1 << 31, 0}, {0, 1 << 31}})
	require.NoError(t, err)

	_, err = m.CheckedPow(4)
	require.ErrorIs(t, err, matrix.ErrArithmetic)
}

// TestCheckedPow_Empty verifies the empty matrix is closed under
// powers.
func TestCheckedPow_Empty(t *testing.T) {
	p, err := matrix.Empty[number.Rational]().CheckedPow(5)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}
