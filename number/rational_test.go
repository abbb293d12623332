// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/number"
)

// rat builds a canonical Rational or fails the test.
func rat(t *testing.T, num, den int64) number.Rational {
	t.Helper()
	r, err := number.NewRational(num, den)
	require.NoError(t, err)
	return r
}

// TestNewRational_Canonicalization verifies reduction to lowest terms
// and sign normalization into the numerator.
func TestNewRational_Canonicalization(t *testing.T) {
	cases := []struct {
		num, den         int64
		wantNum, wantDen int64
	}{
		{1, 2, 1, 2},
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{-2, -4, 1, 2},
		{151, -302, -1, 2},
		{0, 7, 0, 1},
		{0, -7, 0, 1},
		{6, 3, 2, 1},
		{math.MinInt64, math.MinInt64, 1, 1},
	}
	for _, tc := range cases {
		r, err := number.NewRational(tc.num, tc.den)
		require.NoError(t, err, "%d/%d", tc.num, tc.den)
		assert.Equal(t, tc.wantNum, r.Num(), "%d/%d numerator", tc.num, tc.den)
		assert.Equal(t, tc.wantDen, r.Den(), "%d/%d denominator", tc.num, tc.den)
	}
}

// TestNewRational_ZeroDenominator verifies the only invalid
// constructor input.
func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := number.NewRational(1, 0)
	require.ErrorIs(t, err, number.ErrZeroDenominator)
}

// TestNewRational_MinInt64SignFlip verifies the corner where the sign
// flip of math.MinInt64 cannot be represented.
func TestNewRational_MinInt64SignFlip(t *testing.T) {
	// -(-2^63)/1 would need 2^63, one past MaxInt64.
	_, err := number.NewRational(math.MinInt64, -1)
	require.ErrorIs(t, err, number.ErrRange)

	// As a numerator it stays representable.
	r, err := number.NewRational(math.MinInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), r.Num())
}

// TestRational_ZeroValue verifies the zero value behaves as the
// canonical 0/1 everywhere.
func TestRational_ZeroValue(t *testing.T) {
	var z number.Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, int64(1), z.Den())
	assert.Equal(t, "0", z.String())

	sum, ok := z.CheckedAdd(rat(t, 1, 2))
	require.True(t, ok)
	assert.Equal(t, rat(t, 1, 2), sum)
}

// TestRational_Arithmetic exercises the four checked operations on
// plain values.
func TestRational_Arithmetic(t *testing.T) {
	half := rat(t, 1, 2)
	third := rat(t, 1, 3)

	sum, ok := half.CheckedAdd(third)
	require.True(t, ok)
	assert.Equal(t, rat(t, 5, 6), sum)

	diff, ok := half.CheckedSub(third)
	require.True(t, ok)
	assert.Equal(t, rat(t, 1, 6), diff)

	prod, ok := half.CheckedMul(third)
	require.True(t, ok)
	assert.Equal(t, rat(t, 1, 6), prod)

	quot, ok := half.CheckedDiv(third)
	require.True(t, ok)
	assert.Equal(t, rat(t, 3, 2), quot)
}

// TestRational_DivisionByZero verifies a zero divisor is a checked
// failure, not a panic.
func TestRational_DivisionByZero(t *testing.T) {
	_, ok := rat(t, 1, 2).CheckedDiv(number.Rational{})
	assert.False(t, ok)
}

// TestRational_OverflowDetection verifies checked failure near the
// int64 bounds.
func TestRational_OverflowDetection(t *testing.T) {
	big := number.FromInt(math.MaxInt64)

	_, ok := big.CheckedAdd(number.FromInt(1))
	assert.False(t, ok, "MaxInt64 + 1")

	_, ok = big.CheckedMul(number.FromInt(2))
	assert.False(t, ok, "MaxInt64 * 2")

	_, ok = number.FromInt(math.MinInt64).CheckedSub(number.FromInt(1))
	assert.False(t, ok, "MinInt64 - 1")
}

// TestRational_CrossReduction verifies products reduce before
// multiplying, so large reciprocal factors cancel instead of
// overflowing.
func TestRational_CrossReduction(t *testing.T) {
	big := int64(3037000499) // floor(sqrt(MaxInt64))
	a := rat(t, big, 7)
	b := rat(t, 7, big)
	prod, ok := a.CheckedMul(b)
	require.True(t, ok)
	assert.True(t, prod.IsOne())
}

// TestRational_SignQueries verifies the sign predicates used by pivot
// selection and rendering.
func TestRational_SignQueries(t *testing.T) {
	assert.True(t, rat(t, 1, 2).IsPositive())
	assert.True(t, rat(t, -1, 2).IsNegative())
	assert.False(t, number.Rational{}.IsPositive())
	assert.False(t, number.Rational{}.IsNegative())
	assert.True(t, number.FromInt(1).IsOne())
	assert.False(t, rat(t, 2, 2).IsZero())
	assert.True(t, rat(t, 2, 2).IsOne())
}

// TestRational_Int verifies the integer extraction used for exponent
// and size arguments.
func TestRational_Int(t *testing.T) {
	n, ok := number.FromInt(-5).Int()
	require.True(t, ok)
	assert.Equal(t, int64(-5), n)

	_, ok = rat(t, 1, 2).Int()
	assert.False(t, ok)
}

// TestRational_String verifies the plain rendering.
func TestRational_String(t *testing.T) {
	assert.Equal(t, "7", number.FromInt(7).String())
	assert.Equal(t, "-7", number.FromInt(-7).String())
	assert.Equal(t, "1/2", rat(t, 1, 2).String())
	assert.Equal(t, "-1/2", rat(t, 1, -2).String())
}

// TestRational_LaTeX verifies the fragment rendering: integers bare,
// fractions as \frac with the sign hoisted.
func TestRational_LaTeX(t *testing.T) {
	assert.Equal(t, "7", number.FromInt(7).LaTeX())
	assert.Equal(t, "-7", number.FromInt(-7).LaTeX())
	assert.Equal(t, `\frac{1}{2}`, rat(t, 1, 2).LaTeX())
	assert.Equal(t, `-\frac{1}{2}`, rat(t, -1, 2).LaTeX())
}

// TestRational_LaTeXSingle verifies factor rendering: positives bare,
// zero and negatives parenthesized.
func TestRational_LaTeXSingle(t *testing.T) {
	assert.Equal(t, "4", number.FromInt(4).LaTeX())
	assert.Equal(t, `\frac{3}{4}`, rat(t, 3, 4).LaTeXSingle())
	assert.Equal(t, `\left(-\frac{1}{2}\right)`, rat(t, -1, 2).LaTeXSingle())
	assert.Equal(t, `\left(-3\right)`, number.FromInt(-3).LaTeXSingle())
	assert.Equal(t, `\left(0\right)`, number.Rational{}.LaTeXSingle())
}

// TestRational_FromUint verifies literal conversion and its upper
// bound.
func TestRational_FromUint(t *testing.T) {
	var z number.Rational
	r, ok := z.FromUint(42)
	require.True(t, ok)
	assert.Equal(t, number.FromInt(42), r)

	_, ok = z.FromUint(uint64(math.MaxInt64) + 1)
	assert.False(t, ok)
}

// TestPow_Rational verifies binary exponentiation over rationals.
func TestPow_Rational(t *testing.T) {
	r, ok := number.Pow(rat(t, 1, 2), 8)
	require.True(t, ok)
	assert.Equal(t, rat(t, 1, 256), r)

	r, ok = number.Pow(number.FromInt(-3), 3)
	require.True(t, ok)
	assert.Equal(t, number.FromInt(-27), r)

	r, ok = number.Pow(number.FromInt(123), 0)
	require.True(t, ok)
	assert.True(t, r.IsOne())
}
