// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// ints builds a rational matrix from an integer grid or fails the
// test.
func ints(t *testing.T, grid [][]int64) matrix.Matrix[number.Rational] {
	t.Helper()
	data := make([][]number.Rational, len(grid))
	for i, row := range grid {
		data[i] = make([]number.Rational, len(row))
		for j, v := range row {
			data[i][j] = number.FromInt(v)
		}
	}
	m, err := matrix.New(data)
	require.NoError(t, err)
	return m
}

// frac builds a rational or fails the test.
func frac(t *testing.T, num, den int64) number.Rational {
	t.Helper()
	r, err := number.NewRational(num, den)
	require.NoError(t, err)
	return r
}
