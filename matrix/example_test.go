// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/katalvlaran/lvlmat/number"
)

// ExampleMatrix_Inverse inverts a 2x2 matrix and prints the exact
// rational result.
func ExampleMatrix_Inverse() {
	m, err := matrix.FromVector([]number.Rational{
		number.FromInt(1), number.FromInt(2),
		number.FromInt(3), number.FromInt(4),
	}, 2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inv, err := m.Inverse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inv.Result)
	// Output: [-2 1; 3/2 -1/2]
}

// ExampleMatrix_Echelon reduces a matrix and prints the first recorded
// derivation step, the LaTeX render of the starting point.
func ExampleMatrix_Echelon() {
	m, err := matrix.FromVector([]number.Rational{
		number.FromInt(2), number.FromInt(0),
		number.FromInt(0), number.FromInt(2),
	}, 2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	red, err := m.Echelon()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(red.Result)
	fmt.Println(red.Steps[0])
	// Output:
	// [1 0; 0 1]
	// \begin{bmatrix}2 & 0\\0 & 2\end{bmatrix}
}
