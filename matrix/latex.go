// SPDX-License-Identifier: MIT
// Package matrix: LaTeX rendering.

package matrix

import "strings"

// ToLaTeX renders the matrix for export.
//
// A plain matrix becomes \begin{bmatrix}a & b\\c & d\end{bmatrix}.
// A matrix carrying a concat separator renders as an array environment
// with a vertical rule at the boundary:
// \left[\begin{array}{cc|cc}...\end{array}\right].
func (m Matrix[T]) ToLaTeX() string {
	if sep, ok := m.Separator(); ok {
		return m.toLaTeXAugmented(sep)
	}
	var sb strings.Builder
	sb.WriteString(`\begin{bmatrix}`)
	sb.WriteString(m.latexBody())
	sb.WriteString(`\end{bmatrix}`)
	return sb.String()
}

// ToLaTeXSingle renders the matrix as a standalone factor. Matrices are
// already visually delimited, so this is the same as ToLaTeX.
func (m Matrix[T]) ToLaTeXSingle() string { return m.ToLaTeX() }

// latexBody joins cells with " & " and rows with `\\`.
func (m Matrix[T]) latexBody() string {
	rows := make([]string, m.rows)
	cells := make([]string, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cells[j] = m.data[i][j].LaTeX()
		}
		rows[i] = strings.Join(cells, " & ")
	}
	return strings.Join(rows, `\\`)
}

// toLaTeXAugmented renders the array environment with a | column at sep.
func (m Matrix[T]) toLaTeXAugmented(sep int) string {
	var sb strings.Builder
	sb.WriteString(`\left[\begin{array}{`)
	for j := 0; j < m.cols; j++ {
		if j == sep {
			sb.WriteByte('|')
		}
		sb.WriteByte('c')
	}
	sb.WriteString(`}`)
	sb.WriteString(m.latexBody())
	sb.WriteString(`\end{array}\right]`)
	return sb.String()
}
