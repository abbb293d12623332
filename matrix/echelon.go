// SPDX-License-Identifier: MIT
// Package matrix: reduced row echelon form with full step tracing.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmat/number"
)

// Pivot niceness ranks. Under exact arithmetic the pivot choice is a
// step-count heuristic, not a stability rule: a pivot that is already
// ±1 skips the scaling step, so it beats any other nonzero value.
// Lower rank wins; ties break on the first (topmost) row.
const (
	rankOne      = 0
	rankMinusOne = 1
	rankOther    = 2
	rankZero     = 1000
)

// stepTrace accumulates the rendered derivation trail while the
// algorithm mutates its private working grid. Explicit accumulator,
// threaded through the reduction; no side-channel logging.
type stepTrace[T number.Number[T]] struct {
	work  Matrix[T]
	steps []string
}

// push records one transformation: an arrow with the row-operation
// label followed by the full matrix at this point.
func (t *stepTrace[T]) push(label string) {
	t.steps = append(t.steps, fmt.Sprintf(`\xrightarrow{%s} %s`, label, t.work.ToLaTeX()))
}

// Echelon reduces the matrix to reduced row echelon form, recording
// every structural change.
//
// Implementation:
//   - Stage 1: clone the grid; seed the trace with the initial
//     rendering; start the cursor at (row 0, column 0).
//   - Stage 2: per column, rank candidate pivots by niceness; a zero
//     pivot advances the column only. Otherwise swap the pivot row up
//     (one step), scale it to a unit pivot (one step), and eliminate
//     the column from every other row; all eliminations from one pivot
//     batch into a single combined step. Advance both cursors.
//
// Behavior highlights:
//   - The receiver is never mutated; the working copy keeps the
//     rendering separator, so augmented reductions trace correctly.
//   - For a non-empty input Steps[0] is the initial matrix and the
//     last entry shows the final echelon form; a matrix already in
//     reduced form yields exactly one entry. The empty matrix returns
//     itself with no steps.
//
// Errors:
//   - ErrArithmetic when any checked element operation fails.
//
// Determinism:
//   - Fixed scan orders everywhere; the niceness ranking and its
//     first-row tie-break are part of the contract so that traces stay
//     reproducible.
//
// Complexity:
//   - Time O(rows²·cols), Space O(rows·cols).
func (m Matrix[T]) Echelon() (Aftermath[T], error) {
	if m.IsEmpty() {
		return Aftermath[T]{Result: m}, nil
	}

	rows, cols := m.rows, m.cols
	data := m.cloneData()
	trace := stepTrace[T]{
		work:  Matrix[T]{data: data, rows: rows, cols: cols, sep: m.sep},
		steps: []string{m.ToLaTeX()},
	}

	var (
		i, c, j, k int
		ok         bool
	)
	for c < cols && i < rows {
		// Rank candidate pivots in column c among rows i..rows.
		pivot := i
		best, ok2 := niceness(data[i][c])
		if !ok2 {
			return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("ranking (%d,%d): %w", i, c, ErrArithmetic))
		}
		for k = i + 1; k < rows; k++ {
			rank, okRank := niceness(data[k][c])
			if !okRank {
				return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("ranking (%d,%d): %w", k, c, ErrArithmetic))
			}
			if rank < best {
				best, pivot = rank, k
			}
		}

		if !data[pivot][c].IsZero() {
			if pivot != i {
				data[i], data[pivot] = data[pivot], data[i]
				trace.push(fmt.Sprintf(`w_{%d} \leftrightarrow w_{%d}`, i+1, pivot+1))
			}

			if !data[i][c].IsOne() {
				d := data[i][c]
				for j = c; j < cols; j++ {
					if data[i][j], ok = data[i][j].CheckedDiv(d); !ok {
						return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("scaling row %d: %w", i+1, ErrArithmetic))
					}
				}
				trace.push(fmt.Sprintf(`w_{%d} : %s`, i+1, d.LaTeXSingle()))
			}

			// Eliminate column c from every other row; batch the ops
			// from this pivot into one combined step.
			var ops []string
			for j = 0; j < rows; j++ {
				if j == i || data[j][c].IsZero() {
					continue
				}
				p, okDiv := data[j][c].CheckedDiv(data[i][c])
				if !okDiv {
					return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("eliminating row %d: %w", j+1, ErrArithmetic))
				}
				for k = c; k < cols; k++ {
					prod, okMul := data[i][k].CheckedMul(p)
					if !okMul {
						return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("eliminating row %d: %w", j+1, ErrArithmetic))
					}
					if data[j][k], ok = data[j][k].CheckedSub(prod); !ok {
						return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("eliminating row %d: %w", j+1, ErrArithmetic))
					}
				}
				coeff, okCoeff := eliminationCoeff(p)
				if !okCoeff {
					return Aftermath[T]{}, matrixErrorf(opEchelon, fmt.Errorf("rendering row %d: %w", j+1, ErrArithmetic))
				}
				ops = append(ops, fmt.Sprintf(`w_{%d} %sw_{%d}`, j+1, coeff, i+1))
			}
			if len(ops) > 0 {
				trace.push(fmt.Sprintf(`\substack{%s}`, strings.Join(ops, `\\`)))
			}

			i++
		}

		c++
	}

	return Aftermath[T]{Result: trace.work, Steps: trace.steps}, nil
}

// niceness ranks a pivot candidate; see the rank constants above.
// ok=false only when the checked negation used to detect -1 overflows.
func niceness[T number.Number[T]](v T) (int, bool) {
	if v.IsZero() {
		return rankZero, true
	}
	if v.IsOne() {
		return rankOne, true
	}
	neg, ok := v.Zero().CheckedSub(v)
	if !ok {
		return 0, false
	}
	if neg.IsOne() {
		return rankMinusOne, true
	}
	return rankOther, true
}

// eliminationCoeff renders the subtracted coefficient of a combined
// row operation: "- " for 1, "+ " for -1, "- <p>" for positive p and
// "+ <-p>" for negative p.
//
// A zero coefficient is a violated internal invariant (zero entries are
// skipped before division) and panics.
func eliminationCoeff[T number.Number[T]](p T) (string, bool) {
	if p.IsZero() {
		panic("matrix: elimination coefficient must be nonzero")
	}
	if p.IsOne() {
		return "- ", true
	}
	neg, ok := p.Zero().CheckedSub(p)
	if !ok {
		return "", false
	}
	if neg.IsOne() {
		return "+ ", true
	}
	if p.IsPositive() {
		return "- " + p.LaTeX(), true
	}
	return "+ " + neg.LaTeX(), true
}
