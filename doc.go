// Package lvlmat is an exact-arithmetic matrix calculator core: rational
// scalars, generic matrices, and a small expression language, with every
// linear-algebra transformation recorded as a human-readable derivation.
//
// 🚀 What is lvlmat?
//
//	A deterministic, overflow-checked calculator engine that brings together:
//		• Exact numbers: reduced 64-bit fractions with checked ring operations
//		• Generic matrices: validated construction, elementwise & product arithmetic
//		• Step-traced algebra: row echelon reduction, inversion via [A|I], fast powers
//		• An expression language: shunting-yard parser over a symbol environment
//		• LaTeX rendering: every value and every derivation step exports cleanly
//
// ✨ Why choose lvlmat?
//
//   - Exact by construction – no floating point, no silent overflow
//   - Fail-fast validation – malformed input is rejected with a sentinel error
//   - Pure Go core – no cgo, deterministic results on every run
//   - Host-friendly – a UI or shell consumes a handful of small interfaces
//
// Under the hood, everything is organized under four subpackages:
//
//	number/ : the Number capability constraint, Rational and checked Int
//	matrix/ : Matrix[T], factories, checked arithmetic, Echelon/Inverse/CheckedPow
//	env/    : Identifier, the Scalar|Matrix value union, the symbol Environment
//	expr/   : tokenizer, expression parser/evaluator, instruction layer
//
// Quick example:
//
//	e := env.NewEnvironment[number.Rational]()
//	id, _ := expr.ParseInstruction[number.Rational]("a = (2-6*9)/5", e)
//	v, _ := e.Value(id) // Scalar -52/5
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat
