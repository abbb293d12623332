// Package expr turns calculator input into values: a tokenizer, an
// operator-precedence expression parser and a fold evaluator over a
// symbol environment.
//
// The pipeline is raw text, then tokens, then a postfix queue, then a
// value:
//
//	env.NewEnvironment[number.Rational]() is fed lines through
//	expr.ParseInstruction; each line is either "name = expression" or
//	a bare expression whose result lands under the reserved "$".
//
// Grammar:
//
//	instruction := identifier '=' expr | expr
//	expr        := unary_term (binary_op term)*
//	term        := integer | identifier | '(' expr ')' | unary_op term
//	binary_op   := '+' | '-' | '*' | '/' | '^'
//	unary_op    := '+' | '-'
//
// Precedence climbs '+'/'-' < '*'/'/' < '^'; '^' is right-associative
// (2^3^2 is 512) and unary operators bind tighter than any binary
// operator (-2^2 is 4). Every token is validated against its left
// neighbor before it is accepted, so malformed input fails with a
// descriptive error instead of a partial parse.
package expr
