// SPDX-License-Identifier: MIT
// Package expr: the tokenizer.

package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lvlmat/env"
	"github.com/katalvlaran/lvlmat/number"
)

// tokenKind enumerates the lexical categories of the grammar.
type tokenKind uint8

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokAssign
	tokLParen
	tokRParen
)

// String returns the display name used in syntax error messages.
func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return `"+"`
	case tokMinus:
		return `"-"`
	case tokStar:
		return `"*"`
	case tokSlash:
		return `"/"`
	case tokCaret:
		return `"^"`
	case tokAssign:
		return `"="`
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	}
	return "unknown"
}

// token is one lexeme. num is set for tokNumber, ident for tokIdent;
// pos is the byte offset of the first character, kept for error
// messages.
type token[T number.Number[T]] struct {
	kind  tokenKind
	num   T
	ident env.Identifier
	pos   int
}

// operators maps the single-character operator set to token kinds.
var operators = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'=': tokAssign,
	'(': tokLParen,
	')': tokRParen,
}

// tokenize lexes input into a token stream. Integer literals are
// converted to T immediately, so a literal that does not fit the
// numeric type fails here rather than during evaluation. Whitespace
// separates tokens and is otherwise ignored.
//
// Errors:
//   - ErrLex for an unexpected character or an oversized literal.
func tokenize[T number.Number[T]](input string) ([]token[T], error) {
	var (
		toks []token[T]
		zero T
	)
	for pos := 0; pos < len(input); {
		r, width := utf8.DecodeRuneInString(input[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += width

		case r >= '0' && r <= '9':
			end := pos + 1
			for end < len(input) && input[end] >= '0' && input[end] <= '9' {
				end++
			}
			u, err := strconv.ParseUint(input[pos:end], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("literal %q at %d: %w", input[pos:end], pos, ErrLex)
			}
			n, ok := zero.FromUint(u)
			if !ok {
				return nil, fmt.Errorf("literal %q at %d: %w", input[pos:end], pos, ErrLex)
			}
			toks = append(toks, token[T]{kind: tokNumber, num: n, pos: pos})
			pos = end

		case r == '$':
			toks = append(toks, token[T]{kind: tokIdent, ident: env.Result(), pos: pos})
			pos += width

		case r == '_' || unicode.IsLetter(r):
			end := pos + width
			for end < len(input) {
				nr, nw := utf8.DecodeRuneInString(input[end:])
				if nr != '_' && !unicode.IsLetter(nr) && !unicode.IsDigit(nr) {
					break
				}
				end += nw
			}
			id, err := env.NewIdentifier(input[pos:end])
			if err != nil {
				return nil, fmt.Errorf("identifier %q at %d: %w", input[pos:end], pos, ErrLex)
			}
			toks = append(toks, token[T]{kind: tokIdent, ident: id, pos: pos})
			pos = end

		default:
			kind, ok := operators[input[pos]]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at %d: %w", r, pos, ErrLex)
			}
			toks = append(toks, token[T]{kind: kind, pos: pos})
			pos += width
		}
	}
	return toks, nil
}
