package filter

import (
	"strings"
	"unicode"
)

// TokenType identifies a lexed token.
type TokenType int

const (
	TokenAtom TokenType = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
)

// Token is one element of the lexed query stream.
type Token struct {
	Type TokenType
	Text string
}

// Tokenize splits a raw query into tokens. The lexer is operator-aware
// only: "&", "|", "!", "(" and ")" are single-character tokens, whitespace
// separates atoms, and everything else is contiguous atom text ("#", "@",
// ":" and digits are disambiguated later by the predicate compiler, not
// here). It never fails; empty or all-whitespace input yields no tokens.
func Tokenize(raw string) []Token {
	var tokens []Token
	var atom strings.Builder

	flush := func() {
		if atom.Len() > 0 {
			tokens = append(tokens, Token{Type: TokenAtom, Text: atom.String()})
			atom.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '&':
			flush()
			tokens = append(tokens, Token{Type: TokenAnd, Text: "&"})
		case r == '|':
			flush()
			tokens = append(tokens, Token{Type: TokenOr, Text: "|"})
		case r == '!':
			flush()
			tokens = append(tokens, Token{Type: TokenNot, Text: "!"})
		case r == '(':
			flush()
			tokens = append(tokens, Token{Type: TokenLParen, Text: "("})
		case r == ')':
			flush()
			tokens = append(tokens, Token{Type: TokenRParen, Text: ")"})
		case unicode.IsSpace(r):
			flush()
		default:
			atom.WriteRune(r)
		}
	}
	flush()

	return tokens
}
