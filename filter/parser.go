package filter

import "strings"

// Parse compiles a raw query string into an expression tree.
//
// Grammar, lowest to highest precedence:
//
//	Or   := And ('|' And)*
//	And  := Not ('&' Not)*
//	Not  := '!' Not | Atom
//	Atom := '(' Or ')' | AtomText
//
// so "today & p1 | overdue" parses as OR(AND(today, p1), overdue), and
// parentheses group to arbitrary depth. Adjacent atom tokens are joined
// with a single space, which is how multi-word atoms like "no date" and
// "7 days" are recognized.
//
// Parse never fails. Queries are typically evaluated while the user is
// still typing, so malformed input degrades instead of erroring out:
// a dangling trailing operator is dropped, an unmatched "(" falls back to
// literal text, and an empty or all-whitespace query returns nil, which
// the evaluator treats as match-all.
func Parse(query string) Expr {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	p := &parser{tokens: tokens}
	return p.parseOr()
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// match consumes the next token if it has the given type.
func (p *parser) match(tt TokenType) bool {
	if tok, ok := p.peek(); ok && tok.Type == tt {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseOr() Expr {
	left := p.parseAnd()
	for p.match(TokenOr) {
		right := p.parseAnd()
		if right == nil {
			break // dangling "|"
		}
		if left == nil {
			left = right // leading "|", keep the operand
			continue
		}
		left = &BinaryExpr{Op: "OR", Left: left, Right: right}
	}
	return left
}

func (p *parser) parseAnd() Expr {
	left := p.parseNot()
	for p.match(TokenAnd) {
		right := p.parseNot()
		if right == nil {
			break // dangling "&"
		}
		if left == nil {
			left = right
			continue
		}
		left = &BinaryExpr{Op: "AND", Left: left, Right: right}
	}
	return left
}

func (p *parser) parseNot() Expr {
	if p.match(TokenNot) {
		child := p.parseNot()
		if child == nil {
			return nil // dangling "!"
		}
		return &UnaryExpr{Op: "NOT", Expr: child}
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() Expr {
	tok, ok := p.peek()
	if !ok {
		return nil
	}

	switch tok.Type {
	case TokenLParen:
		p.pos++
		inner := p.parseOr()
		if p.match(TokenRParen) {
			return inner // inner may be nil for "()", callers cope
		}
		if inner != nil {
			// missing ")", accept the group as parsed
			return inner
		}
		// a lone "(" is just text as far as the user is concerned
		return compileAtom("(")

	case TokenAtom:
		var parts []string
		for {
			tok, ok := p.peek()
			if !ok || tok.Type != TokenAtom {
				break
			}
			parts = append(parts, tok.Text)
			p.pos++
		}
		return compileAtom(strings.Join(parts, " "))

	default:
		// stray operator or ")", leave it for the caller to drop
		return nil
	}
}
