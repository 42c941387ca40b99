// Package parser turns filter expression source text into the untyped
// parse tree in package ast. It implements the rule set spec.md §4.1 names
// (prgm, term, not, or, and, between, eq, neq, greater, geq, less, leq) as
// a small precedence-climbing recursive descent parser: "term" and "prgm"
// never need their own node because Parse/parsePrimary simply forward to the
// inner expression, exactly as the grammar's wrapper rules do.
package parser

import (
	"fmt"

	"github.com/Funny002/meilisearch/ast"
	"github.com/Funny002/meilisearch/lexer"
	"github.com/Funny002/meilisearch/token"
)

// Error is a parse failure, carrying the source span of the offending
// token so callers can render a caret-pointed diagnostic.
type Error struct {
	Message string
	Span    token.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Message, e.Span)
}

// Parser is a precedence-climbing recursive descent parser over a stream
// of tokens from a Lexer.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
}

// New creates a parser over the given source text.
func New(input string) *Parser {
	l := lexer.New(input)
	return &Parser{lex: l, cur: l.Scan()}
}

func (p *Parser) advance() {
	p.cur = p.lex.Scan()
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return p.cur, &Error{
			Message: fmt.Sprintf("expected %s, found %s %q", kind.Name(), p.cur.Kind.Name(), p.cur.Literal),
			Span:    p.cur.Span,
		}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// Parse parses a complete filter expression ("prgm" in spec.md's rule set)
// and ensures no input is left unconsumed.
func Parse(input string) (ast.Expr, error) {
	p := New(input)
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, &Error{
			Message: fmt.Sprintf("unexpected trailing input %q", p.cur.Literal),
			Span:    p.cur.Span,
		}
	}
	return expr, nil
}

// parseOr handles "term (OR term)*" — OR has the lowest precedence.
func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.OR {
		op := p.cur
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseAnd handles "not_expr (AND not_expr)*" — AND binds tighter than OR.
func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.AND {
		op := p.cur
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseNot handles the "not" rule: a prefix NOT binds to the narrowest
// following expression.
func (p *Parser) parseNot() (ast.Expr, error) {
	if p.cur.Kind == token.NOT {
		op := p.cur
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{Op: op, Inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	if p.cur.Kind == token.LPAREN {
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseComparison()
}

// parseComparison parses the leaf rules: eq, neq, greater, geq, less, leq,
// and between. All share the shape "IDENT ...".
func (p *Parser) parseComparison() (ast.Expr, error) {
	fieldTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	field := &ast.Ident{Tok: fieldTok}

	if p.cur.Kind.IsComparison() {
		op := p.cur
		p.advance()
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.CompareExpr{Field: field, Op: op, Value: value}, nil
	}

	if p.cur.Kind == token.NUMBER {
		low, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TO); err != nil {
			return nil, err
		}
		high, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.BetweenExpr{Field: field, Low: low, High: high}, nil
	}

	return nil, &Error{
		Message: fmt.Sprintf("expected a comparison operator or a range after %q, found %s %q", field.Name(), p.cur.Kind.Name(), p.cur.Literal),
		Span:    p.cur.Span,
	}
}

func (p *Parser) parseLiteral() (*ast.Literal, error) {
	if p.cur.Kind != token.NUMBER && p.cur.Kind != token.STRING {
		return nil, &Error{
			Message: fmt.Sprintf("expected a literal value, found %s %q", p.cur.Kind.Name(), p.cur.Literal),
			Span:    p.cur.Span,
		}
	}
	tok := p.cur
	p.advance()
	return &ast.Literal{Tok: tok}, nil
}
