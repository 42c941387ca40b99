// Package ast defines the untyped parse tree produced by the parser, before
// the builder resolves field names and literal types against a catalog.
package ast

import "github.com/Funny002/meilisearch/token"

// Expr is any node of the parsed filter expression tree.
type Expr interface {
	Span() token.Span
	expr()
}

// Ident is a bare field name, e.g. "price" in "price > 20".
type Ident struct {
	Tok token.Token
}

func (i *Ident) expr() {}

// Span returns the source range of the identifier.
func (i *Ident) Span() token.Span { return i.Tok.Span }

// Name returns the field name text.
func (i *Ident) Name() string { return i.Tok.Literal }

// Literal is a raw numeric or string literal; its type is not yet known
// (that depends on the field's facet type, resolved by the builder).
type Literal struct {
	Tok token.Token
}

func (l *Literal) expr() {}

// Span returns the source range of the literal.
func (l *Literal) Span() token.Span { return l.Tok.Span }

// IsString reports whether the literal was lexed as a quoted string.
func (l *Literal) IsString() bool { return l.Tok.Kind == token.STRING }

// IsNumber reports whether the literal was lexed as a number.
func (l *Literal) IsNumber() bool { return l.Tok.Kind == token.NUMBER }

// Raw returns the literal's source text, unparsed.
func (l *Literal) Raw() string { return l.Tok.Literal }

// CompareExpr is "field OP literal" for OP in {=, !=, <, <=, >, >=}.
type CompareExpr struct {
	Field *Ident
	Op    token.Token
	Value *Literal
}

func (c *CompareExpr) expr() {}

// Span spans from the field name to the literal.
func (c *CompareExpr) Span() token.Span {
	return token.Span{Start: c.Field.Span().Start, End: c.Value.Span().End}
}

// BetweenExpr is "field low TO high".
type BetweenExpr struct {
	Field *Ident
	Low   *Literal
	High  *Literal
}

func (b *BetweenExpr) expr() {}

// Span spans from the field name to the high literal.
func (b *BetweenExpr) Span() token.Span {
	return token.Span{Start: b.Field.Span().Start, End: b.High.Span().End}
}

// LogicExpr is "left AND right" or "left OR right".
type LogicExpr struct {
	Op    token.Token
	Left  Expr
	Right Expr
}

func (n *LogicExpr) expr() {}

// Span spans from the left child to the right child.
func (n *LogicExpr) Span() token.Span {
	return token.Span{Start: n.Left.Span().Start, End: n.Right.Span().End}
}

// NotExpr is "NOT inner".
type NotExpr struct {
	Op    token.Token
	Inner Expr
}

func (n *NotExpr) expr() {}

// Span spans from the NOT keyword to the end of the negated expression.
func (n *NotExpr) Span() token.Span {
	return token.Span{Start: n.Op.Span.Start, End: n.Inner.Span().End}
}
