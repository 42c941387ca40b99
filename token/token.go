package token

import "fmt"

// Token is one lexical unit produced by the lexer: a kind, the source span
// it occupies, and its literal text (the raw substring, so that numeric and
// range parsing can happen in the builder with the original span still
// attached to any error).
type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

// New creates a token whose literal is the kind's fixed spelling.
func New(kind Kind, span Span) Token {
	return Token{Kind: kind, Span: span, Literal: kind.Literal()}
}

// NewLiteral creates a token with an explicit literal, for IDENT/NUMBER/
// STRING tokens whose text is not fixed by their kind.
func NewLiteral(kind Kind, literal string, span Span) Token {
	return Token{Kind: kind, Span: span, Literal: literal}
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s %q @ %s}", t.Kind.Name(), t.Literal, t.Span)
}
