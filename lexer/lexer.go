// Package lexer tokenizes facet filter expressions for the parser.
package lexer

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/Funny002/meilisearch/token"
)

// Lexer turns filter expression source text into a stream of tokens.
type Lexer struct {
	input  string
	start  token.Position
	pos    token.Position
	cur    rune
	reader *strings.Reader
	buf    strings.Builder
}

// New creates a lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		start:  token.NewPosition(),
		pos:    token.NewPosition(),
		reader: strings.NewReader(input),
	}
}

func (l *Lexer) markStart() {
	l.start = l.pos
	if l.start.Column > 1 {
		l.start.Column--
	}
}

func (l *Lexer) span() token.Span {
	return token.Span{Start: l.start, End: l.pos}
}

func (l *Lexer) consume() error {
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return err
	}
	l.cur = ch
	if ch == '\n' {
		l.pos.Line++
		l.pos.ResetColumn()
	} else {
		l.pos.Column++
	}
	return nil
}

func (l *Lexer) peek() (rune, error) {
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	if uerr := l.reader.UnreadRune(); uerr != nil {
		return 0, uerr
	}
	return ch, nil
}

func (l *Lexer) skipSpace() error {
	for {
		if err := l.consume(); err != nil {
			return err
		}
		if !unicode.IsSpace(l.cur) {
			return nil
		}
	}
}

// Scan returns the next token, an EOF token at end of input, or an ERROR
// token if the source text is malformed.
func (l *Lexer) Scan() token.Token {
	if err := l.skipSpace(); err != nil {
		l.markStart()
		if errors.Is(err, io.EOF) {
			return token.New(token.EOF, l.span())
		}
		return token.NewLiteral(token.ERROR, err.Error(), l.span())
	}

	l.markStart()
	return l.dispatch()
}

func (l *Lexer) dispatch() token.Token {
	switch {
	case l.cur == '=':
		return token.New(token.EQ, l.span())
	case l.cur == '!':
		return l.fixed('=', token.NE)
	case l.cur == '<':
		return l.variable('=', token.LT, token.LE)
	case l.cur == '>':
		return l.variable('=', token.GT, token.GE)
	case l.cur == '(':
		return token.New(token.LPAREN, l.span())
	case l.cur == ')':
		return token.New(token.RPAREN, l.span())
	case l.cur == '\'' || l.cur == '"':
		return l.scanString(l.cur)
	case l.cur == '-' || unicode.IsDigit(l.cur):
		return l.scanNumber()
	case unicode.IsLetter(l.cur) || l.cur == '_':
		return l.scanIdent()
	default:
		return token.NewLiteral(token.ERROR, "unexpected character '"+string(l.cur)+"'", l.span())
	}
}

func (l *Lexer) fixed(want rune, kind token.Kind) token.Token {
	if err := l.consume(); err != nil || l.cur != want {
		return token.NewLiteral(token.ERROR, "expected '"+string(want)+"'", l.span())
	}
	return token.New(kind, l.span())
}

func (l *Lexer) variable(second rune, single, double token.Kind) token.Token {
	next, err := l.peek()
	if err != nil || next != second {
		return token.New(single, l.span())
	}
	_ = l.consume()
	return token.New(double, l.span())
}

func (l *Lexer) scanString(quote rune) token.Token {
	l.buf.Reset()
	defer l.buf.Reset()

	for {
		if err := l.consume(); err != nil {
			return token.NewLiteral(token.ERROR, "unterminated string literal", l.span())
		}
		if l.cur == quote {
			break
		}
		if l.cur == '\\' {
			if err := l.consume(); err != nil {
				return token.NewLiteral(token.ERROR, "unterminated string literal", l.span())
			}
		}
		l.buf.WriteRune(l.cur)
	}

	return token.NewLiteral(token.STRING, l.buf.String(), l.span())
}

func (l *Lexer) scanNumber() token.Token {
	l.buf.Reset()
	defer l.buf.Reset()

	l.buf.WriteRune(l.cur)
	if l.cur == '-' {
		if err := l.consume(); err != nil || !unicode.IsDigit(l.cur) {
			return token.NewLiteral(token.ERROR, "expected digit after '-'", l.span())
		}
		l.buf.WriteRune(l.cur)
	}

	if err := l.collectDigits(); err != nil {
		return token.NewLiteral(token.ERROR, err.Error(), l.span())
	}

	next, err := l.peek()
	if err == nil && next == '.' {
		_ = l.consume()
		l.buf.WriteRune(l.cur)
		if err := l.consume(); err != nil || !unicode.IsDigit(l.cur) {
			return token.NewLiteral(token.ERROR, "expected digit after decimal point", l.span())
		}
		l.buf.WriteRune(l.cur)
		if err := l.collectDigits(); err != nil {
			return token.NewLiteral(token.ERROR, err.Error(), l.span())
		}
	}

	return token.NewLiteral(token.NUMBER, l.buf.String(), l.span())
}

func (l *Lexer) collectDigits() error {
	for {
		next, err := l.peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !unicode.IsDigit(next) {
			return nil
		}
		if err := l.consume(); err != nil {
			return err
		}
		l.buf.WriteRune(l.cur)
	}
}

func (l *Lexer) scanIdent() token.Token {
	l.buf.Reset()
	defer l.buf.Reset()

	l.buf.WriteRune(l.cur)
	for {
		next, err := l.peek()
		if err != nil || !isIdentChar(next) {
			break
		}
		_ = l.consume()
		l.buf.WriteRune(l.cur)
	}

	lit := l.buf.String()
	kind := token.KindOf(lit)
	if kind != token.IDENT {
		return token.New(kind, l.span())
	}
	return token.NewLiteral(token.IDENT, lit, l.span())
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
