package ast

import "strings"

// sqlLikeVisitor renders an expression tree back to filter-expression
// source text, grounded on Tangerg-lynx/ai/vectorstore/filter/ast's
// SQLLikeVisitor: Visit fully renders whatever subtree it is handed itself
// (recursing through the unexported visit method, not through Walk's own
// child descent) and always returns nil so Walk never re-visits a node
// this visitor already consumed.
type sqlLikeVisitor struct {
	buffer strings.Builder
}

func (s *sqlLikeVisitor) Visit(expr Expr) Visitor {
	s.visit(expr)
	return nil
}

func (s *sqlLikeVisitor) visit(expr Expr) {
	switch e := expr.(type) {
	case *Ident:
		s.buffer.WriteString(e.Name())
	case *Literal:
		s.visitLiteral(e)
	case *CompareExpr:
		s.visit(e.Field)
		s.buffer.WriteString(" ")
		s.buffer.WriteString(e.Op.Kind.Literal())
		s.buffer.WriteString(" ")
		s.visit(e.Value)
	case *BetweenExpr:
		s.visit(e.Field)
		s.buffer.WriteString(" ")
		s.visit(e.Low)
		s.buffer.WriteString(" TO ")
		s.visit(e.High)
	case *LogicExpr:
		s.buffer.WriteString("(")
		s.visit(e.Left)
		s.buffer.WriteString(" ")
		s.buffer.WriteString(e.Op.Kind.Literal())
		s.buffer.WriteString(" ")
		s.visit(e.Right)
		s.buffer.WriteString(")")
	case *NotExpr:
		s.buffer.WriteString("NOT (")
		s.visit(e.Inner)
		s.buffer.WriteString(")")
	}
}

func (s *sqlLikeVisitor) visitLiteral(l *Literal) {
	if !l.IsString() {
		s.buffer.WriteString(l.Raw())
		return
	}
	s.buffer.WriteString(`"`)
	for _, r := range l.Raw() {
		if r == '"' || r == '\\' {
			s.buffer.WriteRune('\\')
		}
		s.buffer.WriteRune(r)
	}
	s.buffer.WriteString(`"`)
}

// Render renders expr back to filter-expression source text by walking it
// with a Visitor, the debug-rendering this package's Visitor/Walk pair
// exists to drive: parsing Render(expr) again reproduces a structurally
// equal tree (see Equal), which is how the round-trip invariant is tested.
// Every interior node is parenthesized so the rendered text's precedence
// never depends on the grammar's own AND/OR binding strength.
func Render(expr Expr) string {
	v := &sqlLikeVisitor{}
	Walk(v, expr)
	return v.buffer.String()
}
