package ast

// Visitor is called once per node during a Walk. Returning nil stops
// traversal of the current subtree; returning a (possibly different)
// Visitor continues it.
type Visitor interface {
	Visit(expr Expr) Visitor
}

// Walk performs a depth-first traversal of expr, visiting interior nodes
// before their children.
func Walk(v Visitor, expr Expr) {
	v = v.Visit(expr)
	if v == nil {
		return
	}

	switch e := expr.(type) {
	case *LogicExpr:
		Walk(v, e.Left)
		Walk(v, e.Right)
	case *NotExpr:
		Walk(v, e.Inner)
	case *CompareExpr:
		Walk(v, e.Field)
		Walk(v, e.Value)
	case *BetweenExpr:
		Walk(v, e.Field)
		Walk(v, e.Low)
		Walk(v, e.High)
	}
}
