package ast

// Equal reports whether a and b have the same logical structure: same
// node kinds, same field/operator/literal text, recursively, ignoring
// source spans (which differ between the original parse and a re-parse of
// Render(a)'s output by construction). Used to verify the round-trip
// invariant that Render(expr) reparses to a tree equal to expr.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case *Ident:
		bv, ok := b.(*Ident)
		return ok && av.Name() == bv.Name()

	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.Tok.Kind == bv.Tok.Kind && av.Raw() == bv.Raw()

	case *CompareExpr:
		bv, ok := b.(*CompareExpr)
		return ok && av.Op.Kind == bv.Op.Kind && Equal(av.Field, bv.Field) && Equal(av.Value, bv.Value)

	case *BetweenExpr:
		bv, ok := b.(*BetweenExpr)
		return ok && Equal(av.Field, bv.Field) && Equal(av.Low, bv.Low) && Equal(av.High, bv.High)

	case *LogicExpr:
		bv, ok := b.(*LogicExpr)
		return ok && av.Op.Kind == bv.Op.Kind && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)

	case *NotExpr:
		bv, ok := b.(*NotExpr)
		return ok && Equal(av.Inner, bv.Inner)

	default:
		return false
	}
}
