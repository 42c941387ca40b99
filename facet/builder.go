package facet

import (
	"context"
	"math"

	"github.com/spf13/cast"

	"github.com/Funny002/meilisearch/ast"
	"github.com/Funny002/meilisearch/facet/resolver"
	"github.com/Funny002/meilisearch/index"
	"github.com/Funny002/meilisearch/parser"
	"github.com/Funny002/meilisearch/token"
)

// FromString parses expression and builds a typed Condition against idx's
// catalog in one step.
func FromString(ctx context.Context, idx index.Index, expression string) (*Condition, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return Build(ctx, idx, expr)
}

// Build type-checks a parsed expression tree against idx's field catalog
// and produces the typed Condition tree Evaluate consumes. "neq" is
// rewritten to Not(Eq(...)) here, in the builder pass, rather than carried
// as its own Condition case all the way to evaluation time, matching the
// teacher's builder folding NE into the AST directly.
func Build(ctx context.Context, idx index.Index, expr ast.Expr) (*Condition, error) {
	switch e := expr.(type) {
	case *ast.LogicExpr:
		left, err := Build(ctx, idx, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := Build(ctx, idx, e.Right)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.AND {
			return and(left, right), nil
		}
		return or(left, right), nil

	case *ast.NotExpr:
		inner, err := Build(ctx, idx, e.Inner)
		if err != nil {
			return nil, err
		}
		return not(inner), nil

	case *ast.CompareExpr:
		return buildCompare(idx, e)

	case *ast.BetweenExpr:
		return buildBetween(idx, e)

	default:
		panic("facet: unknown ast node")
	}
}

func resolveField(idx index.Index, field *ast.Ident) (index.FieldID, index.FacetType, error) {
	fields := idx.FieldsIDsMap()
	id, ok := fields.ID(field.Name())
	if !ok {
		return 0, 0, &UnknownAttribute{Name: field.Name(), Known: fields.Names(), Span: field.Span()}
	}

	ft, ok := idx.FacetedFields()[id]
	if !ok {
		faceted := make([]string, 0, len(idx.FacetedFields()))
		for fid := range idx.FacetedFields() {
			if name, ok := fields.Name(fid); ok {
				faceted = append(faceted, name)
			}
		}
		return 0, 0, &NotFaceted{Name: field.Name(), Faceted: faceted, Span: field.Span()}
	}
	return id, ft, nil
}

func parseInt64(lit *ast.Literal) (int64, error) {
	if !lit.IsNumber() {
		return 0, &InvalidLiteral{Expected: "number", Got: "string", Span: lit.Span()}
	}
	v, err := cast.ToInt64E(lit.Raw())
	if err != nil {
		return 0, &InvalidLiteral{Expected: "integer", Got: lit.Raw(), Span: lit.Span()}
	}
	return v, nil
}

func parseFloat64(lit *ast.Literal) (float64, error) {
	if !lit.IsNumber() {
		return 0, &InvalidLiteral{Expected: "number", Got: "string", Span: lit.Span()}
	}
	v, err := cast.ToFloat64E(lit.Raw())
	if err != nil {
		return 0, &InvalidLiteral{Expected: "float", Got: lit.Raw(), Span: lit.Span()}
	}
	if math.IsNaN(v) {
		return 0, &InvalidLiteral{Expected: "float", Got: lit.Raw(), Span: lit.Span()}
	}
	return v, nil
}

func parseStringLiteral(lit *ast.Literal) (string, error) {
	if !lit.IsString() {
		return "", &InvalidLiteral{Expected: "string", Got: "number", Span: lit.Span()}
	}
	return lit.Raw(), nil
}

func buildCompare(idx index.Index, e *ast.CompareExpr) (*Condition, error) {
	fieldID, ft, err := resolveField(idx, e.Field)
	if err != nil {
		return nil, err
	}

	if e.Op.Kind != token.EQ && e.Op.Kind != token.NE && ft == index.String {
		return nil, &InvalidOperatorOnString{Span: e.Span()}
	}

	switch ft {
	case index.Integer:
		v, err := parseInt64(e.Value)
		if err != nil {
			return nil, err
		}
		cond := opI64(fieldID, numberOperatorI64(e.Op.Kind, v))
		if e.Op.Kind == token.NE {
			return not(cond), nil
		}
		return cond, nil

	case index.Float:
		v, err := parseFloat64(e.Value)
		if err != nil {
			return nil, err
		}
		cond := opF64(fieldID, numberOperatorF64(e.Op.Kind, v))
		if e.Op.Kind == token.NE {
			return not(cond), nil
		}
		return cond, nil

	default: // index.String
		v, err := parseStringLiteral(e.Value)
		if err != nil {
			return nil, err
		}
		cond := opString(fieldID, v)
		if e.Op.Kind == token.NE {
			return not(cond), nil
		}
		return cond, nil
	}
}

func buildBetween(idx index.Index, e *ast.BetweenExpr) (*Condition, error) {
	fieldID, ft, err := resolveField(idx, e.Field)
	if err != nil {
		return nil, err
	}

	switch ft {
	case index.Integer:
		low, err := parseInt64(e.Low)
		if err != nil {
			return nil, err
		}
		high, err := parseInt64(e.High)
		if err != nil {
			return nil, err
		}
		return opI64(fieldID, resolver.RangeOp(low, high)), nil

	case index.Float:
		low, err := parseFloat64(e.Low)
		if err != nil {
			return nil, err
		}
		high, err := parseFloat64(e.High)
		if err != nil {
			return nil, err
		}
		return opF64(fieldID, resolver.RangeOp(low, high)), nil

	default: // index.String
		return nil, &InvalidOperatorOnString{Span: e.Span()}
	}
}

func numberOperatorI64(kind token.Kind, v int64) resolver.NumberOperator[int64] {
	switch kind {
	case token.GT:
		return resolver.GT(v)
	case token.GE:
		return resolver.GE(v)
	case token.LT:
		return resolver.LT(v)
	case token.LE:
		return resolver.LE(v)
	default: // EQ, NE (NE is rewritten around an EQ by the caller)
		return resolver.EQ(v)
	}
}

func numberOperatorF64(kind token.Kind, v float64) resolver.NumberOperator[float64] {
	switch kind {
	case token.GT:
		return resolver.GT(v)
	case token.GE:
		return resolver.GE(v)
	case token.LT:
		return resolver.LT(v)
	case token.LE:
		return resolver.LE(v)
	default:
		return resolver.EQ(v)
	}
}
