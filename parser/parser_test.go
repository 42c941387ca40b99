package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Funny002/meilisearch/ast"
	"github.com/Funny002/meilisearch/parser"
	"github.com/Funny002/meilisearch/token"
)

func TestParseComparison(t *testing.T) {
	expr, err := parser.Parse(`price > 20`)
	require.NoError(t, err)

	cmp, ok := expr.(*ast.CompareExpr)
	require.True(t, ok)
	require.Equal(t, "price", cmp.Field.Name())
	require.Equal(t, token.GT, cmp.Op.Kind)
	require.Equal(t, "20", cmp.Value.Raw())
}

func TestParseNotEqual(t *testing.T) {
	expr, err := parser.Parse(`brand != "nike"`)
	require.NoError(t, err)

	cmp, ok := expr.(*ast.CompareExpr)
	require.True(t, ok)
	require.Equal(t, token.NE, cmp.Op.Kind)
	require.True(t, cmp.Value.IsString())
	require.Equal(t, "nike", cmp.Value.Raw())
}

func TestParseBetween(t *testing.T) {
	expr, err := parser.Parse(`price 10 TO 20`)
	require.NoError(t, err)

	between, ok := expr.(*ast.BetweenExpr)
	require.True(t, ok)
	require.Equal(t, "price", between.Field.Name())
	require.Equal(t, "10", between.Low.Raw())
	require.Equal(t, "20", between.High.Raw())
}

func TestParseAndOrPrecedence(t *testing.T) {
	// AND binds tighter than OR: "a OR b AND c" == "a OR (b AND c)".
	expr, err := parser.Parse(`price > 20 OR stock = 0 AND brand = "nike"`)
	require.NoError(t, err)

	or, ok := expr.(*ast.LogicExpr)
	require.True(t, ok)
	require.Equal(t, token.OR, or.Op.Kind)

	_, ok = or.Left.(*ast.CompareExpr)
	require.True(t, ok)

	and, ok := or.Right.(*ast.LogicExpr)
	require.True(t, ok)
	require.Equal(t, token.AND, and.Op.Kind)
}

func TestParseNotPrefix(t *testing.T) {
	expr, err := parser.Parse(`NOT brand = "nike"`)
	require.NoError(t, err)

	not, ok := expr.(*ast.NotExpr)
	require.True(t, ok)
	_, ok = not.Inner.(*ast.CompareExpr)
	require.True(t, ok)
}

func TestParseParens(t *testing.T) {
	expr, err := parser.Parse(`(price > 20 OR price < 10) AND brand = "nike"`)
	require.NoError(t, err)

	and, ok := expr.(*ast.LogicExpr)
	require.True(t, ok)
	require.Equal(t, token.AND, and.Op.Kind)

	or, ok := and.Left.(*ast.LogicExpr)
	require.True(t, ok)
	require.Equal(t, token.OR, or.Op.Kind)
}

func TestParseTrailingInputError(t *testing.T) {
	_, err := parser.Parse(`price > 20 stock`)
	require.Error(t, err)
}

func TestParseMissingOperatorError(t *testing.T) {
	_, err := parser.Parse(`price`)
	require.Error(t, err)
}

func TestParseUnterminatedParenError(t *testing.T) {
	_, err := parser.Parse(`(price > 20`)
	require.Error(t, err)
}

// TestParseRenderRoundTrip exercises spec.md §8's round-trip invariant:
// for any filter string that builds successfully, the built tree's debug
// rendering (ast.Render, which drives ast.Walk/ast.Visitor) reparses to a
// structurally equal tree (ast.Equal).
func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{
		`price > 20`,
		`price >= 20`,
		`price < 20`,
		`price <= 20`,
		`price = 20`,
		`price != 20`,
		`price 10 TO 50`,
		`brand = "nike"`,
		`brand = "it's \"quoted\""`,
		`price > 20 AND stock = 0`,
		`price > 20 OR stock = 0`,
		`NOT brand = "nike"`,
		`(price > 20 OR price < 10) AND brand = "nike"`,
		`price > 20 OR stock = 0 AND brand = "nike"`,
	}

	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			expr, err := parser.Parse(src)
			require.NoError(t, err)

			rendered := ast.Render(expr)
			reparsed, err := parser.Parse(rendered)
			require.NoError(t, err, "rendered %q must reparse", rendered)

			require.True(t, ast.Equal(expr, reparsed), "rendered %q did not reparse to a structurally equal tree", rendered)
		})
	}
}
