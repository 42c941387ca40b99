package facet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Funny002/meilisearch/facet"
	"github.com/Funny002/meilisearch/memstore"
)

func buildCatalog(t *testing.T) *memstore.Index {
	t.Helper()
	b := memstore.NewIndexBuilder()
	require.NoError(t, b.AddInt64("price", 1, 10))
	require.NoError(t, b.AddInt64("price", 2, 20))
	require.NoError(t, b.AddInt64("stock", 1, 0))
	require.NoError(t, b.AddInt64("stock", 2, 5))
	require.NoError(t, b.AddString("brand", 1, "nike"))
	require.NoError(t, b.AddString("brand", 2, "adidas"))
	return b.Build()
}

func TestBuildUnknownAttribute(t *testing.T) {
	idx := buildCatalog(t)
	_, err := facet.FromString(context.Background(), idx, `weight > 10`)
	require.Error(t, err)

	var unknown *facet.UnknownAttribute
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "weight", unknown.Name)
}

func TestBuildNotFaceted(t *testing.T) {
	b := memstore.NewIndexBuilder()
	require.NoError(t, b.AddInt64("price", 1, 10))
	require.NoError(t, b.AddInt64("price", 2, 20))
	require.NoError(t, b.AddInt64("stock", 1, 0))
	require.NoError(t, b.AddInt64("stock", 2, 5))
	require.NoError(t, b.AddString("brand", 1, "nike"))
	require.NoError(t, b.AddString("brand", 2, "adidas"))
	// description exists in the document schema but was never faceted.
	_, err := b.RegisterField("description")
	require.NoError(t, err)
	idx := b.Build()

	_, err = facet.FromString(context.Background(), idx, `description = "x"`)
	require.Error(t, err)

	var notFaceted *facet.NotFaceted
	require.True(t, errors.As(err, &notFaceted))
	require.Equal(t, "description", notFaceted.Name)
}

func TestBuildInvalidOperatorOnString(t *testing.T) {
	idx := buildCatalog(t)
	_, err := facet.FromString(context.Background(), idx, `brand > "nike"`)
	require.Error(t, err)

	var invalid *facet.InvalidOperatorOnString
	require.True(t, errors.As(err, &invalid))
}

func TestBuildBetweenOnStringIsInvalid(t *testing.T) {
	idx := buildCatalog(t)
	_, err := facet.FromString(context.Background(), idx, `brand 1 TO 2`)
	require.Error(t, err)

	var invalid *facet.InvalidOperatorOnString
	require.True(t, errors.As(err, &invalid))
}

func TestBuildInvalidLiteralKind(t *testing.T) {
	idx := buildCatalog(t)
	_, err := facet.FromString(context.Background(), idx, `price = "ten"`)
	require.Error(t, err)

	var invalid *facet.InvalidLiteral
	require.True(t, errors.As(err, &invalid))
}

func TestBuildNotEqualRewritesToNot(t *testing.T) {
	idx := buildCatalog(t)
	cond, err := facet.FromString(context.Background(), idx, `brand != "nike"`)
	require.NoError(t, err)
	require.Equal(t, facet.Not, cond.Kind)
	require.Equal(t, facet.OpString, cond.Inner.Kind)
	require.Equal(t, "nike", cond.Inner.String)
}

func TestBuildRejectsNaNLiteral(t *testing.T) {
	// The grammar can only ever lex a float literal starting with a digit
	// or '-', so a bare "NaN" token is never parsed as a number in the
	// first place; the query is rejected by the parser before it reaches
	// facet.Build's own defensive math.IsNaN guard on parsed float values.
	idx := buildCatalog(t)
	_, err := facet.FromString(context.Background(), idx, `price = NaN`)
	require.Error(t, err)

	var parseErr *facet.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestBuildAndOrTree(t *testing.T) {
	idx := buildCatalog(t)
	cond, err := facet.FromString(context.Background(), idx, `price > 10 AND stock > 0`)
	require.NoError(t, err)
	require.Equal(t, facet.And, cond.Kind)
	require.Equal(t, facet.OpI64, cond.Left.Kind)
	require.Equal(t, facet.OpI64, cond.Right.Kind)
}
