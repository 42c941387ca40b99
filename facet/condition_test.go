package facet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Funny002/meilisearch/facet"
	"github.com/Funny002/meilisearch/memstore"
)

// buildShopCatalog seeds the five-document price/stock/brand example,
// plus a sixth document (6) that has price/stock but was never faceted
// for brand, used to exercise the documented NOT-over-the-universe
// behavior.
func buildShopCatalog(t *testing.T) *memstore.Index {
	t.Helper()
	b := memstore.NewIndexBuilder()

	prices := map[uint32]int64{1: 10, 2: 20, 3: 30, 4: 40, 5: 50, 6: 60}
	stocks := map[uint32]int64{1: 5, 2: 0, 3: 3, 4: 0, 5: 10, 6: 2}
	brands := map[uint32]string{1: "nike", 2: "adidas", 3: "nike", 4: "puma", 5: "adidas"}

	for doc, price := range prices {
		require.NoError(t, b.AddInt64("price", doc, price))
	}
	for doc, stock := range stocks {
		require.NoError(t, b.AddInt64("stock", doc, stock))
	}
	for doc, brand := range brands {
		require.NoError(t, b.AddString("brand", doc, brand))
	}
	b.AddDocument(6) // doc 6 has no brand value at all

	return b.Build()
}

func evaluate(t *testing.T, idx *memstore.Index, expression string) []uint32 {
	t.Helper()
	cond, err := facet.FromString(context.Background(), idx, expression)
	require.NoError(t, err)
	ids, err := cond.Evaluate(context.Background(), idx)
	require.NoError(t, err)
	return ids.ToSlice()
}

func TestEvaluateGreaterThan(t *testing.T) {
	idx := buildShopCatalog(t)
	require.ElementsMatch(t, []uint32{3, 4, 5, 6}, evaluate(t, idx, `price > 20`))
}

func TestEvaluateAnd(t *testing.T) {
	idx := buildShopCatalog(t)
	require.ElementsMatch(t, []uint32{3, 5, 6}, evaluate(t, idx, `price > 20 AND stock > 0`))
}

func TestEvaluateOr(t *testing.T) {
	idx := buildShopCatalog(t)
	require.ElementsMatch(t, []uint32{1, 2, 3, 5}, evaluate(t, idx, `brand = "nike" OR brand = "adidas"`))
}

func TestEvaluateBetween(t *testing.T) {
	idx := buildShopCatalog(t)
	require.ElementsMatch(t, []uint32{2, 3, 4}, evaluate(t, idx, `price 20 TO 40`))
}

func TestEvaluateNotEqualString(t *testing.T) {
	idx := buildShopCatalog(t)
	// NOT(brand = "nike") evaluates over the whole document universe, so
	// document 6 (never faceted for brand) is included even though it
	// was never "equal" nor "not equal" to anything meaningful for brand.
	require.ElementsMatch(t, []uint32{2, 4, 5, 6}, evaluate(t, idx, `brand != "nike"`))
}

func TestEvaluateNotStockZero(t *testing.T) {
	idx := buildShopCatalog(t)
	require.ElementsMatch(t, []uint32{1, 3, 5, 6}, evaluate(t, idx, `stock != 0`))
}

func TestEvaluateParenthesizedPrecedence(t *testing.T) {
	idx := buildShopCatalog(t)
	got := evaluate(t, idx, `(brand = "nike" OR brand = "puma") AND price < 40`)
	require.ElementsMatch(t, []uint32{1, 3}, got)
}

func TestEvaluateNestedNot(t *testing.T) {
	idx := buildShopCatalog(t)
	got := evaluate(t, idx, `NOT (price < 30)`)
	require.ElementsMatch(t, []uint32{3, 4, 5, 6}, got)
}
