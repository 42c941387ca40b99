// Package facet ties the expression builder, the numeric range resolver,
// and the string/combinator evaluation together into the user-facing
// filter condition type.
package facet

import (
	"context"

	"github.com/Funny002/meilisearch/bitmap"
	"github.com/Funny002/meilisearch/facet/resolver"
	"github.com/Funny002/meilisearch/index"
)

// Kind tags which case of the Condition tagged union a value represents.
type Kind int

const (
	OpI64 Kind = iota
	OpF64
	OpString
	And
	Or
	Not
)

// Condition is the typed filter expression tree the builder produces and
// Evaluate consumes. Only the fields relevant to Kind are populated.
type Condition struct {
	Kind Kind

	Field index.FieldID

	NumberI64 resolver.NumberOperator[int64]
	NumberF64 resolver.NumberOperator[float64]
	String    string

	Left, Right *Condition
	Inner       *Condition
}

func opI64(field index.FieldID, op resolver.NumberOperator[int64]) *Condition {
	return &Condition{Kind: OpI64, Field: field, NumberI64: op}
}

func opF64(field index.FieldID, op resolver.NumberOperator[float64]) *Condition {
	return &Condition{Kind: OpF64, Field: field, NumberF64: op}
}

func opString(field index.FieldID, value string) *Condition {
	return &Condition{Kind: OpString, Field: field, String: value}
}

func and(left, right *Condition) *Condition {
	return &Condition{Kind: And, Left: left, Right: right}
}

func or(left, right *Condition) *Condition {
	return &Condition{Kind: Or, Left: left, Right: right}
}

func not(inner *Condition) *Condition {
	return &Condition{Kind: Not, Inner: inner}
}

// Evaluate resolves the condition against idx, returning the matching
// document ids. AND/OR/NOT are evaluated eagerly, not short-circuited:
// both branches are always resolved before being combined, matching
// spec.md's description of the combinator semantics.
func (c *Condition) Evaluate(ctx context.Context, idx index.Index) (*bitmap.Bitmap, error) {
	switch c.Kind {
	case OpI64:
		ids, err := resolver.ResolveInt64(ctx, idx.Store(), c.Field, c.NumberI64)
		if err != nil {
			return nil, &StoreError{Err: err}
		}
		return ids, nil

	case OpF64:
		ids, err := resolver.ResolveFloat64(ctx, idx.Store(), c.Field, c.NumberF64)
		if err != nil {
			return nil, &StoreError{Err: err}
		}
		return ids, nil

	case OpString:
		ids, err := idx.Store().GetString(ctx, c.Field, c.String)
		if err != nil {
			return nil, &StoreError{Err: err}
		}
		return ids, nil

	case Or:
		lhs, err := c.Left.Evaluate(ctx, idx)
		if err != nil {
			return nil, err
		}
		rhs, err := c.Right.Evaluate(ctx, idx)
		if err != nil {
			return nil, err
		}
		return lhs.Union(rhs), nil

	case And:
		lhs, err := c.Left.Evaluate(ctx, idx)
		if err != nil {
			return nil, err
		}
		rhs, err := c.Right.Evaluate(ctx, idx)
		if err != nil {
			return nil, err
		}
		return lhs.Intersect(rhs), nil

	case Not:
		// NOT is evaluated against the full document universe, not a
		// bitwise complement of the inner result: a document that was
		// never faceted for this field can still be returned by NOT,
		// since it is "not equal" to anything. Left as-is, matching the
		// original source this module is grounded on.
		inner, err := c.Inner.Evaluate(ctx, idx)
		if err != nil {
			return nil, err
		}
		return idx.DocumentsIDs().Difference(inner), nil

	default:
		panic("facet: unknown condition kind")
	}
}
