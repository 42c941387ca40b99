package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Funny002/meilisearch/bitmap"
	"github.com/Funny002/meilisearch/index"
)

// levelStore is the type-specialized slice of index.Store this package
// needs: a single level's range scan, already decoded to concrete T bounds.
type levelStore[T Ordinal] interface {
	Range(ctx context.Context, field index.FieldID, level uint8, low, high T) ([]index.FacetEntry[T], error)
}

type int64Store struct{ store index.Store }

func (s int64Store) Range(ctx context.Context, field index.FieldID, level uint8, low, high int64) ([]index.FacetEntry[int64], error) {
	return s.store.RangeInt64(ctx, field, level, low, high)
}

type float64Store struct{ store index.Store }

func (s float64Store) Range(ctx context.Context, field index.FieldID, level uint8, low, high float64) ([]index.FacetEntry[float64], error) {
	return s.store.RangeFloat64(ctx, field, level, low, high)
}

// ResolveInt64 resolves op against field's integer facet data in store.
func ResolveInt64(ctx context.Context, store index.Store, field index.FieldID, op NumberOperator[int64]) (*bitmap.Bitmap, error) {
	return resolveNumeric[int64](ctx, int64Store{store}, store.MaxLevel, field, op, Int64Codec)
}

// ResolveFloat64 resolves op against field's float facet data in store.
func ResolveFloat64(ctx context.Context, store index.Store, field index.FieldID, op NumberOperator[float64]) (*bitmap.Bitmap, error) {
	return resolveNumeric[float64](ctx, float64Store{store}, store.MaxLevel, field, op, Float64Codec)
}

// resolveNumeric is the entry point: it discovers the highest populated
// level for field (returning an empty result immediately if the field has
// no facet data at all, matching the original's `None => empty bitmap`
// case), maps the operator to its interval, and explores the hierarchy.
func resolveNumeric[T Ordinal](
	ctx context.Context,
	store levelStore[T],
	maxLevel func(ctx context.Context, field index.FieldID) (uint8, bool, error),
	field index.FieldID,
	op NumberOperator[T],
	codec Codec[T],
) (*bitmap.Bitmap, error) {
	level, ok, err := maxLevel(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("resolver: discovering max level for field %d: %w", field, err)
	}
	if !ok {
		return bitmap.New(), nil
	}

	interval := op.Interval(codec)
	output := bitmap.New()
	if err := explore(ctx, store, field, level, interval.Left, interval.Right, codec, output); err != nil {
		return nil, err
	}
	return output, nil
}

// explore aggregates the documents ids part of [left, right] by
// automatically going deeper through the levels, exactly as the original
// explore_facet_levels does: union whole groups that fall entirely inside
// the interval, then recurse one level down across the two slivers at its
// edges that a whole group didn't already cover.
func explore[T Ordinal](
	ctx context.Context,
	store levelStore[T],
	field index.FieldID,
	level uint8,
	left, right Endpoint[T],
	codec Codec[T],
	output *bitmap.Bitmap,
) error {
	switch {
	// An exact value request always restarts at the finest level.
	case left.Kind == Included && right.Kind == Included && left.Value == right.Value && level > 0:
		return explore(ctx, store, field, 0, left, right, codec, output)
	case left.Kind == Included && right.Kind == Included && left.Value > right.Value:
		return nil
	case left.Kind == Included && right.Kind == Excluded && left.Value >= right.Value:
		return nil
	case left.Kind == Excluded && right.Kind == Excluded && left.Value >= right.Value:
		return nil
	case left.Kind == Excluded && right.Kind == Included && left.Value >= right.Value:
		return nil
	}

	lowBound := codec.Min
	if left.Kind != Unbounded {
		lowBound = left.Value
	}

	entries, err := store.Range(ctx, field, level, lowBound, codec.Max)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "resolver: exploring level", "field", field, "level", level, "left", left, "right", right)

	var (
		leftFound, rightFound T
		found                 bool
	)

scan:
	for _, e := range entries {
		switch left.Kind {
		case Included:
			if e.Low < left.Value {
				continue
			}
		case Excluded:
			if e.Low <= left.Value {
				continue
			}
		}
		switch right.Kind {
		case Included:
			if e.High > right.Value {
				break scan
			}
		case Excluded:
			if e.High >= right.Value {
				break scan
			}
		}

		ids, err := e.Decode()
		if err != nil {
			return err
		}
		output.UnionInPlace(ids)
		slog.DebugContext(ctx, "resolver: level entry matched", "low", e.Low, "high", e.High, "level", level, "documents", ids.Len())

		if !found {
			leftFound = e.Low
		}
		rightFound = e.High
		found = true
	}

	if level == 0 {
		return nil
	}
	deeperLevel := level - 1

	if !found {
		return explore(ctx, store, field, deeperLevel, left, right, codec, output)
	}

	if !(left.Kind == Included && left.Value == leftFound) {
		subRight := Endpoint[T]{Kind: Excluded, Value: leftFound}
		if err := explore(ctx, store, field, deeperLevel, left, subRight, codec, output); err != nil {
			return err
		}
	}
	if !(right.Kind == Included && right.Value == rightFound) {
		subLeft := Endpoint[T]{Kind: Excluded, Value: rightFound}
		if err := explore(ctx, store, field, deeperLevel, subLeft, right, codec, output); err != nil {
			return err
		}
	}
	return nil
}
