package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Funny002/meilisearch/bitmap"
	"github.com/Funny002/meilisearch/index"
)

// GroupSize is the branching factor used when Build aggregates level 0
// entries into higher summary levels, mirroring the fixed fan-out of the
// on-disk hierarchy this store stands in for.
const GroupSize = 4

type levelEntry[T any] struct {
	low, high T
	ids       *bitmap.Bitmap
}

type fieldLevels[T any] struct {
	levels [][]levelEntry[T] // levels[0] is the finest level
}

// Store is an in-memory implementation of index.Store. It is built once,
// via Build, and is safe for concurrent read-only queries afterward; the
// mutex only guards against a Build happening concurrently with a read.
type Store struct {
	mu      sync.RWMutex
	ints    map[index.FieldID]*fieldLevels[int64]
	floats  map[index.FieldID]*fieldLevels[float64]
	strings map[string]*bitmap.Bitmap
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		ints:    make(map[index.FieldID]*fieldLevels[int64]),
		floats:  make(map[index.FieldID]*fieldLevels[float64]),
		strings: make(map[string]*bitmap.Bitmap),
	}
}

var _ index.Store = (*Store)(nil)

func (s *Store) MaxLevel(_ context.Context, field index.FieldID) (uint8, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if fl, ok := s.ints[field]; ok && len(fl.levels) > 0 {
		return uint8(len(fl.levels) - 1), true, nil
	}
	if fl, ok := s.floats[field]; ok && len(fl.levels) > 0 {
		return uint8(len(fl.levels) - 1), true, nil
	}
	return 0, false, nil
}

func rangeScan[T any](levels [][]levelEntry[T], level uint8, low, high T, less func(a, b T) bool) ([]index.FacetEntry[T], error) {
	if int(level) >= len(levels) {
		return nil, fmt.Errorf("memstore: level %d out of range (max %d)", level, len(levels)-1)
	}
	entries := levels[level]
	out := make([]index.FacetEntry[T], 0)
	for _, e := range entries {
		if less(high, e.low) || less(e.high, low) {
			continue
		}
		entry := e
		out = append(out, index.FacetEntry[T]{
			Low:  entry.low,
			High: entry.high,
			Decode: func() (*bitmap.Bitmap, error) {
				return entry.ids.Clone(), nil
			},
		})
	}
	return out, nil
}

func lowerThanOrEqualScan[T any](levels [][]levelEntry[T], level uint8, value T, less func(a, b T) bool) ([]index.FacetEntry[T], error) {
	if int(level) >= len(levels) {
		return nil, fmt.Errorf("memstore: level %d out of range (max %d)", level, len(levels)-1)
	}
	entries := levels[level]
	out := make([]index.FacetEntry[T], 0)
	for _, e := range entries {
		if less(value, e.low) {
			continue
		}
		entry := e
		out = append(out, index.FacetEntry[T]{
			Low:  entry.low,
			High: entry.high,
			Decode: func() (*bitmap.Bitmap, error) {
				return entry.ids.Clone(), nil
			},
		})
	}
	return out, nil
}

func lessInt64(a, b int64) bool     { return a < b }
func lessFloat64(a, b float64) bool { return a < b }

func (s *Store) RangeInt64(_ context.Context, field index.FieldID, level uint8, low, high int64) ([]index.FacetEntry[int64], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fl, ok := s.ints[field]
	if !ok {
		return nil, fmt.Errorf("memstore: field %d has no integer facet data", field)
	}
	return rangeScan(fl.levels, level, low, high, lessInt64)
}

func (s *Store) RangeFloat64(_ context.Context, field index.FieldID, level uint8, low, high float64) ([]index.FacetEntry[float64], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fl, ok := s.floats[field]
	if !ok {
		return nil, fmt.Errorf("memstore: field %d has no float facet data", field)
	}
	return rangeScan(fl.levels, level, low, high, lessFloat64)
}

func (s *Store) LowerThanOrEqualInt64(_ context.Context, field index.FieldID, level uint8, value int64) ([]index.FacetEntry[int64], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fl, ok := s.ints[field]
	if !ok {
		return nil, fmt.Errorf("memstore: field %d has no integer facet data", field)
	}
	return lowerThanOrEqualScan(fl.levels, level, value, lessInt64)
}

func (s *Store) LowerThanOrEqualFloat64(_ context.Context, field index.FieldID, level uint8, value float64) ([]index.FacetEntry[float64], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fl, ok := s.floats[field]
	if !ok {
		return nil, fmt.Errorf("memstore: field %d has no float facet data", field)
	}
	return lowerThanOrEqualScan(fl.levels, level, value, lessFloat64)
}

func (s *Store) GetString(_ context.Context, field index.FieldID, value string) (*bitmap.Bitmap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ids, ok := s.strings[stringKey(field, value)]; ok {
		return ids.Clone(), nil
	}
	return bitmap.New(), nil
}

// buildLevels groups the finest-grained entries into successive summary
// levels of fan-out GroupSize, the way the on-disk hierarchy this store
// stands in for is built: level 0 holds one entry per distinct value,
// and each higher level merges GroupSize consecutive entries from the one
// below it, unioning their bitmaps and widening the range to
// [first.low, last.high].
func buildLevels[T any](level0 []levelEntry[T]) [][]levelEntry[T] {
	levels := [][]levelEntry[T]{level0}
	for {
		prev := levels[len(levels)-1]
		if len(prev) <= 1 {
			return levels
		}
		next := make([]levelEntry[T], 0, (len(prev)+GroupSize-1)/GroupSize)
		for i := 0; i < len(prev); i += GroupSize {
			end := i + GroupSize
			if end > len(prev) {
				end = len(prev)
			}
			group := prev[i:end]
			ids := bitmap.New()
			for _, e := range group {
				ids = ids.Union(e.ids)
			}
			next = append(next, levelEntry[T]{
				low:  group[0].low,
				high: group[len(group)-1].high,
				ids:  ids,
			})
		}
		levels = append(levels, next)
	}
}

// Builder accumulates (docID, value) observations per field and
// materializes them into a Store's level hierarchy on Build.
type Builder struct {
	store       *Store
	intValues   map[index.FieldID]map[int64]*bitmap.Bitmap
	floatValues map[index.FieldID]map[float64]*bitmap.Bitmap
}

// NewBuilder returns a Builder for constructing a Store from flat
// (docID, value) observations, standing in for the indexer spec.md places
// out of scope.
func NewBuilder() *Builder {
	return &Builder{
		store:       New(),
		intValues:   make(map[index.FieldID]map[int64]*bitmap.Bitmap),
		floatValues: make(map[index.FieldID]map[float64]*bitmap.Bitmap),
	}
}

// AddInt64 records that docID has value under field.
func (b *Builder) AddInt64(field index.FieldID, docID uint32, value int64) {
	if b.intValues[field] == nil {
		b.intValues[field] = make(map[int64]*bitmap.Bitmap)
	}
	if b.intValues[field][value] == nil {
		b.intValues[field][value] = bitmap.New()
	}
	b.intValues[field][value].Add(docID)
}

// AddFloat64 records that docID has value under field.
func (b *Builder) AddFloat64(field index.FieldID, docID uint32, value float64) {
	if b.floatValues[field] == nil {
		b.floatValues[field] = make(map[float64]*bitmap.Bitmap)
	}
	if b.floatValues[field][value] == nil {
		b.floatValues[field][value] = bitmap.New()
	}
	b.floatValues[field][value].Add(docID)
}

// AddString records that docID has value under field.
func (b *Builder) AddString(field index.FieldID, docID uint32, value string) {
	key := stringKey(field, value)
	if b.store.strings[key] == nil {
		b.store.strings[key] = bitmap.New()
	}
	b.store.strings[key].Add(docID)
}

// Build materializes the level hierarchy for every field observed so far
// and returns the resulting Store.
func (b *Builder) Build() *Store {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	for field, values := range b.intValues {
		keys := make([]int64, 0, len(values))
		for v := range values {
			keys = append(keys, v)
		}
		// Sort by the order-preserving byte encoding rather than native
		// comparison, so the in-memory level hierarchy has the same key
		// order an on-disk store keyed by encodeInt64 would produce.
		sort.Slice(keys, func(i, j int) bool { return encodeInt64(keys[i]) < encodeInt64(keys[j]) })

		level0 := make([]levelEntry[int64], len(keys))
		for i, v := range keys {
			level0[i] = levelEntry[int64]{low: v, high: v, ids: values[v]}
		}
		b.store.ints[field] = &fieldLevels[int64]{levels: buildLevels(level0)}
	}

	for field, values := range b.floatValues {
		keys := make([]float64, 0, len(values))
		for v := range values {
			keys = append(keys, v)
		}
		sort.Slice(keys, func(i, j int) bool { return encodeFloat64(keys[i]) < encodeFloat64(keys[j]) })

		level0 := make([]levelEntry[float64], len(keys))
		for i, v := range keys {
			level0[i] = levelEntry[float64]{low: v, high: v, ids: values[v]}
		}
		b.store.floats[field] = &fieldLevels[float64]{levels: buildLevels(level0)}
	}

	return b.store
}
