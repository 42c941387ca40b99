// Package index describes the catalog an evaluated filter expression is
// resolved against: the mapping from field names to ids, which of those
// fields are faceted (and as which type), and the document universe.
package index

import (
	"context"
	"fmt"

	"github.com/Funny002/meilisearch/bitmap"
)

// FieldID identifies a field within a single index. Ids are dense and
// bounded because the facet key encoding reserves a single byte for them.
type FieldID = uint8

// FacetType is the value domain a faceted field is indexed under.
type FacetType int

const (
	// Integer fields are resolved through RangeInt64.
	Integer FacetType = iota
	// Float fields are resolved through RangeFloat64.
	Float
	// String fields only support equality, resolved through GetString.
	String
)

func (t FacetType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return fmt.Sprintf("FacetType(%d)", int(t))
	}
}

// FieldsIDsMap is an injective mapping between field names and FieldID
// values. At most 256 fields can be registered, since FieldID is a byte.
type FieldsIDsMap struct {
	nameToID map[string]FieldID
	idToName []string
}

// NewFieldsIDsMap returns an empty map.
func NewFieldsIDsMap() *FieldsIDsMap {
	return &FieldsIDsMap{nameToID: make(map[string]FieldID)}
}

// Insert registers name, returning its id. Calling Insert again with the
// same name returns the id it was already assigned.
func (m *FieldsIDsMap) Insert(name string) (FieldID, error) {
	if id, ok := m.nameToID[name]; ok {
		return id, nil
	}
	if len(m.idToName) >= 256 {
		return 0, fmt.Errorf("index: cannot register field %q, field id space (256 ids) is exhausted", name)
	}
	id := FieldID(len(m.idToName))
	m.nameToID[name] = id
	m.idToName = append(m.idToName, name)
	return id, nil
}

// ID returns the id registered for name.
func (m *FieldsIDsMap) ID(name string) (FieldID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

// Name returns the name registered under id.
func (m *FieldsIDsMap) Name(id FieldID) (string, bool) {
	if int(id) >= len(m.idToName) {
		return "", false
	}
	return m.idToName[id], true
}

// Names returns every registered field name, in id order.
func (m *FieldsIDsMap) Names() []string {
	out := make([]string, len(m.idToName))
	copy(out, m.idToName)
	return out
}

// Index bundles the catalog data a filter evaluation needs: the field name
// registry, which fields are faceted and under which type, the full
// document universe (needed to evaluate NOT), and the Store collaborator
// backing range and point lookups.
type Index interface {
	// FieldsIDsMap returns the field name <-> id registry.
	FieldsIDsMap() *FieldsIDsMap
	// FacetedFields returns the FacetType each faceted field is indexed
	// under, keyed by FieldID.
	FacetedFields() map[FieldID]FacetType
	// DocumentsIDs returns every document id known to the index, used as
	// the universe NOT is evaluated against.
	DocumentsIDs() *bitmap.Bitmap
	// Store returns the facet storage collaborator.
	Store() Store
}

// FacetEntry is one key/value pair read from a facet level: the numeric
// range the key covers, and a Decode closure that materializes its
// document-id bitmap. Decode is only called by the resolver once a key has
// passed the upper take-while gate, so a caller that skips an entry never
// pays for decoding its bitmap.
type FacetEntry[T any] struct {
	Low, High T
	Decode    func() (*bitmap.Bitmap, error)
}

// Store is the storage-agnostic collaborator the resolver reads facet data
// through. memstore is the in-memory reference implementation; a real
// index would back this with an on-disk ordered key-value engine, which is
// out of scope for this module (see DESIGN.md).
type Store interface {
	// MaxLevel returns the highest populated facet level for field, and
	// false if the field has no facet data at all.
	MaxLevel(ctx context.Context, field FieldID) (level uint8, ok bool, err error)

	// RangeInt64 returns every entry at the given level whose key range
	// intersects [low, high], ordered ascending by Low.
	RangeInt64(ctx context.Context, field FieldID, level uint8, low, high int64) ([]FacetEntry[int64], error)
	// RangeFloat64 is RangeInt64 for float facets.
	RangeFloat64(ctx context.Context, field FieldID, level uint8, low, high float64) ([]FacetEntry[float64], error)

	// LowerThanOrEqualInt64 returns the entries at level whose Low is
	// less than or equal to value, ordered ascending by Low. A general
	// lower-bound probe a Store implementation can use to answer queries
	// without a full level scan; the resolver itself only needs Range.
	LowerThanOrEqualInt64(ctx context.Context, field FieldID, level uint8, value int64) ([]FacetEntry[int64], error)
	// LowerThanOrEqualFloat64 is LowerThanOrEqualInt64 for float facets.
	LowerThanOrEqualFloat64(ctx context.Context, field FieldID, level uint8, value float64) ([]FacetEntry[float64], error)

	// GetString returns the document-id bitmap for an exact string facet
	// value, or an empty bitmap if the value is absent.
	GetString(ctx context.Context, field FieldID, value string) (*bitmap.Bitmap, error)
}
