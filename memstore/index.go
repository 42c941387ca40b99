package memstore

import (
	"github.com/Funny002/meilisearch/bitmap"
	"github.com/Funny002/meilisearch/index"
)

// Index is a minimal index.Index implementation backed by a Store,
// standing in for the indexer construction spec.md places out of scope.
// It is built through IndexBuilder, not constructed directly.
type Index struct {
	fields  *index.FieldsIDsMap
	faceted map[index.FieldID]index.FacetType
	docs    *bitmap.Bitmap
	store   *Store
}

func (ix *Index) FieldsIDsMap() *index.FieldsIDsMap                { return ix.fields }
func (ix *Index) FacetedFields() map[index.FieldID]index.FacetType { return ix.faceted }
func (ix *Index) DocumentsIDs() *bitmap.Bitmap                     { return ix.docs }
func (ix *Index) Store() index.Store                               { return ix.store }

var _ index.Index = (*Index)(nil)

// IndexBuilder accumulates (docID, field, value) observations and
// materializes them into an Index, registering each field's name and
// FacetType the first time it is used.
type IndexBuilder struct {
	store   *Builder
	fields  *index.FieldsIDsMap
	faceted map[index.FieldID]index.FacetType
	docs    *bitmap.Bitmap
}

// NewIndexBuilder returns an empty IndexBuilder.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		store:   NewBuilder(),
		fields:  index.NewFieldsIDsMap(),
		faceted: make(map[index.FieldID]index.FacetType),
		docs:    bitmap.New(),
	}
}

func (b *IndexBuilder) field(name string, ft index.FacetType) (index.FieldID, error) {
	id, err := b.fields.Insert(name)
	if err != nil {
		return 0, err
	}
	b.faceted[id] = ft
	return id, nil
}

// AddInt64 records that docID has value for the integer-faceted field
// name.
func (b *IndexBuilder) AddInt64(name string, docID uint32, value int64) error {
	id, err := b.field(name, index.Integer)
	if err != nil {
		return err
	}
	b.docs.Add(docID)
	b.store.AddInt64(id, docID, value)
	return nil
}

// AddFloat64 records that docID has value for the float-faceted field
// name.
func (b *IndexBuilder) AddFloat64(name string, docID uint32, value float64) error {
	id, err := b.field(name, index.Float)
	if err != nil {
		return err
	}
	b.docs.Add(docID)
	b.store.AddFloat64(id, docID, value)
	return nil
}

// AddString records that docID has value for the string-faceted field
// name.
func (b *IndexBuilder) AddString(name string, docID uint32, value string) error {
	id, err := b.field(name, index.String)
	if err != nil {
		return err
	}
	b.docs.Add(docID)
	b.store.AddString(id, docID, value)
	return nil
}

// RegisterField registers name without any facet type, for fields that
// exist in the document schema but were never declared faceted.
func (b *IndexBuilder) RegisterField(name string) (index.FieldID, error) {
	return b.fields.Insert(name)
}

// AddDocument registers docID as part of the universe without attaching
// any facet value, for documents that exist but have nothing set for a
// given faceted field.
func (b *IndexBuilder) AddDocument(docID uint32) {
	b.docs.Add(docID)
}

// Build materializes the accumulated observations into an Index.
func (b *IndexBuilder) Build() *Index {
	return &Index{
		fields:  b.fields,
		faceted: b.faceted,
		docs:    b.docs,
		store:   b.store.Build(),
	}
}
