// Package bitmap provides a compressed set of document ids, used as the
// payload of every facet index entry and as the accumulator for evaluating
// a filter expression against an index.
package bitmap

import "github.com/bits-and-blooms/bitset"

// Bitmap is a set of document ids backed by a word-packed bitset. The zero
// value has no backing bitset and is not ready to use; create a Bitmap with
// New or FromSlice.
type Bitmap struct {
	bits *bitset.BitSet
}

// New returns an empty Bitmap.
func New() *Bitmap {
	return &Bitmap{bits: bitset.New(0)}
}

// FromSlice builds a Bitmap containing exactly the given document ids.
func FromSlice(ids []uint32) *Bitmap {
	b := New()
	for _, id := range ids {
		b.Add(id)
	}
	return b
}

// Add sets id as a member of the bitmap.
func (b *Bitmap) Add(id uint32) {
	b.bits.Set(uint(id))
}

// Remove clears id from the bitmap.
func (b *Bitmap) Remove(id uint32) {
	b.bits.Clear(uint(id))
}

// Contains reports whether id is a member of the bitmap.
func (b *Bitmap) Contains(id uint32) bool {
	return b.bits.Test(uint(id))
}

// Len returns the number of members in the bitmap.
func (b *Bitmap) Len() uint {
	return b.bits.Count()
}

// IsEmpty reports whether the bitmap has no members.
func (b *Bitmap) IsEmpty() bool {
	return b.bits.None()
}

// Clone returns an independent copy of b.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{bits: b.bits.Clone()}
}

// Union returns a new Bitmap containing the members of b and other.
func (b *Bitmap) Union(other *Bitmap) *Bitmap {
	return &Bitmap{bits: b.bits.Union(other.bits)}
}

// Intersect returns a new Bitmap containing only members present in both
// b and other.
func (b *Bitmap) Intersect(other *Bitmap) *Bitmap {
	return &Bitmap{bits: b.bits.Intersection(other.bits)}
}

// Difference returns a new Bitmap containing the members of b that are not
// members of other. NOT is implemented as universe.Difference(x), so the
// caller is responsible for supplying the right universe (see
// Condition.Evaluate in the facet package).
func (b *Bitmap) Difference(other *Bitmap) *Bitmap {
	return &Bitmap{bits: b.bits.Difference(other.bits)}
}

// UnionInPlace merges other's members into b, without allocating a new
// underlying bitset. Used by the resolver to accumulate results across
// many small scans instead of allocating one bitmap per level.
func (b *Bitmap) UnionInPlace(other *Bitmap) {
	b.bits.InPlaceUnion(other.bits)
}

// Equal reports whether b and other contain the same members.
func (b *Bitmap) Equal(other *Bitmap) bool {
	return b.bits.Equal(other.bits)
}

// ToSlice returns the sorted member ids.
func (b *Bitmap) ToSlice() []uint32 {
	out := make([]uint32, 0, b.bits.Count())
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		out = append(out, uint32(i))
	}
	return out
}

// Iterate calls fn once for every member id in ascending order, stopping
// early if fn returns false.
func (b *Bitmap) Iterate(fn func(id uint32) bool) {
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		if !fn(uint32(i)) {
			return
		}
	}
}
