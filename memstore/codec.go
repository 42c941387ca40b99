// Package memstore is an in-memory reference implementation of
// index.Store, used by the memstore, resolver and facet tests. Index construction and
// persistence are out of scope (see DESIGN.md); this package exists only
// so the resolver has something real to read from.
package memstore

import (
	"math"

	"github.com/Funny002/meilisearch/index"
)

// encodeInt64 maps v to a uint64 such that byte-lexicographic (here,
// plain numeric) order over the result matches the natural order over v.
// Flipping the sign bit turns two's-complement order into unsigned order:
// the most negative int64 (sign bit 1, magnitude bits all 0) becomes 0,
// and the most positive int64 becomes the maximum uint64.
func encodeInt64(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}

func decodeInt64(bits uint64) int64 {
	return int64(bits ^ (1 << 63))
}

// encodeFloat64 applies the standard sign-magnitude flip: non-negative
// values get their sign bit set (so they sort above all negatives), and
// negative values get every bit flipped (so that more-negative values,
// which have larger magnitude bit patterns, sort lower).
func encodeFloat64(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits>>63 == 1 {
		return ^bits
	}
	return bits | (1 << 63)
}

func decodeFloat64(bits uint64) float64 {
	if bits>>63 == 1 {
		return math.Float64frombits(bits &^ (1 << 63))
	}
	return math.Float64frombits(^bits)
}

// stringKey returns the lookup key for a string facet value under field.
func stringKey(field index.FieldID, value string) string {
	buf := make([]byte, 0, 1+len(value))
	buf = append(buf, byte(field))
	buf = append(buf, value...)
	return string(buf)
}
