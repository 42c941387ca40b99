// Package resolver implements the hierarchical range resolver: the core
// algorithm that turns a numeric operator over a faceted field into the
// set of document ids satisfying it, by descending a summary-level
// hierarchy from coarse to fine and recursing only across the two
// boundary gaps a level's groups don't already cover exactly.
package resolver

import "math"

// Ordinal is the constraint satisfied by the two facet value domains this
// module supports. Go's generics let the resolver body be written once
// instead of once per type, the same role the teacher's own
// ast.Compare[L identType, R literalType] generic constructors play.
type Ordinal interface {
	~int64 | ~float64
}

// EndpointKind tags whether an Endpoint bounds its side of an interval
// inclusively, exclusively, or not at all. It fills the role Rust's
// std::ops::Bound<T> plays in the original source this module is grounded
// on, since Go has no built-in equivalent.
type EndpointKind int

const (
	Unbounded EndpointKind = iota
	Included
	Excluded
)

func (k EndpointKind) String() string {
	switch k {
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return "Unbounded"
	}
}

// Endpoint is one side of an Interval.
type Endpoint[T Ordinal] struct {
	Kind  EndpointKind
	Value T
}

// Inc returns an inclusive endpoint at v.
func Inc[T Ordinal](v T) Endpoint[T] { return Endpoint[T]{Kind: Included, Value: v} }

// Exc returns an exclusive endpoint at v.
func Exc[T Ordinal](v T) Endpoint[T] { return Endpoint[T]{Kind: Excluded, Value: v} }

// Unb returns an unbounded endpoint.
func Unb[T Ordinal]() Endpoint[T] { return Endpoint[T]{Kind: Unbounded} }

// Interval is the resolved range a NumberOperator evaluates to once its
// Min/Max bounds are filled in by a Codec.
type Interval[T Ordinal] struct {
	Left, Right Endpoint[T]
}

// Codec supplies the bounded-domain constants the resolver needs for its
// open-ended operators (num_traits::Bounded in the original source).
type Codec[T Ordinal] struct {
	Min T
	Max T
}

// Int64Codec bounds the int64 facet domain.
var Int64Codec = Codec[int64]{Min: math.MinInt64, Max: math.MaxInt64}

// Float64Codec bounds the float64 facet domain.
var Float64Codec = Codec[float64]{Min: -math.MaxFloat64, Max: math.MaxFloat64}
