package facet

import (
	"fmt"
	"strings"

	"github.com/Funny002/meilisearch/token"
)

// UnknownAttribute is returned when a filter references a field that was
// never registered in the index's FieldsIDsMap.
type UnknownAttribute struct {
	Name  string
	Known []string
	Span  token.Span
}

func (e *UnknownAttribute) Error() string {
	return fmt.Sprintf("attribute %q not found, available attributes are: %s (at %s)", e.Name, strings.Join(e.Known, ", "), e.Span)
}

// NotFaceted is returned when a filter references a field that exists but
// was never declared as faceted.
type NotFaceted struct {
	Name    string
	Faceted []string
	Span    token.Span
}

func (e *NotFaceted) Error() string {
	return fmt.Sprintf("attribute %q is not faceted, available faceted attributes are: %s (at %s)", e.Name, strings.Join(e.Faceted, ", "), e.Span)
}

// InvalidOperatorOnString is returned when a comparison or range operator
// that only makes sense for numbers (GT/GE/LT/LE/BETWEEN) is used against
// a string-typed facet, which only supports equality.
type InvalidOperatorOnString struct {
	Span token.Span
}

func (e *InvalidOperatorOnString) Error() string {
	return fmt.Sprintf("invalid operator on a faceted string (at %s)", e.Span)
}

// InvalidLiteral is returned when a literal's lexical kind (number or
// string) doesn't match the facet type of the field it's compared against.
type InvalidLiteral struct {
	Expected string
	Got      string
	Span     token.Span
}

func (e *InvalidLiteral) Error() string {
	return fmt.Sprintf("expected a %s literal, found %s (at %s)", e.Expected, e.Got, e.Span)
}

// ParseError wraps a syntax error from package parser so every error this
// package returns can be distinguished with errors.As against a facet type.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StoreError wraps an error returned by the index.Store collaborator so
// callers can still unwrap through to it with errors.Is/errors.As.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("facet store: %s", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
