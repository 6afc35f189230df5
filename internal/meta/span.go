package meta

import "fmt"

// Span is a source position inside a declaration file. The zero Span means
// "no position available" and renders as an empty string.
type Span struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the span carries no position.
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) String() string {
	if s.IsZero() {
		return ""
	}

	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Spanned decorates a value with the position it was declared at. It is
// orthogonal to the value itself: stages that don't report errors ignore
// the span entirely.
type Spanned[T any] struct {
	Value T
	Span  Span
}

// At is a shorthand constructor for Spanned values.
func At[T any](value T, span Span) Spanned[T] {
	return Spanned[T]{Value: value, Span: span}
}
