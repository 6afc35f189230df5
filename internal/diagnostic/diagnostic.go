package diagnostic

import (
	"fmt"

	"newtype-generator/internal/meta"
)

// Stable diagnostic codes. cmd prints them verbatim so that declaration
// files can be fixed by grepping for the code.
const (
	CodeUnknownOption    = "unknown_option"
	CodeDuplicateOption  = "duplicate_option"
	CodeMalformedLiteral = "malformed_literal"
	CodeFamilyMismatch   = "family_mismatch"
	CodeUnknownInner     = "unknown_inner_type"
	CodeUnknownTrait     = "unknown_trait"
	CodeTraitForbidden   = "trait_forbidden"
	CodeMissingDefault   = "missing_default"
	CodeSchema           = "schema"
)

// Error is a single positioned diagnostic.
type Error struct {
	// Code is a stable identifier for this class of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Span points at the offending declaration token. May be zero when the
	// failure has no single source position.
	Span meta.Span
}

func (e *Error) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s: %s", e.Span, e.Code, e.Message)
}

// Errorf builds a positioned Error with a formatted message.
func Errorf(span meta.Span, code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	}
}
