package schema

import "newtype-generator/internal/meta"

// File represents one parsed declaration file.
type File struct {
	// Version of the declaration schema (for future compatibility).
	Version string
	// Package optionally overrides the configured output package name.
	Package string
	// Newtypes holds the declarations in file order.
	Newtypes []Newtype
}

// Newtype is one declaration: the structured request for the dispatcher and
// the raw guard configuration for the family attribute parser.
type Newtype struct {
	Meta  meta.NewtypeMeta
	Attrs Attributes
}

// Attributes is the raw, family-agnostic guard configuration. Rule
// arguments stay as declared spellings; interpreting them at the concrete
// inner type is the attribute parser's job.
type Attributes struct {
	Sanitize     []Rule
	Validate     []Rule
	Default      *meta.Spanned[string]
	NewUnchecked meta.NewUnchecked
}

// Rule is one sanitize/validate entry. Declared either as a bare name
// (`- trim`), a single-argument form (`- min_len: 5`), or an argument list
// (`- clamp: [0, 100]`).
type Rule struct {
	Name string
	Args []string
	Span meta.Span
}
