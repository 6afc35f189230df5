package meta

import "newtype-generator/primitive"

// Visibility controls the casing of generated function prefixes. The type
// identifier itself is always emitted exactly as declared.
type Visibility int

const (
	VisPublic  Visibility = iota // NewX, ParseX, ErrX... (default)
	VisPackage                   // newX, parseX, errX...
)

// TypeName is the identifier of the generated wrapper, immutable once
// parsed, with the position of its declaration.
type TypeName struct {
	Name string
	Span Span
}

// NewtypeMeta is the structured request handed over by the front end.
// It is consumed exactly once by the dispatcher and never mutated.
type NewtypeMeta struct {
	Doc          []string
	TypeName     TypeName
	Inner        Spanned[primitive.KindEnum]
	Vis          Visibility
	DeriveTraits []SpannedDeriveTrait
}
