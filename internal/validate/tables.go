package validate

import (
	"maps"

	"newtype-generator/internal/meta"
)

// One policy table per inner-type family: trait -> required categories.
// Built once; evaluated uniformly by Traits.
var (
	stringTraits  map[meta.DeriveTrait]CategoryEnum
	integerTraits map[meta.DeriveTrait]CategoryEnum
	floatTraits   map[meta.DeriveTrait]CategoryEnum
)

func init() {
	// Shared across all families.
	shared := map[meta.DeriveTrait]CategoryEnum{
		meta.TraitEq:       CategoryStructural,
		meta.TraitOrd:      CategoryStructural,
		meta.TraitStringer: CategoryStructural,
		meta.TraitParse:    CategoryParsing,
		meta.TraitJSON:     CategoryParsing,
		meta.TraitText:     CategoryParsing,
		meta.TraitFrom:     CategoryCoercing,
		meta.TraitDefault:  CategoryConstructing,
	}

	stringTraits = maps.Clone(shared)
	stringTraits[meta.TraitHash] = CategoryStructural
	// No arith for strings: concatenation is not closed under any length or
	// pattern validator and has no declared semantics here.

	integerTraits = maps.Clone(shared)
	integerTraits[meta.TraitHash] = CategoryStructural
	integerTraits[meta.TraitArith] = CategoryClosure

	floatTraits = maps.Clone(shared)
	floatTraits[meta.TraitEq] = CategoryStructural | CategoryExact
	floatTraits[meta.TraitOrd] = CategoryStructural | CategoryExact
	floatTraits[meta.TraitArith] = CategoryClosure
	// No hash for floats: NaN and negative zero break the Equal/Hash
	// contract.
}
