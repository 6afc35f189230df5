package validate

import (
	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/primitive"
)

// GuardInfo is the guard shape the policy cares about, family-erased so one
// evaluator serves all three families.
type GuardInfo struct {
	// HasValidation is true iff at least one validator is present.
	HasValidation bool
	// HasFinite is true iff a float guard contains the finite validator.
	HasFinite bool
}

// InfoString extracts the policy-relevant shape of a string guard.
func InfoString(g meta.StringGuard) GuardInfo {
	return GuardInfo{HasValidation: g.HasValidation()}
}

// InfoNumber extracts the policy-relevant shape of a numeric guard.
func InfoNumber[T primitive.Number](g meta.NumberGuard[T]) GuardInfo {
	info := GuardInfo{HasValidation: g.HasValidation()}

	for _, v := range g.Validators {
		if v.Kind == meta.ValidateFinite {
			info.HasFinite = true
		}
	}

	return info
}

// TraitSet is the approved set of traits to actually generate. Duplicate
// requests collapse; request order is irrelevant once approved.
type TraitSet map[meta.DeriveTrait]struct{}

// Has reports whether the trait was approved.
func (s TraitSet) Has(t meta.DeriveTrait) bool {
	_, ok := s[t]
	return ok
}

// Traits evaluates the family policy table against the requested traits and
// returns the approved set, or a positioned error for the first request
// that violates a rule.
func Traits(kind primitive.KindEnum, info GuardInfo, requested []meta.SpannedDeriveTrait, hasDefault bool) (TraitSet, *diagnostic.Error) {
	table := familyTable(kind)
	approved := make(TraitSet, len(requested))

	for _, req := range requested {
		categories, ok := table[req.Value]
		if !ok {
			// Fail closed: anything outside the family table is rejected.
			return nil, diagnostic.Errorf(req.Span, diagnostic.CodeTraitForbidden,
				"trait %q is not available for %s inner types", req.Value, familyName(kind))
		}

		if categories&CategoryConstructing != 0 && !hasDefault {
			return nil, diagnostic.Errorf(req.Span, diagnostic.CodeMissingDefault,
				"trait %q requires a default value, but none is declared", req.Value)
		}

		if categories&(CategoryClosure|CategoryCoercing) != 0 && info.HasValidation {
			return nil, diagnostic.Errorf(req.Span, diagnostic.CodeTraitForbidden,
				"trait %q is incompatible with validation present", req.Value)
		}

		if categories&CategoryExact != 0 && !info.HasFinite {
			return nil, diagnostic.Errorf(req.Span, diagnostic.CodeTraitForbidden,
				"trait %q on a float inner type requires the \"finite\" validator", req.Value)
		}

		approved[req.Value] = struct{}{}
	}

	return approved, nil
}

func familyTable(kind primitive.KindEnum) map[meta.DeriveTrait]CategoryEnum {
	switch {
	default:
		return stringTraits
	case kind.IsInteger():
		return integerTraits
	case kind.IsFloat():
		return floatTraits
	}
}

func familyName(kind primitive.KindEnum) string {
	switch {
	default:
		return "string"
	case kind.IsInteger():
		return "integer"
	case kind.IsFloat():
		return "float"
	}
}
