package meta

import "newtype-generator/primitive"

// NumberSanitizerKind enumerates the numeric sanitizers.
type NumberSanitizerKind int

const (
	_ NumberSanitizerKind = iota

	SanitizeClamp      // clamp into [Min, Max]
	SanitizeNumberWith // user-supplied func(T) T

	SanitizeNumberTotal = int(iota)
)

// NumberSanitizer is one ordered numeric transformation, monomorphized over
// the concrete width so bounds are held (and were range-checked) at type T.
// Raw* keep the declared literal spellings for code emission.
type NumberSanitizer[T primitive.Number] struct {
	Kind     NumberSanitizerKind
	Min, Max T
	RawMin   string
	RawMax   string
	Func     string // only for SanitizeNumberWith
}

// NumberValidatorKind enumerates the numeric validators.
type NumberValidatorKind int

const (
	_ NumberValidatorKind = iota

	ValidateMin     // inclusive lower bound
	ValidateMax     // inclusive upper bound
	ValidateGreater // strict lower bound
	ValidateLess    // strict upper bound
	ValidateFinite  // float only: rejects NaN and infinities
	ValidateNumberWith

	ValidateNumberTotal = int(iota)
)

// NumberValidator is one possibly-rejecting numeric check.
type NumberValidator[T primitive.Number] struct {
	Kind  NumberValidatorKind
	Bound T
	Raw   string
	Func  string // only for ValidateNumberWith
}

// RuleName is the validator's spelling in declaration files; it also names
// the generated sentinel error variable.
func (v NumberValidator[T]) RuleName() string {
	switch v.Kind {
	default:
		return ""
	case ValidateMin:
		return "min"
	case ValidateMax:
		return "max"
	case ValidateGreater:
		return "greater"
	case ValidateLess:
		return "less"
	case ValidateFinite:
		return "finite"
	case ValidateNumberWith:
		return "predicate"
	}
}

// NumberGuard is the numeric families' concrete guard shape at width T.
type NumberGuard[T primitive.Number] = Guard[NumberSanitizer[T], NumberValidator[T]]
