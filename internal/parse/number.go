package parse

import (
	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/schema"
	"newtype-generator/primitive"
	"newtype-generator/utils"
)

// Number parses the guard configuration of a numeric-family declaration,
// monomorphized over the concrete inner type T so every literal is
// interpreted at the right width.
func Number[T primitive.Number](kind primitive.KindEnum, attrs schema.Attributes) (meta.Attributes[meta.NumberGuard[T]], *diagnostic.Error) {
	var out meta.Attributes[meta.NumberGuard[T]]

	if err := checkDuplicates(attrs.Sanitize); err != nil {
		return out, err
	}

	if err := checkDuplicates(attrs.Validate); err != nil {
		return out, err
	}

	for _, rule := range attrs.Sanitize {
		s, err := numberSanitizer[T](kind, rule)
		if err != nil {
			return out, err
		}

		out.Guard.Sanitizers = append(out.Guard.Sanitizers, s)
	}

	for _, rule := range attrs.Validate {
		v, err := numberValidator[T](kind, rule)
		if err != nil {
			return out, err
		}

		out.Guard.Validators = append(out.Guard.Validators, v)
	}

	out.NewUnchecked = attrs.NewUnchecked

	if attrs.Default != nil {
		// Interpreted only to prove the literal fits T; the declared
		// spelling is what ends up in generated code.
		if _, err := numberLiteral[T](kind, attrs.Default.Value, attrs.Default.Span); err != nil {
			return out, err
		}

		out.DefaultValue = attrs.Default
	}

	return out, nil
}

func numberSanitizer[T primitive.Number](kind primitive.KindEnum, rule schema.Rule) (meta.NumberSanitizer[T], *diagnostic.Error) {
	var s meta.NumberSanitizer[T]

	switch rule.Name {
	default:
		return s, unknownRule(rule, "sanitizer", kind.GoName(), stringSanitizers)

	case "clamp":
		if err := wantArgs(rule, 2); err != nil {
			return s, err
		}

		rawLo, rawHi := utils.Unpack2(rule.Args)

		lo, err := numberLiteral[T](kind, rawLo, rule.Span)
		if err != nil {
			return s, err
		}

		hi, err := numberLiteral[T](kind, rawHi, rule.Span)
		if err != nil {
			return s, err
		}

		if lo > hi {
			return s, diagnostic.Errorf(rule.Span, diagnostic.CodeMalformedLiteral,
				"clamp lower bound %s exceeds upper bound %s", rawLo, rawHi)
		}

		s = meta.NumberSanitizer[T]{
			Kind:   meta.SanitizeClamp,
			Min:    lo,
			Max:    hi,
			RawMin: rawLo,
			RawMax: rawHi,
		}

	case "with":
		if err := wantArgs(rule, 1); err != nil {
			return s, err
		}

		s.Kind = meta.SanitizeNumberWith
		s.Func = rule.Args[0]
	}

	return s, nil
}

func numberValidator[T primitive.Number](kind primitive.KindEnum, rule schema.Rule) (meta.NumberValidator[T], *diagnostic.Error) {
	var v meta.NumberValidator[T]

	switch rule.Name {
	default:
		return v, unknownRule(rule, "validator", kind.GoName(), stringValidators)

	case "min", "max", "greater", "less":
		if err := wantArgs(rule, 1); err != nil {
			return v, err
		}

		bound, err := numberLiteral[T](kind, rule.Args[0], rule.Span)
		if err != nil {
			return v, err
		}

		v.Bound = bound
		v.Raw = rule.Args[0]

		switch rule.Name {
		case "min":
			v.Kind = meta.ValidateMin
		case "max":
			v.Kind = meta.ValidateMax
		case "greater":
			v.Kind = meta.ValidateGreater
		case "less":
			v.Kind = meta.ValidateLess
		}

	case "finite":
		if !kind.IsFloat() {
			return v, diagnostic.Errorf(rule.Span, diagnostic.CodeFamilyMismatch,
				"validator \"finite\" is not available for %s inner types", kind.GoName())
		}

		if err := wantArgs(rule, 0); err != nil {
			return v, err
		}

		v.Kind = meta.ValidateFinite

	case "with":
		if err := wantArgs(rule, 1); err != nil {
			return v, err
		}

		v.Kind = meta.ValidateNumberWith
		v.Func = rule.Args[0]
	}

	return v, nil
}
