package parse

import (
	"regexp"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/schema"
)

// String parses the guard configuration of a string-family declaration.
func String(attrs schema.Attributes) (meta.Attributes[meta.StringGuard], *diagnostic.Error) {
	var out meta.Attributes[meta.StringGuard]

	if err := checkDuplicates(attrs.Sanitize); err != nil {
		return out, err
	}

	if err := checkDuplicates(attrs.Validate); err != nil {
		return out, err
	}

	for _, rule := range attrs.Sanitize {
		s, err := stringSanitizer(rule)
		if err != nil {
			return out, err
		}

		out.Guard.Sanitizers = append(out.Guard.Sanitizers, s)
	}

	for _, rule := range attrs.Validate {
		v, err := stringValidator(rule)
		if err != nil {
			return out, err
		}

		out.Guard.Validators = append(out.Guard.Validators, v)
	}

	out.NewUnchecked = attrs.NewUnchecked
	// Any scalar is a well-formed string literal; no interpretation needed.
	out.DefaultValue = attrs.Default

	return out, nil
}

func stringSanitizer(rule schema.Rule) (meta.StringSanitizer, *diagnostic.Error) {
	var s meta.StringSanitizer

	switch rule.Name {
	default:
		return s, unknownRule(rule, "sanitizer", "string", numberSanitizers)

	case "trim":
		s.Kind = meta.SanitizeTrim
	case "lowercase":
		s.Kind = meta.SanitizeLowercase
	case "uppercase":
		s.Kind = meta.SanitizeUppercase
	case "collapse_spaces":
		s.Kind = meta.SanitizeCollapseSpaces

	case "with":
		if err := wantArgs(rule, 1); err != nil {
			return s, err
		}

		s.Kind = meta.SanitizeStringWith
		s.Func = rule.Args[0]

		return s, nil
	}

	if err := wantArgs(rule, 0); err != nil {
		return meta.StringSanitizer{}, err
	}

	return s, nil
}

func stringValidator(rule schema.Rule) (meta.StringValidator, *diagnostic.Error) {
	var v meta.StringValidator

	switch rule.Name {
	default:
		return v, unknownRule(rule, "validator", "string", numberValidators)

	case "not_empty":
		if err := wantArgs(rule, 0); err != nil {
			return v, err
		}

		v.Kind = meta.ValidateNotEmpty

	case "min_len", "max_len":
		if err := wantArgs(rule, 1); err != nil {
			return v, err
		}

		n, err := lengthLiteral(rule)
		if err != nil {
			return v, err
		}

		v.Kind = meta.ValidateMinLen
		if rule.Name == "max_len" {
			v.Kind = meta.ValidateMaxLen
		}

		v.Len = n

	case "regex":
		if err := wantArgs(rule, 1); err != nil {
			return v, err
		}

		if _, err := regexp.Compile(rule.Args[0]); err != nil {
			return v, diagnostic.Errorf(rule.Span, diagnostic.CodeMalformedLiteral,
				"invalid regex pattern: %v", err)
		}

		v.Kind = meta.ValidateRegex
		v.Pattern = rule.Args[0]

	case "with":
		if err := wantArgs(rule, 1); err != nil {
			return v, err
		}

		v.Kind = meta.ValidateStringWith
		v.Func = rule.Args[0]
	}

	return v, nil
}
