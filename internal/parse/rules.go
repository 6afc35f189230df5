package parse

import (
	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/schema"
)

// Rule catalogs per family, used to tell "unknown rule" apart from "rule of
// the other family" in diagnostics.
var (
	stringSanitizers = map[string]struct{}{
		"trim": {}, "lowercase": {}, "uppercase": {}, "collapse_spaces": {},
	}
	stringValidators = map[string]struct{}{
		"not_empty": {}, "min_len": {}, "max_len": {}, "regex": {},
	}
	numberSanitizers = map[string]struct{}{
		"clamp": {},
	}
	numberValidators = map[string]struct{}{
		"min": {}, "max": {}, "greater": {}, "less": {}, "finite": {},
	}
)

// checkDuplicates rejects a rule list that names the same rule twice.
// Every validator contributes one error variant, so duplicates would be
// conflicting declarations rather than refinements.
func checkDuplicates(rules []schema.Rule) *diagnostic.Error {
	seen := map[string]struct{}{}

	for _, rule := range rules {
		if _, ok := seen[rule.Name]; ok {
			return diagnostic.Errorf(rule.Span, diagnostic.CodeDuplicateOption,
				"rule %q is declared twice", rule.Name)
		}

		seen[rule.Name] = struct{}{}
	}

	return nil
}

func unknownRule(rule schema.Rule, what, family string, otherFamily map[string]struct{}) *diagnostic.Error {
	if _, ok := otherFamily[rule.Name]; ok {
		return diagnostic.Errorf(rule.Span, diagnostic.CodeFamilyMismatch,
			"%s %q is not available for %s inner types", what, rule.Name, family)
	}

	return diagnostic.Errorf(rule.Span, diagnostic.CodeUnknownOption,
		"unknown %s %q", what, rule.Name)
}

func wantArgs(rule schema.Rule, n int) *diagnostic.Error {
	if len(rule.Args) != n {
		return diagnostic.Errorf(rule.Span, diagnostic.CodeMalformedLiteral,
			"rule %q takes %d argument(s), got %d", rule.Name, n, len(rule.Args))
	}

	return nil
}
