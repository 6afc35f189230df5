package gen

import (
	"strings"
	"unicode"

	"newtype-generator/internal/meta"
)

// fn applies the declared visibility to a generated function name: package
// visibility lowercases the first letter, public keeps it as built.
func fn(vis meta.Visibility, base string) string {
	if vis == meta.VisPackage {
		return lowerFirst(base)
	}

	return base
}

func newName(p Params) string       { return fn(p.Vis, "New"+p.TypeName) }
func uncheckedName(p Params) string { return fn(p.Vis, "New"+p.TypeName+"Unchecked") }
func parseName(p Params) string     { return fn(p.Vis, "Parse"+p.TypeName) }
func defaultName(p Params) string   { return fn(p.Vis, "Default"+p.TypeName) }

func fromName(p Params) string {
	return fn(p.Vis, p.TypeName+"From")
}

// errName names the sentinel error for one validator rule,
// e.g. ErrEmailNotEmpty for rule not_empty on type Email.
func errName(p Params, rule string) string {
	return fn(p.Vis, "Err"+p.TypeName+snakeToCamel(rule))
}

// patternVarName names the package-level compiled regex for a type.
func patternVarName(p Params) string {
	return lowerFirst(p.TypeName) + "Pattern"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

// snakeToCamel turns a rule spelling into an identifier part:
// not_empty -> NotEmpty.
func snakeToCamel(s string) string {
	var b strings.Builder

	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}

		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}

// camelToSnake turns a type name into its filename: APIKey -> api_key.
func camelToSnake(s string) string {
	var b strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				b.WriteRune('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
