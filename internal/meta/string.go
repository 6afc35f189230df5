package meta

// StringSanitizerKind enumerates the built-in string sanitizers plus the
// user-supplied escape hatch.
type StringSanitizerKind int

const (
	_ StringSanitizerKind = iota

	SanitizeTrim           // strings.TrimSpace
	SanitizeLowercase      // strings.ToLower
	SanitizeUppercase      // strings.ToUpper
	SanitizeCollapseSpaces // fold whitespace runs into single spaces
	SanitizeStringWith     // user-supplied func(string) string

	SanitizeStringTotal = int(iota)
)

// StringSanitizer is one ordered, always-succeeding transformation.
type StringSanitizer struct {
	Kind StringSanitizerKind
	Func string // only for SanitizeStringWith
}

// StringValidatorKind enumerates the built-in string validators plus the
// user-supplied predicate.
type StringValidatorKind int

const (
	_ StringValidatorKind = iota

	ValidateNotEmpty
	ValidateMinLen
	ValidateMaxLen
	ValidateRegex
	ValidateStringWith // user-supplied func(string) bool

	ValidateStringTotal = int(iota)
)

// StringValidator is one possibly-rejecting check. Each validator
// contributes exactly one named failure reason to the generated error set.
type StringValidator struct {
	Kind    StringValidatorKind
	Len     int    // ValidateMinLen, ValidateMaxLen
	Pattern string // ValidateRegex
	Func    string // ValidateStringWith
}

// RuleName is the validator's spelling in declaration files; it also names
// the generated sentinel error variable.
func (v StringValidator) RuleName() string {
	switch v.Kind {
	default:
		return ""
	case ValidateNotEmpty:
		return "not_empty"
	case ValidateMinLen:
		return "min_len"
	case ValidateMaxLen:
		return "max_len"
	case ValidateRegex:
		return "regex"
	case ValidateStringWith:
		return "predicate"
	}
}

// StringGuard is the string family's concrete guard shape.
type StringGuard = Guard[StringSanitizer, StringValidator]
