package meta

// DeriveTrait enumerates the behavioral implementations a declaration may
// request. The set is closed; anything else is rejected by the front end
// and, fail-closed, by the trait validator.
type DeriveTrait int

const (
	_ DeriveTrait = iota // skip zero value, use it as a default (invalid) value for DeriveTrait

	TraitEq       // Equal method
	TraitOrd      // Compare and Less methods
	TraitHash     // Hash method (FNV-1a over the inner representation)
	TraitStringer // String method
	TraitParse    // ParseX function routed through the checked constructor
	TraitJSON     // MarshalJSON/UnmarshalJSON, unmarshal re-runs the guard
	TraitText     // MarshalText/UnmarshalText, unmarshal re-runs the guard
	TraitFrom     // XFrom function: sanitizes, never rejects
	TraitDefault  // DefaultX function from the declared default literal
	TraitArith    // Add/Sub/Mul/Div methods

	// TraitTotal is a constant that represents the total number of traits defined
	TraitTotal = int(iota)
)

// SpannedDeriveTrait is a requested trait together with the position of the
// request, kept for diagnostics.
type SpannedDeriveTrait = Spanned[DeriveTrait]

var traitNames = map[DeriveTrait]string{
	TraitEq:       "eq",
	TraitOrd:      "ord",
	TraitHash:     "hash",
	TraitStringer: "stringer",
	TraitParse:    "parse",
	TraitJSON:     "json",
	TraitText:     "text",
	TraitFrom:     "from",
	TraitDefault:  "default",
	TraitArith:    "arith",
}

// String returns the trait's spelling in declaration files.
func (t DeriveTrait) String() string {
	if name, ok := traitNames[t]; ok {
		return name
	}

	return "DeriveTrait(invalid)"
}

// ParseDeriveTrait maps a declared trait spelling to its variant.
// The second result is false for anything outside the closed set.
func ParseDeriveTrait(name string) (DeriveTrait, bool) {
	for t, n := range traitNames {
		if n == name {
			return t, true
		}
	}

	return 0, false
}
