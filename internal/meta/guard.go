package meta

// Guard is the sanitize-then-validate policy attached to a newtype. A value
// constructed through the checked path has passed every sanitizer in
// declaration order and satisfied every validator; only the unchecked
// constructor can bypass it.
type Guard[S, V any] struct {
	Sanitizers []S
	Validators []V
}

// HasValidation reports whether the guard can reject values at all.
func (g Guard[S, V]) HasValidation() bool {
	return len(g.Validators) > 0
}

// NewUnchecked records an explicit opt-in to the unchecked constructor.
type NewUnchecked struct {
	Enabled bool
	Span    Span
}

// Attributes is the attribute parser's output: the typed guard plus the two
// orchestration knobs that are independent of the guard itself.
type Attributes[G any] struct {
	Guard        G
	NewUnchecked NewUnchecked
	// DefaultValue is the declared default literal, already checked to be a
	// well-formed literal of the inner type. Nil when absent.
	DefaultValue *Spanned[string]
}

// HasDefault reports whether a default literal was declared.
func (a Attributes[G]) HasDefault() bool {
	return a.DefaultValue != nil
}
