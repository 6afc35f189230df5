package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/primitive"
)

func request(traits ...meta.DeriveTrait) []meta.SpannedDeriveTrait {
	out := make([]meta.SpannedDeriveTrait, 0, len(traits))

	for i, trait := range traits {
		out = append(out, meta.At(trait, meta.Span{File: "decl.yaml", Line: i + 1, Column: 3}))
	}

	return out
}

func TestTraits_ApprovesStructural(t *testing.T) {
	t.Parallel()

	approved, derr := Traits(primitive.KindInt64, GuardInfo{HasValidation: true},
		request(meta.TraitEq, meta.TraitOrd, meta.TraitHash, meta.TraitStringer, meta.TraitParse, meta.TraitJSON),
		false)
	require.Nil(t, derr)

	assert.Len(t, approved, 6)
	assert.True(t, approved.Has(meta.TraitEq))
	assert.True(t, approved.Has(meta.TraitParse))
	assert.False(t, approved.Has(meta.TraitArith))
}

func TestTraits_DuplicateRequestsCollapse(t *testing.T) {
	t.Parallel()

	approved, derr := Traits(primitive.KindString, GuardInfo{},
		request(meta.TraitEq, meta.TraitEq), false)
	require.Nil(t, derr)

	assert.Len(t, approved, 1)
}

func TestTraits_RejectsOutsideFamilyTable(t *testing.T) {
	t.Parallel()

	// arith has no string semantics.
	_, derr := Traits(primitive.KindString, GuardInfo{}, request(meta.TraitArith), false)
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeTraitForbidden, derr.Code)
	assert.Contains(t, derr.Message, "string")

	// hash breaks the Equal/Hash contract on floats.
	_, derr = Traits(primitive.KindFloat64, GuardInfo{HasFinite: true}, request(meta.TraitHash), false)
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeTraitForbidden, derr.Code)

	// The zero trait is not in any table; unknown requests fail closed.
	_, derr = Traits(primitive.KindInt, GuardInfo{}, request(meta.DeriveTrait(0)), false)
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeTraitForbidden, derr.Code)
}

func TestTraits_DefaultNeedsLiteral(t *testing.T) {
	t.Parallel()

	_, derr := Traits(primitive.KindInt, GuardInfo{}, request(meta.TraitDefault), false)
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMissingDefault, derr.Code)

	approved, derr := Traits(primitive.KindInt, GuardInfo{}, request(meta.TraitDefault), true)
	require.Nil(t, derr)
	assert.True(t, approved.Has(meta.TraitDefault))
}

func TestTraits_CoercionForbiddenWithValidation(t *testing.T) {
	t.Parallel()

	// from bypasses validators, arith composes without re-running them.
	for _, trait := range []meta.DeriveTrait{meta.TraitFrom, meta.TraitArith} {
		_, derr := Traits(primitive.KindInt, GuardInfo{HasValidation: true}, request(trait), false)
		require.NotNil(t, derr)
		assert.Equal(t, diagnostic.CodeTraitForbidden, derr.Code)
		assert.Contains(t, derr.Message, "validation")
	}

	// Both are fine on a sanitize-only guard.
	approved, derr := Traits(primitive.KindInt, GuardInfo{}, request(meta.TraitFrom, meta.TraitArith), false)
	require.Nil(t, derr)
	assert.Len(t, approved, 2)
}

func TestTraits_FloatEqualityNeedsFinite(t *testing.T) {
	t.Parallel()

	_, derr := Traits(primitive.KindFloat64, GuardInfo{HasValidation: true},
		request(meta.TraitEq), false)
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeTraitForbidden, derr.Code)
	assert.Contains(t, derr.Message, "finite")

	approved, derr := Traits(primitive.KindFloat64, GuardInfo{HasValidation: true, HasFinite: true},
		request(meta.TraitEq, meta.TraitOrd), false)
	require.Nil(t, derr)
	assert.Len(t, approved, 2)

	// Integer equality never needs the finite guarantee.
	approved, derr = Traits(primitive.KindInt32, GuardInfo{}, request(meta.TraitEq), false)
	require.Nil(t, derr)
	assert.True(t, approved.Has(meta.TraitEq))
}

func TestTraits_ReportsFirstViolation(t *testing.T) {
	t.Parallel()

	_, derr := Traits(primitive.KindString, GuardInfo{HasValidation: true},
		request(meta.TraitEq, meta.TraitFrom, meta.TraitArith), false)
	require.NotNil(t, derr)

	// from is requested before arith; its span wins.
	assert.Equal(t, 2, derr.Span.Line)
	assert.Contains(t, derr.Message, "from")
}

func TestInfoNumber_FindsFinite(t *testing.T) {
	t.Parallel()

	guard := meta.NumberGuard[float64]{
		Validators: []meta.NumberValidator[float64]{
			{Kind: meta.ValidateMin, Bound: 0},
			{Kind: meta.ValidateFinite},
		},
	}

	info := InfoNumber(guard)
	assert.True(t, info.HasValidation)
	assert.True(t, info.HasFinite)

	info = InfoNumber(meta.NumberGuard[float64]{})
	assert.False(t, info.HasValidation)
	assert.False(t, info.HasFinite)
}
