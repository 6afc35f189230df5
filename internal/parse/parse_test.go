package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/schema"
	"newtype-generator/primitive"
)

func rule(name string, args ...string) schema.Rule {
	return schema.Rule{
		Name: name,
		Args: args,
		Span: meta.Span{File: "decl.yaml", Line: 42, Column: 7},
	}
}

func TestString_GuardOrder(t *testing.T) {
	t.Parallel()

	attrs, derr := String(schema.Attributes{
		Sanitize: []schema.Rule{rule("trim"), rule("lowercase"), rule("with", "normalizeHost")},
		Validate: []schema.Rule{rule("not_empty"), rule("min_len", "3"), rule("regex", `^[a-z]+$`)},
	})
	require.Nil(t, derr)

	require.Len(t, attrs.Guard.Sanitizers, 3)
	assert.Equal(t, meta.SanitizeTrim, attrs.Guard.Sanitizers[0].Kind)
	assert.Equal(t, meta.SanitizeLowercase, attrs.Guard.Sanitizers[1].Kind)
	assert.Equal(t, meta.SanitizeStringWith, attrs.Guard.Sanitizers[2].Kind)
	assert.Equal(t, "normalizeHost", attrs.Guard.Sanitizers[2].Func)

	require.Len(t, attrs.Guard.Validators, 3)
	assert.Equal(t, meta.ValidateNotEmpty, attrs.Guard.Validators[0].Kind)
	assert.Equal(t, meta.ValidateMinLen, attrs.Guard.Validators[1].Kind)
	assert.Equal(t, 3, attrs.Guard.Validators[1].Len)
	assert.Equal(t, meta.ValidateRegex, attrs.Guard.Validators[2].Kind)
	assert.Equal(t, `^[a-z]+$`, attrs.Guard.Validators[2].Pattern)

	assert.True(t, attrs.Guard.HasValidation())
}

func TestString_DuplicateRule(t *testing.T) {
	t.Parallel()

	_, derr := String(schema.Attributes{
		Validate: []schema.Rule{rule("not_empty"), rule("not_empty")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeDuplicateOption, derr.Code)
	assert.Equal(t, 42, derr.Span.Line)
}

func TestString_NumberRuleMismatch(t *testing.T) {
	t.Parallel()

	_, derr := String(schema.Attributes{
		Sanitize: []schema.Rule{rule("clamp", "0", "100")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeFamilyMismatch, derr.Code)
	assert.Contains(t, derr.Message, "clamp")
}

func TestString_UnknownRule(t *testing.T) {
	t.Parallel()

	_, derr := String(schema.Attributes{
		Validate: []schema.Rule{rule("checksum")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeUnknownOption, derr.Code)
}

func TestString_BadRegex(t *testing.T) {
	t.Parallel()

	_, derr := String(schema.Attributes{
		Validate: []schema.Rule{rule("regex", "([")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)
}

func TestString_ExtraArgs(t *testing.T) {
	t.Parallel()

	_, derr := String(schema.Attributes{
		Sanitize: []schema.Rule{rule("trim", "surprise")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)
}

func TestNumber_Clamp(t *testing.T) {
	t.Parallel()

	attrs, derr := Number[uint8](primitive.KindUint8, schema.Attributes{
		Sanitize: []schema.Rule{rule("clamp", "0", "100")},
		Validate: []schema.Rule{rule("min", "10")},
	})
	require.Nil(t, derr)

	require.Len(t, attrs.Guard.Sanitizers, 1)
	s := attrs.Guard.Sanitizers[0]
	assert.Equal(t, meta.SanitizeClamp, s.Kind)
	assert.Equal(t, uint8(0), s.Min)
	assert.Equal(t, uint8(100), s.Max)
	assert.Equal(t, "0", s.RawMin)
	assert.Equal(t, "100", s.RawMax)

	require.Len(t, attrs.Guard.Validators, 1)
	assert.Equal(t, meta.ValidateMin, attrs.Guard.Validators[0].Kind)
	assert.Equal(t, uint8(10), attrs.Guard.Validators[0].Bound)
	assert.Equal(t, "10", attrs.Guard.Validators[0].Raw)
}

func TestNumber_ClampInvertedBounds(t *testing.T) {
	t.Parallel()

	_, derr := Number[int](primitive.KindInt, schema.Attributes{
		Sanitize: []schema.Rule{rule("clamp", "10", "0")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)
	assert.Contains(t, derr.Message, "exceeds")
}

func TestNumber_LiteralWidth(t *testing.T) {
	t.Parallel()

	// 300 does not fit uint8.
	_, derr := Number[uint8](primitive.KindUint8, schema.Attributes{
		Validate: []schema.Rule{rule("max", "300")},
	})
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)

	// Negative literals never fit unsigned kinds.
	_, derr = Number[uint16](primitive.KindUint16, schema.Attributes{
		Validate: []schema.Rule{rule("min", "-1")},
	})
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)

	// The same literal is fine at a wider signed kind.
	attrs, derr := Number[int16](primitive.KindInt16, schema.Attributes{
		Validate: []schema.Rule{rule("min", "-1")},
	})
	require.Nil(t, derr)
	assert.Equal(t, int16(-1), attrs.Guard.Validators[0].Bound)
}

func TestNumber_FiniteOnlyForFloats(t *testing.T) {
	t.Parallel()

	_, derr := Number[int64](primitive.KindInt64, schema.Attributes{
		Validate: []schema.Rule{rule("finite")},
	})
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeFamilyMismatch, derr.Code)

	attrs, derr := Number[float32](primitive.KindFloat32, schema.Attributes{
		Validate: []schema.Rule{rule("finite")},
	})
	require.Nil(t, derr)
	assert.Equal(t, meta.ValidateFinite, attrs.Guard.Validators[0].Kind)
}

func TestNumber_StringRuleMismatch(t *testing.T) {
	t.Parallel()

	_, derr := Number[int](primitive.KindInt, schema.Attributes{
		Validate: []schema.Rule{rule("min_len", "3")},
	})

	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeFamilyMismatch, derr.Code)
}

func TestNumber_DefaultLiteralChecked(t *testing.T) {
	t.Parallel()

	def := meta.At("300", meta.Span{File: "decl.yaml", Line: 9, Column: 14})

	_, derr := Number[uint8](primitive.KindUint8, schema.Attributes{Default: &def})
	require.NotNil(t, derr)
	assert.Equal(t, diagnostic.CodeMalformedLiteral, derr.Code)
	assert.Equal(t, 9, derr.Span.Line)

	ok := meta.At("42", meta.Span{})

	attrs, derr := Number[uint8](primitive.KindUint8, schema.Attributes{Default: &ok})
	require.Nil(t, derr)
	require.NotNil(t, attrs.DefaultValue)
	// The declared spelling survives; only its fit was checked.
	assert.Equal(t, "42", attrs.DefaultValue.Value)
	assert.True(t, attrs.HasDefault())
}

func TestNumber_FloatLiteralPrecision(t *testing.T) {
	t.Parallel()

	attrs, derr := Number[float32](primitive.KindFloat32, schema.Attributes{
		Validate: []schema.Rule{rule("greater", "0.1")},
	})
	require.Nil(t, derr)
	assert.Equal(t, float32(0.1), attrs.Guard.Validators[0].Bound)
}
