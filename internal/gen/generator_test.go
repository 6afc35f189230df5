package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtype-generator/internal/meta"
	"newtype-generator/internal/validate"
	"newtype-generator/primitive"
)

func traitSet(traits ...meta.DeriveTrait) validate.TraitSet {
	set := make(validate.TraitSet, len(traits))

	for _, trait := range traits {
		set[trait] = struct{}{}
	}

	return set
}

func TestGenerator_StringNewtype(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{PackageName: "types", GenerateComments: true})

	p := Params{
		TypeName: "Email",
		Kind:     primitive.KindString,
		Traits:   traitSet(meta.TraitEq, meta.TraitStringer, meta.TraitJSON),
	}
	guard := meta.StringGuard{
		Sanitizers: []meta.StringSanitizer{
			{Kind: meta.SanitizeTrim},
			{Kind: meta.SanitizeLowercase},
		},
		Validators: []meta.StringValidator{
			{Kind: meta.ValidateNotEmpty},
			{Kind: meta.ValidateMaxLen, Len: 254},
		},
	}

	file, err := g.String(p, guard)
	require.NoError(t, err)

	assert.Equal(t, "email.go", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "// Code generated by newtype-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package types")
	assert.Contains(t, content, "type Email struct {")
	assert.Contains(t, content, "inner string")
	assert.Contains(t, content, "func NewEmail(raw string) (Email, error)")
	assert.Contains(t, content, "raw = strings.TrimSpace(raw)")
	assert.Contains(t, content, "raw = strings.ToLower(raw)")
	assert.Contains(t, content, `raw == ""`)
	assert.Contains(t, content, "ErrEmailNotEmpty")
	assert.Contains(t, content, "ErrEmailMaxLen")
	assert.Contains(t, content, "len(raw) > 254")
	assert.Contains(t, content, "func (v Email) Equal(other Email) bool")
	assert.Contains(t, content, "func (v Email) String() string")
	assert.Contains(t, content, "func (v Email) MarshalJSON() ([]byte, error)")
	assert.Contains(t, content, "func (v *Email) UnmarshalJSON(data []byte) error")
	assert.Contains(t, content, "func (v Email) Value() string")

	// Sanitizers run before the first validator check.
	assert.Less(t,
		strings.Index(content, "strings.TrimSpace"),
		strings.Index(content, `raw == ""`))

	// Not requested, not emitted.
	assert.NotContains(t, content, "NewEmailUnchecked")
	assert.NotContains(t, content, "func ParseEmail")
	assert.NotContains(t, content, "Hash()")
}

func TestGenerator_NumberNewtype(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{PackageName: "types", GenerateComments: true})

	p := Params{
		TypeName:     "Port",
		Kind:         primitive.KindUint16,
		Traits:       traitSet(meta.TraitOrd, meta.TraitParse, meta.TraitDefault),
		DefaultValue: "8080",
		HasDefault:   true,
	}
	guard := meta.NumberGuard[uint16]{
		Sanitizers: []meta.NumberSanitizer[uint16]{
			{Kind: meta.SanitizeClamp, Min: 1, Max: 9000, RawMin: "1", RawMax: "9000"},
		},
		Validators: []meta.NumberValidator[uint16]{
			{Kind: meta.ValidateMin, Bound: 1, Raw: "1"},
		},
	}

	file, err := Number(g, p, guard)
	require.NoError(t, err)

	assert.Equal(t, "port.go", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "func NewPort(raw uint16) (Port, error)")
	assert.Contains(t, content, "if raw < 1 {")
	assert.Contains(t, content, "if raw > 9000 {")
	assert.Contains(t, content, "ErrPortMin")
	assert.Contains(t, content, "func (v Port) Compare(other Port) int")
	assert.Contains(t, content, "func (v Port) Less(other Port) bool")
	assert.Contains(t, content, "func ParsePort(raw string) (Port, error)")
	assert.Contains(t, content, "strconv.ParseUint(raw, 10, 16)")
	assert.Contains(t, content, "uint16(inner)")
	assert.Contains(t, content, "func DefaultPort() Port")
	assert.Contains(t, content, "inner: 8080")
}

func TestGenerator_FloatFinite(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName: "Ratio",
		Kind:     primitive.KindFloat64,
		Traits:   traitSet(meta.TraitEq, meta.TraitStringer),
	}
	guard := meta.NumberGuard[float64]{
		Validators: []meta.NumberValidator[float64]{
			{Kind: meta.ValidateFinite},
		},
	}

	file, err := Number(g, p, guard)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "math.IsNaN(float64(raw)) || math.IsInf(float64(raw), 0)")
	assert.Contains(t, content, "ErrRatioFinite")
	assert.Contains(t, content, "strconv.FormatFloat(float64(v.inner), 'g', -1, 64)")
}

func TestGenerator_CoercionsAndUnchecked(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName:     "Username",
		Kind:         primitive.KindString,
		Traits:       traitSet(meta.TraitHash, meta.TraitFrom),
		NewUnchecked: true,
	}
	guard := meta.StringGuard{
		Sanitizers: []meta.StringSanitizer{{Kind: meta.SanitizeCollapseSpaces}},
	}

	file, err := g.String(p, guard)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func NewUsernameUnchecked(raw string) Username")
	assert.Contains(t, content, "func UsernameFrom(raw string) Username")
	assert.Contains(t, content, `strings.Join(strings.Fields(raw), " ")`)
	assert.Contains(t, content, "func (v Username) Hash() uint64")
	assert.Contains(t, content, "fnv.New64a()")

	// No validators, no error block.
	assert.NotContains(t, content, "errors.New")
}

func TestGenerator_Arith(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName: "Offset",
		Kind:     primitive.KindInt64,
		Traits:   traitSet(meta.TraitArith),
	}

	file, err := Number(g, p, meta.NumberGuard[int64]{})
	require.NoError(t, err)

	content := string(file.Content)
	for _, op := range []string{"Add", "Sub", "Mul", "Div"} {
		assert.Contains(t, content, "func (v Offset) "+op+"(other Offset) Offset")
	}
	assert.Contains(t, content, "v.inner + other.inner")
	assert.Contains(t, content, "v.inner / other.inner")
}

func TestGenerator_PackageVisibility(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName: "Token",
		Kind:     primitive.KindString,
		Vis:      meta.VisPackage,
		Traits:   traitSet(meta.TraitParse),
	}
	guard := meta.StringGuard{
		Validators: []meta.StringValidator{{Kind: meta.ValidateNotEmpty}},
	}

	file, err := g.String(p, guard)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func newToken(raw string) (Token, error)")
	assert.Contains(t, content, "func parseToken(raw string) (Token, error)")
	assert.Contains(t, content, "errTokenNotEmpty")
	assert.NotContains(t, content, "func NewToken")
}

func TestGenerator_RegexPattern(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName: "Slug",
		Kind:     primitive.KindString,
		Traits:   traitSet(),
	}
	guard := meta.StringGuard{
		Validators: []meta.StringValidator{
			{Kind: meta.ValidateRegex, Pattern: `^[a-z0-9-]+$`},
		},
	}

	file, err := g.String(p, guard)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "var slugPattern = regexp.MustCompile(\"^[a-z0-9-]+$\")")
	assert.Contains(t, content, "!slugPattern.MatchString(raw)")
}

func TestGenerator_CommentsToggle(t *testing.T) {
	t.Parallel()

	p := Params{
		TypeName: "Email",
		Kind:     primitive.KindString,
		Traits:   traitSet(meta.TraitEq),
	}

	quiet := NewGenerator(GeneratorConfig{PackageName: "types", GenerateComments: false})
	file, err := quiet.String(p, meta.StringGuard{})
	require.NoError(t, err)
	assert.NotContains(t, string(file.Content), "// NewEmail")
	assert.NotContains(t, string(file.Content), "// Equal reports")

	// The generated-code marker is not an explanatory comment.
	assert.Contains(t, string(file.Content), "// Code generated by newtype-generator. DO NOT EDIT.")
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	p := Params{
		TypeName:     "Port",
		Kind:         primitive.KindUint16,
		Traits:       traitSet(meta.TraitEq, meta.TraitOrd, meta.TraitStringer, meta.TraitParse, meta.TraitJSON, meta.TraitText, meta.TraitDefault),
		DefaultValue: "8080",
		HasDefault:   true,
	}
	guard := meta.NumberGuard[uint16]{
		Validators: []meta.NumberValidator[uint16]{
			{Kind: meta.ValidateMin, Bound: 1, Raw: "1"},
		},
	}

	first, err := Number(g, p, guard)
	require.NoError(t, err)

	second, err := Number(g, p, guard)
	require.NoError(t, err)

	assert.Equal(t, first.Filename, second.Filename)
	assert.Equal(t, string(first.Content), string(second.Content))
}

func TestCamelToSnake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email", camelToSnake("Email"))
	assert.Equal(t, "api_key", camelToSnake("APIKey"))
	assert.Equal(t, "user_id", camelToSnake("UserID"))
	assert.Equal(t, "http_status_code", camelToSnake("HTTPStatusCode"))
}
