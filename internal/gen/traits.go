package gen

import (
	"fmt"
	"strconv"

	"newtype-generator/internal/meta"
	"newtype-generator/primitive"
)

// traitOrder fixes the emission order of approved trait implementations so
// output stays deterministic regardless of request order.
var traitOrder = []meta.DeriveTrait{
	meta.TraitEq,
	meta.TraitOrd,
	meta.TraitHash,
	meta.TraitStringer,
	meta.TraitParse,
	meta.TraitJSON,
	meta.TraitText,
	meta.TraitFrom,
	meta.TraitDefault,
	meta.TraitArith,
}

func (g *Generator) traitSections(ctx *renderCtx) [][]string {
	var sections [][]string

	for _, trait := range traitOrder {
		if !ctx.p.Traits.Has(trait) {
			continue
		}

		switch trait {
		case meta.TraitEq:
			sections = append(sections, g.eqSection(ctx))
		case meta.TraitOrd:
			sections = append(sections, g.ordSections(ctx)...)
		case meta.TraitHash:
			sections = append(sections, g.hashSection(ctx))
		case meta.TraitStringer:
			sections = append(sections, g.stringerSection(ctx))
		case meta.TraitParse:
			sections = append(sections, g.parseSection(ctx))
		case meta.TraitJSON:
			sections = append(sections, g.jsonSections(ctx)...)
		case meta.TraitText:
			sections = append(sections, g.textSections(ctx)...)
		case meta.TraitFrom:
			sections = append(sections, g.fromSection(ctx))
		case meta.TraitDefault:
			sections = append(sections, g.defaultSection(ctx))
		case meta.TraitArith:
			sections = append(sections, g.arithSections(ctx)...)
		}
	}

	return sections
}

func (g *Generator) eqSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// Equal reports whether two %s values wrap the same inner value.", t))

	return append(lines,
		fmt.Sprintf("func (v %s) Equal(other %s) bool {", t, t),
		"\treturn v.inner == other.inner",
		"}",
	)
}

func (g *Generator) ordSections(ctx *renderCtx) [][]string {
	t := ctx.p.TypeName

	compare := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// Compare orders two %s values by their inner values, returning -1, 0, or 1.", t))

	if ctx.p.Kind == primitive.KindString {
		ctx.addImport("strings")
		compare = append(compare,
			fmt.Sprintf("func (v %s) Compare(other %s) int {", t, t),
			"\treturn strings.Compare(v.inner, other.inner)",
			"}",
		)
	} else {
		compare = append(compare,
			fmt.Sprintf("func (v %s) Compare(other %s) int {", t, t),
			"\tswitch {",
			"\tcase v.inner < other.inner:",
			"\t\treturn -1",
			"\tcase v.inner > other.inner:",
			"\t\treturn 1",
			"\tdefault:",
			"\t\treturn 0",
			"\t}",
			"}",
		)
	}

	less := ctx.doc(g.config.GenerateComments,
		"// Less reports whether v orders before other.")
	less = append(less,
		fmt.Sprintf("func (v %s) Less(other %s) bool {", t, t),
		"\treturn v.inner < other.inner",
		"}",
	)

	return [][]string{compare, less}
}

func (g *Generator) hashSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName
	ctx.addImport("hash/fnv")

	lines := ctx.doc(g.config.GenerateComments,
		"// Hash returns a 64-bit FNV-1a hash of the inner value.")

	if ctx.p.Kind == primitive.KindString {
		return append(lines,
			fmt.Sprintf("func (v %s) Hash() uint64 {", t),
			"\th := fnv.New64a()",
			"\t_, _ = h.Write([]byte(v.inner))",
			"",
			"\treturn h.Sum64()",
			"}",
		)
	}

	ctx.addImport("encoding/binary")

	return append(lines,
		fmt.Sprintf("func (v %s) Hash() uint64 {", t),
		"\tvar buf [8]byte",
		"\tbinary.BigEndian.PutUint64(buf[:], uint64(v.inner))",
		"",
		"\th := fnv.New64a()",
		"\t_, _ = h.Write(buf[:])",
		"",
		"\treturn h.Sum64()",
		"}",
	)
}

func (g *Generator) stringerSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName

	lines := ctx.doc(g.config.GenerateComments,
		"// String implements fmt.Stringer.")

	return append(lines,
		fmt.Sprintf("func (v %s) String() string {", t),
		fmt.Sprintf("\treturn %s", ctx.formatInnerExpr("v.inner")),
		"}",
	)
}

func (g *Generator) parseSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName
	name := parseName(ctx.p)

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// %s constructs %s from its textual form through the checked constructor.", name, t))

	if ctx.p.Kind == primitive.KindString {
		return append(lines,
			fmt.Sprintf("func %s(raw string) (%s, error) {", name, t),
			fmt.Sprintf("\treturn %s(raw)", newName(ctx.p)),
			"}",
		)
	}

	ctx.addImport("fmt")

	lines = append(lines, fmt.Sprintf("func %s(raw string) (%s, error) {", name, t))
	lines = append(lines, ctx.parseInnerLines("raw")...)
	lines = append(lines,
		"\tif err != nil {",
		fmt.Sprintf("\t\treturn %s{}, fmt.Errorf(\"%s: %%w\", err)", t, name),
		"\t}",
		"",
		fmt.Sprintf("\treturn %s(%s)", newName(ctx.p), ctx.parsedInnerExpr()),
		"}",
	)

	return lines
}

func (g *Generator) jsonSections(ctx *renderCtx) [][]string {
	t := ctx.p.TypeName
	ctx.addImport("encoding/json")

	marshal := ctx.doc(g.config.GenerateComments,
		"// MarshalJSON encodes the inner value.")
	marshal = append(marshal,
		fmt.Sprintf("func (v %s) MarshalJSON() ([]byte, error) {", t),
		"\treturn json.Marshal(v.inner)",
		"}",
	)

	unmarshal := ctx.doc(g.config.GenerateComments,
		"// UnmarshalJSON decodes the inner value and re-runs the guard.")
	unmarshal = append(unmarshal,
		fmt.Sprintf("func (v *%s) UnmarshalJSON(data []byte) error {", t),
		fmt.Sprintf("\tvar inner %s", ctx.goType),
		"\tif err := json.Unmarshal(data, &inner); err != nil {",
		"\t\treturn err",
		"\t}",
		"",
		fmt.Sprintf("\tparsed, err := %s(inner)", newName(ctx.p)),
		"\tif err != nil {",
		"\t\treturn err",
		"\t}",
		"",
		"\t*v = parsed",
		"",
		"\treturn nil",
		"}",
	)

	return [][]string{marshal, unmarshal}
}

func (g *Generator) textSections(ctx *renderCtx) [][]string {
	t := ctx.p.TypeName

	marshal := ctx.doc(g.config.GenerateComments,
		"// MarshalText encodes the inner value as text.")
	marshal = append(marshal,
		fmt.Sprintf("func (v %s) MarshalText() ([]byte, error) {", t),
		fmt.Sprintf("\treturn []byte(%s), nil", ctx.formatInnerExpr("v.inner")),
		"}",
	)

	unmarshal := ctx.doc(g.config.GenerateComments,
		"// UnmarshalText decodes text and re-runs the guard.")
	unmarshal = append(unmarshal, fmt.Sprintf("func (v *%s) UnmarshalText(data []byte) error {", t))

	if ctx.p.Kind == primitive.KindString {
		unmarshal = append(unmarshal,
			fmt.Sprintf("\tparsed, err := %s(string(data))", newName(ctx.p)),
			"\tif err != nil {",
			"\t\treturn err",
			"\t}",
		)
	} else {
		unmarshal = append(unmarshal, ctx.parseInnerLines("string(data)")...)
		unmarshal = append(unmarshal,
			"\tif err != nil {",
			"\t\treturn err",
			"\t}",
			"",
			fmt.Sprintf("\tparsed, err := %s(%s)", newName(ctx.p), ctx.parsedInnerExpr()),
			"\tif err != nil {",
			"\t\treturn err",
			"\t}",
		)
	}

	unmarshal = append(unmarshal,
		"",
		"\t*v = parsed",
		"",
		"\treturn nil",
		"}",
	)

	return [][]string{marshal, unmarshal}
}

func (g *Generator) fromSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName
	name := fromName(ctx.p)

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// %s wraps raw after sanitization. It never rejects; the trait is", name),
		"// only emitted while the guard has no validators.")

	lines = append(lines, fmt.Sprintf("func %s(raw %s) %s {", name, ctx.goType, t))
	lines = append(lines, ctx.sanitize...)
	lines = append(lines,
		fmt.Sprintf("\treturn %s{inner: raw}", t),
		"}",
	)

	return lines
}

func (g *Generator) defaultSection(ctx *renderCtx) []string {
	t := ctx.p.TypeName
	name := defaultName(ctx.p)

	literal := ctx.p.DefaultValue
	if ctx.p.Kind == primitive.KindString {
		literal = strconv.Quote(literal)
	}

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// %s returns the declared default value.", name),
		"// The literal is trusted as declared and is not passed through the guard.")

	return append(lines,
		fmt.Sprintf("func %s() %s {", name, t),
		fmt.Sprintf("\treturn %s{inner: %s}", t, literal),
		"}",
	)
}

func (g *Generator) arithSections(ctx *renderCtx) [][]string {
	t := ctx.p.TypeName

	ops := []struct {
		name string
		verb string
		op   string
	}{
		{"Add", "sum", "+"},
		{"Sub", "difference", "-"},
		{"Mul", "product", "*"},
		{"Div", "quotient", "/"},
	}

	sections := make([][]string, 0, len(ops))

	for _, op := range ops {
		lines := ctx.doc(g.config.GenerateComments,
			fmt.Sprintf("// %s returns a %s wrapping the %s of both inner values.", op.name, t, op.verb),
			"// The result is not re-sanitized.")

		lines = append(lines,
			fmt.Sprintf("func (v %s) %s(other %s) %s {", t, op.name, t, t),
			fmt.Sprintf("\treturn %s{inner: v.inner %s other.inner}", t, op.op),
			"}",
		)

		sections = append(sections, lines)
	}

	return sections
}

// formatInnerExpr renders the expression that turns expr (of the inner
// type) into a string.
func (ctx *renderCtx) formatInnerExpr(expr string) string {
	kind := ctx.p.Kind

	switch {
	default:
		return expr
	case kind.IsSigned():
		ctx.addImport("strconv")
		return fmt.Sprintf("strconv.FormatInt(int64(%s), 10)", expr)
	case kind.IsUnsigned():
		ctx.addImport("strconv")
		return fmt.Sprintf("strconv.FormatUint(uint64(%s), 10)", expr)
	case kind.IsFloat():
		ctx.addImport("strconv")
		return fmt.Sprintf("strconv.FormatFloat(float64(%s), 'g', -1, %d)", expr, kind.Bits())
	}
}

// parseInnerLines renders the statements parsing src (a string expression)
// into a variable named inner at the widest width of the family.
func (ctx *renderCtx) parseInnerLines(src string) []string {
	kind := ctx.p.Kind
	ctx.addImport("strconv")

	switch {
	default:
		return []string{fmt.Sprintf("\tinner, err := strconv.ParseInt(%s, 10, %s)", src, ctx.bitSizeExpr())}
	case kind.IsUnsigned():
		return []string{fmt.Sprintf("\tinner, err := strconv.ParseUint(%s, 10, %s)", src, ctx.bitSizeExpr())}
	case kind.IsFloat():
		return []string{fmt.Sprintf("\tinner, err := strconv.ParseFloat(%s, %d)", src, kind.Bits())}
	}
}

// parsedInnerExpr narrows the widest-width parse result back to the inner
// type, skipping the no-op conversion at the widest width itself.
func (ctx *renderCtx) parsedInnerExpr() string {
	kind := ctx.p.Kind

	wide := "int64"
	if kind.IsUnsigned() {
		wide = "uint64"
	} else if kind.IsFloat() {
		wide = "float64"
	}

	if ctx.goType == wide {
		return "inner"
	}

	return fmt.Sprintf("%s(inner)", ctx.goType)
}

// bitSizeExpr renders the strconv bitSize argument; pointer-sized kinds use
// strconv.IntSize so generated code matches the target platform.
func (ctx *renderCtx) bitSizeExpr() string {
	switch ctx.p.Kind {
	default:
		return strconv.Itoa(ctx.p.Kind.Bits())
	case primitive.KindInt, primitive.KindUint:
		return "strconv.IntSize"
	}
}
