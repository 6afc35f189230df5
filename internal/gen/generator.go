package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"slices"
	"strings"

	"newtype-generator/internal/common"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/validate"
	"newtype-generator/primitive"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory doc comments.
	GenerateComments bool
	// DebugUnformatted writes an .unformatted.go sidecar when formatting
	// fails, to aid debugging the generator itself.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "types",
		OutputDir:        "./generated",
		GenerateComments: true,
		DebugUnformatted: true,
	}
}

// Generator generates Go code from validated newtype parameters.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// WithPackage returns a Generator emitting into the given package name,
// or the receiver itself when name is empty.
func (g *Generator) WithPackage(name string) *Generator {
	if name == "" {
		return g
	}

	cfg := g.config
	cfg.PackageName = name

	return &Generator{config: cfg}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "email.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Params is the fully-validated bundle a family generator consumes. By the
// time it is built, every trait in Traits has been approved and every
// literal has been checked against the concrete inner type.
type Params struct {
	Doc          []string
	Vis          meta.Visibility
	TypeName     string
	Kind         primitive.KindEnum
	Traits       validate.TraitSet
	NewUnchecked bool
	// DefaultValue is the declared default literal spelling; meaningful
	// only when HasDefault is true.
	DefaultValue string
	HasDefault   bool
}

// guardCheck is one rendered validator: a rejection condition plus the
// sentinel error it raises.
type guardCheck struct {
	cond   string
	errVar string
	rule   string
}

// renderCtx accumulates everything a single newtype file needs before
// assembly: constructor statements, validator checks, package-level vars,
// and the import set.
type renderCtx struct {
	p      Params
	goType string

	vars     []string
	sanitize []string
	checks   []guardCheck

	imports map[string]struct{}
}

func newRenderCtx(p Params) *renderCtx {
	return &renderCtx{
		p:       p,
		goType:  p.Kind.GoName(),
		imports: map[string]struct{}{},
	}
}

func (ctx *renderCtx) addImport(path string) {
	ctx.imports[path] = struct{}{}
}

// doc returns the given doc-comment lines, or nil when explanatory
// comments are disabled.
func (ctx *renderCtx) doc(comments bool, lines ...string) []string {
	if !comments {
		return nil
	}

	return lines
}

// assemble renders all sections into a formatted Go file.
func (g *Generator) assemble(ctx *renderCtx) (GeneratedFile, error) {
	sections := [][]string{
		g.typeSection(ctx),
		ctx.vars,
		g.errsSection(ctx),
		g.ctorSection(ctx),
		g.uncheckedSection(ctx),
		g.accessorSection(ctx),
	}
	sections = append(sections, g.traitSections(ctx)...)

	var buf bytes.Buffer

	buf.WriteString("// Code generated by newtype-generator. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.config.PackageName)

	if len(ctx.imports) > 0 {
		paths := slices.Sorted(maps.Keys(ctx.imports))

		if len(paths) == 1 {
			fmt.Fprintf(&buf, "import %q\n\n", paths[0])
		} else {
			buf.WriteString("import (\n")
			for _, path := range paths {
				fmt.Fprintf(&buf, "\t%q\n", path)
			}
			buf.WriteString(")\n\n")
		}
	}

	for _, section := range sections {
		if common.IsEmpty(section) {
			continue
		}

		buf.WriteString(strings.Join(section, "\n"))
		buf.WriteString("\n\n")
	}

	filename := camelToSnake(ctx.p.TypeName) + ".go"

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted && g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting %s: %w", ctx.p.TypeName, err)
	}

	return GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) typeSection(ctx *renderCtx) []string {
	var lines []string

	for _, docLine := range ctx.p.Doc {
		lines = append(lines, "// "+docLine)
	}

	if len(ctx.p.Doc) == 0 && g.config.GenerateComments {
		lines = append(lines,
			fmt.Sprintf("// %s wraps %s behind its sanitization and validation rules.", ctx.p.TypeName, ctx.goType))
	}

	lines = append(lines,
		fmt.Sprintf("type %s struct {", ctx.p.TypeName),
		fmt.Sprintf("\tinner %s", ctx.goType),
		"}",
	)

	return lines
}

func (g *Generator) errsSection(ctx *renderCtx) []string {
	if common.IsEmpty(ctx.checks) {
		return nil
	}

	ctx.addImport("errors")

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// Validation failure reasons reported by %s, one per validator.", newName(ctx.p)))

	lines = append(lines, "var (")
	for _, check := range ctx.checks {
		lines = append(lines, fmt.Sprintf("\t%s = errors.New(\"%s: %s violated\")",
			check.errVar, ctx.p.TypeName, check.rule))
	}
	lines = append(lines, ")")

	return lines
}

func (g *Generator) ctorSection(ctx *renderCtx) []string {
	name := newName(ctx.p)

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// %s applies the sanitizers in declaration order, then the validators", name),
		"// in declaration order, and returns the first validator failure if any.")

	lines = append(lines, fmt.Sprintf("func %s(raw %s) (%s, error) {", name, ctx.goType, ctx.p.TypeName))
	lines = append(lines, ctx.sanitize...)

	for _, check := range ctx.checks {
		lines = append(lines,
			fmt.Sprintf("\tif %s {", check.cond),
			fmt.Sprintf("\t\treturn %s{}, %s", ctx.p.TypeName, check.errVar),
			"\t}",
			"",
		)
	}

	lines = append(lines,
		fmt.Sprintf("\treturn %s{inner: raw}, nil", ctx.p.TypeName),
		"}",
	)

	return lines
}

func (g *Generator) uncheckedSection(ctx *renderCtx) []string {
	if !ctx.p.NewUnchecked {
		return nil
	}

	name := uncheckedName(ctx.p)

	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// %s wraps raw as-is, bypassing sanitization and validation.", name),
		fmt.Sprintf("// The caller is responsible for upholding %s's invariants.", ctx.p.TypeName))

	return append(lines,
		fmt.Sprintf("func %s(raw %s) %s {", name, ctx.goType, ctx.p.TypeName),
		fmt.Sprintf("\treturn %s{inner: raw}", ctx.p.TypeName),
		"}",
	)
}

func (g *Generator) accessorSection(ctx *renderCtx) []string {
	lines := ctx.doc(g.config.GenerateComments,
		fmt.Sprintf("// Value returns the inner %s.", ctx.goType))

	return append(lines,
		fmt.Sprintf("func (v %s) Value() %s {", ctx.p.TypeName, ctx.goType),
		"\treturn v.inner",
		"}",
	)
}
