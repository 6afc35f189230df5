package gen

import (
	"fmt"
	"strconv"

	"newtype-generator/internal/meta"
)

// String renders the complete definition of a string-family newtype.
func (g *Generator) String(p Params, guard meta.StringGuard) (GeneratedFile, error) {
	ctx := newRenderCtx(p)

	for _, s := range guard.Sanitizers {
		switch s.Kind {
		case meta.SanitizeTrim:
			ctx.addImport("strings")
			ctx.sanitize = append(ctx.sanitize, "\traw = strings.TrimSpace(raw)")
		case meta.SanitizeLowercase:
			ctx.addImport("strings")
			ctx.sanitize = append(ctx.sanitize, "\traw = strings.ToLower(raw)")
		case meta.SanitizeUppercase:
			ctx.addImport("strings")
			ctx.sanitize = append(ctx.sanitize, "\traw = strings.ToUpper(raw)")
		case meta.SanitizeCollapseSpaces:
			ctx.addImport("strings")
			ctx.sanitize = append(ctx.sanitize, "\traw = strings.Join(strings.Fields(raw), \" \")")
		case meta.SanitizeStringWith:
			ctx.sanitize = append(ctx.sanitize, fmt.Sprintf("\traw = %s(raw)", s.Func))
		}
	}

	if len(ctx.sanitize) > 0 {
		ctx.sanitize = append(ctx.sanitize, "")
	}

	for _, v := range guard.Validators {
		check := guardCheck{
			rule:   v.RuleName(),
			errVar: errName(p, v.RuleName()),
		}

		switch v.Kind {
		case meta.ValidateNotEmpty:
			check.cond = `raw == ""`
		case meta.ValidateMinLen:
			check.cond = fmt.Sprintf("len(raw) < %d", v.Len)
		case meta.ValidateMaxLen:
			check.cond = fmt.Sprintf("len(raw) > %d", v.Len)
		case meta.ValidateRegex:
			ctx.addImport("regexp")
			ctx.vars = append(ctx.vars,
				fmt.Sprintf("var %s = regexp.MustCompile(%s)", patternVarName(p), strconv.Quote(v.Pattern)))
			check.cond = fmt.Sprintf("!%s.MatchString(raw)", patternVarName(p))
		case meta.ValidateStringWith:
			check.cond = fmt.Sprintf("!%s(raw)", v.Func)
		}

		ctx.checks = append(ctx.checks, check)
	}

	return g.assemble(ctx)
}
