package gen

import (
	"fmt"

	"newtype-generator/internal/meta"
	"newtype-generator/primitive"
)

// Number renders the complete definition of a numeric-family newtype.
// The guard is monomorphized at width T, but emission works on the declared
// literal spellings so the output matches the declaration verbatim.
func Number[T primitive.Number](g *Generator, p Params, guard meta.NumberGuard[T]) (GeneratedFile, error) {
	ctx := newRenderCtx(p)

	for _, s := range guard.Sanitizers {
		switch s.Kind {
		case meta.SanitizeClamp:
			ctx.sanitize = append(ctx.sanitize,
				fmt.Sprintf("\tif raw < %s {", s.RawMin),
				fmt.Sprintf("\t\traw = %s", s.RawMin),
				"\t}",
				"",
				fmt.Sprintf("\tif raw > %s {", s.RawMax),
				fmt.Sprintf("\t\traw = %s", s.RawMax),
				"\t}",
			)
		case meta.SanitizeNumberWith:
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
		case meta.ValidateMin:
			check.cond = fmt.Sprintf("raw < %s", v.Raw)
		case meta.ValidateMax:
			check.cond = fmt.Sprintf("raw > %s", v.Raw)
		case meta.ValidateGreater:
			check.cond = fmt.Sprintf("raw <= %s", v.Raw)
		case meta.ValidateLess:
			check.cond = fmt.Sprintf("raw >= %s", v.Raw)
		case meta.ValidateFinite:
			ctx.addImport("math")
			check.cond = "math.IsNaN(float64(raw)) || math.IsInf(float64(raw), 0)"
		case meta.ValidateNumberWith:
			check.cond = fmt.Sprintf("!%s(raw)", v.Func)
		}

		ctx.checks = append(ctx.checks, check)
	}

	return g.assemble(ctx)
}
