package expand

import (
	"fmt"

	"newtype-generator/internal/gen"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/parse"
	"newtype-generator/internal/schema"
	"newtype-generator/internal/validate"
	"newtype-generator/primitive"
)

// File expands every declaration of one parsed file, in file order. The
// first failing declaration aborts the whole file; nothing is written for
// a file that did not expand completely.
func File(g *gen.Generator, f *schema.File) ([]gen.GeneratedFile, error) {
	g = g.WithPackage(f.Package)

	files := make([]gen.GeneratedFile, 0, len(f.Newtypes))

	for i := range f.Newtypes {
		nt := &f.Newtypes[i]

		file, err := Newtype(g, nt)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", nt.Meta.TypeName.Name, err)
		}

		files = append(files, file)
	}

	return files, nil
}

// Newtype runs the full pipeline for one declaration. Each numeric width
// gets its own instantiation so bounds and defaults are checked against
// the concrete inner type, not a widened stand-in.
func Newtype(g *gen.Generator, nt *schema.Newtype) (gen.GeneratedFile, error) {
	switch nt.Meta.Inner.Value {
	case primitive.KindString:
		return expandString(g, nt)
	case primitive.KindInt:
		return expandNumber[int](g, nt)
	case primitive.KindInt8:
		return expandNumber[int8](g, nt)
	case primitive.KindInt16:
		return expandNumber[int16](g, nt)
	case primitive.KindInt32:
		return expandNumber[int32](g, nt)
	case primitive.KindInt64:
		return expandNumber[int64](g, nt)
	case primitive.KindUint:
		return expandNumber[uint](g, nt)
	case primitive.KindUint8:
		return expandNumber[uint8](g, nt)
	case primitive.KindUint16:
		return expandNumber[uint16](g, nt)
	case primitive.KindUint32:
		return expandNumber[uint32](g, nt)
	case primitive.KindUint64:
		return expandNumber[uint64](g, nt)
	case primitive.KindFloat32:
		return expandNumber[float32](g, nt)
	case primitive.KindFloat64:
		return expandNumber[float64](g, nt)
	default:
		return gen.GeneratedFile{}, fmt.Errorf("unsupported inner kind %v", nt.Meta.Inner.Value)
	}
}

func expandString(g *gen.Generator, nt *schema.Newtype) (gen.GeneratedFile, error) {
	attrs, derr := parse.String(nt.Attrs)
	if derr != nil {
		return gen.GeneratedFile{}, derr
	}

	traits, derr := validate.Traits(primitive.KindString, validate.InfoString(attrs.Guard),
		nt.Meta.DeriveTraits, attrs.HasDefault())
	if derr != nil {
		return gen.GeneratedFile{}, derr
	}

	return g.String(genParams(nt.Meta, traits, attrs.NewUnchecked, attrs.DefaultValue), attrs.Guard)
}

func expandNumber[T primitive.Number](g *gen.Generator, nt *schema.Newtype) (gen.GeneratedFile, error) {
	kind := nt.Meta.Inner.Value

	attrs, derr := parse.Number[T](kind, nt.Attrs)
	if derr != nil {
		return gen.GeneratedFile{}, derr
	}

	traits, derr := validate.Traits(kind, validate.InfoNumber(attrs.Guard),
		nt.Meta.DeriveTraits, attrs.HasDefault())
	if derr != nil {
		return gen.GeneratedFile{}, derr
	}

	return gen.Number(g, genParams(nt.Meta, traits, attrs.NewUnchecked, attrs.DefaultValue), attrs.Guard)
}

func genParams(m meta.NewtypeMeta, traits validate.TraitSet,
	unchecked meta.NewUnchecked, defaultValue *meta.Spanned[string],
) gen.Params {
	p := gen.Params{
		Doc:          m.Doc,
		Vis:          m.Vis,
		TypeName:     m.TypeName.Name,
		Kind:         m.Inner.Value,
		Traits:       traits,
		NewUnchecked: unchecked.Enabled,
	}

	if defaultValue != nil {
		p.DefaultValue = defaultValue.Value
		p.HasDefault = true
	}

	return p
}
