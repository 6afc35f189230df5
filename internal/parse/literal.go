package parse

import (
	"strconv"

	"fortio.org/safecast"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/meta"
	"newtype-generator/internal/schema"
	"newtype-generator/primitive"
)

// lengthLiteral interprets a min_len/max_len argument as a non-negative int.
func lengthLiteral(rule schema.Rule) (int, *diagnostic.Error) {
	n, err := strconv.Atoi(rule.Args[0])
	if err != nil || n < 0 {
		return 0, diagnostic.Errorf(rule.Span, diagnostic.CodeMalformedLiteral,
			"rule %q wants a non-negative integer, got %q", rule.Name, rule.Args[0])
	}

	return n, nil
}

// numberLiteral interprets raw as a literal of the concrete inner type T.
// Width and sign are enforced here, so every later stage can trust the
// value: floats go through strconv at the kind's precision, integers are
// parsed at 64 bits and then narrowed with a checked conversion.
func numberLiteral[T primitive.Number](kind primitive.KindEnum, raw string, at meta.Span) (T, *diagnostic.Error) {
	var zero T

	switch {
	case kind.IsFloat():
		f, err := strconv.ParseFloat(raw, kind.Bits())
		if err != nil {
			return zero, diagnostic.Errorf(at, diagnostic.CodeMalformedLiteral,
				"%q is not a valid %s literal", raw, kind.GoName())
		}

		return T(f), nil

	case kind.IsUnsigned():
		u, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return zero, diagnostic.Errorf(at, diagnostic.CodeMalformedLiteral,
				"%q is not a valid %s literal", raw, kind.GoName())
		}

		v, convErr := safecast.Convert[T](u)
		if convErr != nil {
			return zero, diagnostic.Errorf(at, diagnostic.CodeMalformedLiteral,
				"literal %q does not fit in %s", raw, kind.GoName())
		}

		return v, nil

	default:
		i, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return zero, diagnostic.Errorf(at, diagnostic.CodeMalformedLiteral,
				"%q is not a valid %s literal", raw, kind.GoName())
		}

		v, convErr := safecast.Convert[T](i)
		if convErr != nil {
			return zero, diagnostic.Errorf(at, diagnostic.CodeMalformedLiteral,
				"literal %q does not fit in %s", raw, kind.GoName())
		}

		return v, nil
	}
}
