// Package parse turns raw guard configuration (schema.Rule lists) into the
// typed guard of the matching inner-type family. There is one entry point
// per family: String, and Number monomorphized over the concrete width so
// that rule and default literals are interpreted at the right type.
//
// Rule names follow the common sanitizer/validator vocabulary: trim,
// lowercase, min_len, regex, clamp, min, greater, finite, and the `with`
// escape hatch for user-supplied functions. Declaring a rule twice, using a
// rule from another family, or supplying a malformed literal is a
// positioned configuration error.
package parse
