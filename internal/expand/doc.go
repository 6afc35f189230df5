// Package expand drives the per-newtype pipeline: it hands the raw
// attributes to the family attribute parser, the parsed request to the
// trait validator, and the approved bundle to the code generator. The
// numeric families share one generic expansion instantiated per inner
// width, so every literal is interpreted at the exact declared type.
package expand
