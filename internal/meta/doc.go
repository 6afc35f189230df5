// Package meta holds the data model shared by every pipeline stage:
// source spans, the structured newtype request produced by the front end,
// the guard (sanitizers + validators) per inner-type family, and the closed
// set of derive traits.
//
// Everything here is plain data. Parsing lives in internal/schema and
// internal/parse, policy in internal/validate, rendering in internal/gen.
package meta
