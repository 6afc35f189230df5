// Package validate decides which requested derive traits may be mechanically
// derived given the guard's shape. The policy is declarative: each family
// has a table mapping traits to category bitmasks, and one uniform evaluator
// applies the cross-cutting rules (constructing traits need a default,
// closure/coercing traits are incompatible with validation, float exactness
// needs a finite guarantee).
//
// The policy is fail-closed: a trait absent from the family table is
// rejected with a positioned error, never silently dropped.
package validate
