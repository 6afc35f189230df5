// Package gen provides deterministic Go code generation for newtype
// definitions.
//
// Generation approach uses plain line assembly + go/format for readable,
// allocation-light Go code. Output is a pure function of its inputs:
// identical parameters always produce byte-identical files.
//
// Each generated file contains:
//   - The wrapper struct (inner field unexported)
//   - Sentinel error vars, one per validator
//   - The checked constructor (sanitize in order, validate in order)
//   - The optional unchecked constructor
//   - The inner-value accessor
//   - One implementation block per approved derive trait
//
// Generated files import only the standard library so they impose no
// dependencies on consumer modules.
package gen
