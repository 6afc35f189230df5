// Package schema is the syntactic front door: it loads YAML declaration
// files and turns each entry into a structured request (meta.NewtypeMeta)
// plus the raw guard configuration (Attributes) for the family parsers.
//
// Decoding walks yaml.Node trees by hand so that every value that can fail
// in a later stage carries the file/line/column it was declared at. Nothing
// downstream ever re-parses text.
package schema
