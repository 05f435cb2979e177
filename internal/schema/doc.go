// Package schema turns an analyzed record description plus per-record options
// into a validated StructSpec, the sole input of the generator.
//
// Build is pure validation-and-normalization: it rejects shapes staging
// cannot express (non-structs, embedded fields, empty records, duplicate
// field names, missing error type) and fills in every default, so downstream
// code never re-checks or re-defaults anything.
package schema
