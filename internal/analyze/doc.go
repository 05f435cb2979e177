// Package analyze provides package loading and record description extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the named types a staging config may refer to.
//
// Key types:
//   - RecordID: package import path + type name
//   - RecordDescription: kind, declaration-ordered fields, rendered type
//     strings and the imports needed to spell them
//   - TypeGraph: all loaded packages and their described types
package analyze
