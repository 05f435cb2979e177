// Package config provides the YAML configuration surface for staging
// generation, its parsing, defaulting, and validation against the analyzed
// type graph.
//
// YAML is the authoritative, human-reviewed description of which records get
// staging types and how:
//
//	version: "1"
//	packages:
//	  - ./person
//	records:
//	  - type: person.Args              # pkgname.Type or import/path.Type
//	    error: Error                   # required; per-field error type
//	    final_error: Error             # optional; defaults to error
//	    name: ArgsStaging              # optional; staging type name override
//	    reduce: CombineErrors          # optional; reducer function name
//	    runtime: staging-generator/staging  # optional; runtime import path
//	    collect_additional_errors: true
//
// Validation reports structured diagnostics with snake_case codes and checks
// everything it can prove from the type graph: the record exists and is a
// struct, the error and final error types resolve, and the reducer exists
// with a compatible signature.
package config
