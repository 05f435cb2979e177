// Package gen provides deterministic Go code generation for staging types.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Per record it emits, into the record's own package:
//   - the staging struct: one Outcome slot per field, in declaration order,
//     plus the optional AdditionalErrors collection
//   - the TryConvert method: seeds the accumulator with additional errors,
//     appends field errors in declaration order, and hands the non-empty
//     accumulator to the consumer's reduce function exactly once
package gen
