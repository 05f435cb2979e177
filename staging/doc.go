// Package staging is the runtime support package for generated staging types.
//
// Generated code and application code share three pieces:
//   - Outcome: a per-field slot holding either a value or an error, never both
//   - Reducer: reflect-based validation of consumer reduction functions
//   - Converter: a reflection-based alternative to generated TryConvert methods
//
// The ordering contract is identical for generated and reflective conversion:
// additional errors first, in their original order, then field errors in
// declaration order. Every collected error reaches the reduction exactly once.
package staging
