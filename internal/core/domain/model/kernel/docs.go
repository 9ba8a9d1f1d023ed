// Package kernel provides core domain primitives shared across the
// marketplace domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Money: a fixed-point decimal value object for prices and totals
//
// These primitives are immutable and thread-safe. They enforce their own
// invariants so that the aggregates built on top of them never observe an
// identifier or amount in an invalid state.
package kernel
