// Package kernel provides the primitives shared by the workshop domain model:
//   - UUID: surrogate identity for entities without a simple natural key
//   - calendar helpers: millisecond truncation, month boundaries, full months
//     and years between two dates
//   - Clock: the injectable source for "now"
//   - money helpers over shopspring/decimal (half-up rounding to cents)
package kernel
