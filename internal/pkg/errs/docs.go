// Package errs provides the typed errors used across the workshop module.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrValueIsRequired, ErrStateConflict, ...)
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Unwrap returning the sentinel so errors.Is works through wrapping
//
// The value errors (required, invalid, out of range) additionally match
// ErrInvalidArgument, and StateConflictError matches ErrStateConflict. Domain
// operations only ever fail with one of these two kinds, so callers can branch
// on IsInvalidArgument / IsStateConflict without knowing the concrete type.
package errs
