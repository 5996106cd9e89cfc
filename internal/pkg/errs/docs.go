// Package errs provides standardized error types for the sales-order domain
// model. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the repository.
//
// The package covers the failure kinds the domain can raise:
//   - ValueIsRequiredError / ValueIsInvalidError: a precondition on a
//     primitive value failed (invalid-argument failures)
//   - InvalidStateError: a lifecycle operation was invoked from a state
//     that does not permit it
//   - CurrencyMismatchError: money arithmetic combined different currencies
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details and an optional cause
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// All failures are raised synchronously at the point of violation; validation
// always precedes any state change.
package errs
