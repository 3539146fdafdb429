// Package errs provides standardized error types for the delivr application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the order
// lifecycle:
//   - ObjectNotFoundError: a referenced restaurant/order/partner is missing
//   - ObjectAlreadyAssignedError: a claim lost the test-and-set race
//   - UnauthorizedError: the acting principal may not touch the object
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps the sentinels to status codes; nothing below the
// adapter ever inspects message strings.
package errs
