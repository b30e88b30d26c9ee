// Package errs provides standardized error types for the parceltrack
// application.
//
// Each error type follows the same pattern: a sentinel error variable for
// classification with errors.Is, a struct carrying the failure details,
// constructors with and without a cause, an Error() method producing a
// single-line message, and Unwrap() returning the sentinel.
//
// The types cover the recurring failure scenarios of the domain:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value fell outside its interval
//   - ObjectNotFoundError: an object could not be located by its identifier
//
// Business outcomes with dedicated handling (bad credentials, duplicate
// username, unparseable message) are modeled as sentinel errors in the
// packages that produce them, not here.
package errs
