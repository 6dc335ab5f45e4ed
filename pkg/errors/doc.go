// Package errors provides unified error types and display for skinmatch.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - DataLoadError: Catalog source missing or malformed
//   - FormatError: Rating value outside the star scale
//   - InvalidRangeError: Caller-supplied min > max
//   - EmptyQueryError: Ingredient query with no usable terms
//   - ValidationError: Configuration or input validation failures
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if dle, ok := errors.IsDataLoadError(err); ok {
//	    fmt.Println(dle.Source)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): Command completed, including searches with no results
//   - ExitFailure (2): Catalog could not be loaded or another critical error
//   - ExitConfigError (3): Configuration or input validation error
package errors
