package errors

import (
	"errors"
	"fmt"
	"math"
)

// DataLoadError reports a catalog source that is missing or malformed.
//
// It is fatal for the session: no search can run without a catalog.
//
// Fields:
//   - Source: Path of the catalog source
//   - Row: 1-based data row where the problem was found, 0 if not row-specific
//   - Column: Column involved in the problem, if any
//   - Err: Underlying cause
type DataLoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

// Error implements the error interface.
func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("failed to load catalog %q", e.Source)
	if e.Row > 0 {
		msg += fmt.Sprintf(" (row %d", e.Row)
		if e.Column != "" {
			msg += fmt.Sprintf(", column %s", e.Column)
		}
		msg += ")"
	} else if e.Column != "" {
		msg += fmt.Sprintf(" (column %s)", e.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// NewDataLoadError creates a DataLoadError for a whole-source failure.
func NewDataLoadError(source string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Err: err}
}

// IsDataLoadError checks if err is a DataLoadError and returns it.
func IsDataLoadError(err error) (*DataLoadError, bool) {
	var dle *DataLoadError
	if errors.As(err, &dle) {
		return dle, true
	}
	return nil, false
}

// FormatError reports a rating that cannot be drawn on the star scale.
type FormatError struct {
	Value float64
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if math.IsNaN(e.Value) {
		return "invalid rating: not a number"
	}
	return fmt.Sprintf("invalid rating %v: must be between 0 and 5", e.Value)
}

// IsFormatError checks if err is a FormatError and returns it.
func IsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// InvalidRangeError reports a range whose lower bound exceeds its upper bound.
//
// This is a caller error; the CLI validates flags before searching, so
// seeing it from library code means a bound was computed incorrectly.
//
// Fields:
//   - Field: Name of the ranged attribute ("price" or "rank")
//   - Min: Lower bound supplied
//   - Max: Upper bound supplied
type InvalidRangeError struct {
	Field string
	Min   float64
	Max   float64
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s range: min %v is greater than max %v", e.Field, e.Min, e.Max)
}

// IsInvalidRangeError checks if err is an InvalidRangeError and returns it.
func IsInvalidRangeError(err error) (*InvalidRangeError, bool) {
	var ire *InvalidRangeError
	if errors.As(err, &ire) {
		return ire, true
	}
	return nil, false
}

// ErrEmptyQuery is returned when an ingredient query has no non-blank terms.
// Callers should ask the user for at least one ingredient.
var ErrEmptyQuery = errors.New("empty ingredient query: enter at least one ingredient")

// IsEmptyQueryError reports whether err is or wraps ErrEmptyQuery.
func IsEmptyQueryError(err error) bool {
	return errors.Is(err, ErrEmptyQuery)
}
