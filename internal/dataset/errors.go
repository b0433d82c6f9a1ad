package dataset

import (
	"errors"
	"fmt"
)

// MissingColumnError is returned when a requested column does not exist.
// Checks recover from it locally; it never aborts a run.
type MissingColumnError struct {
	// Column is the name of the absent column.
	Column string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// ParseError is returned when a cell cannot be converted to the requested type.
// A ParseError on the date column is fatal to the whole run.
type ParseError struct {
	// Column is the column being converted.
	Column string

	// Row is the 1-indexed record number of the offending cell.
	Row int

	// Value is the raw cell content.
	Value string

	// Err is the underlying conversion error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q row %d: cannot parse %q: %v", e.Column, e.Row, e.Value, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError is returned when the tabular structure itself is malformed
// (duplicate columns, ragged rows, empty input).
type FormatError struct {
	// Row is the 1-indexed record number, or 0 when not row-specific.
	Row int

	// Message describes the structural problem.
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

// IsMissingColumn returns true if the error is a MissingColumnError.
// Uses errors.As to handle wrapped errors.
func IsMissingColumn(err error) bool {
	var mc *MissingColumnError
	return errors.As(err, &mc)
}

// IsParseError returns true if the error is a ParseError.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
