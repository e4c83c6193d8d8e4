package eftemplate

import (
	"errors"
	"fmt"
)

// FormatErrorType represents the type of output format error.
type FormatErrorType int

const (
	// FormatReadFailed indicates a format file exists but could not be read.
	FormatReadFailed FormatErrorType = iota
	// FormatLookupFailed indicates the start path of a lookup could not be
	// resolved or a candidate location could not be inspected.
	FormatLookupFailed
)

// String returns the string representation of the error type.
func (t FormatErrorType) String() string {
	switch t {
	case FormatReadFailed:
		return "format read failed"
	case FormatLookupFailed:
		return "format lookup failed"
	default:
		return "format error"
	}
}

// FormatError represents an error discovering or loading an output format.
type FormatError struct {
	// Type is the error type.
	Type FormatErrorType
	// File is the format file or lookup start path.
	File string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.File, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.File)
}

// Unwrap returns the underlying cause error.
func (e *FormatError) Unwrap() error {
	return e.Cause
}

func newFormatError(typ FormatErrorType, file string, cause error) *FormatError {
	return &FormatError{
		Type:  typ,
		File:  file,
		Cause: cause,
	}
}

// IsFormatError reports whether err is or wraps a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
