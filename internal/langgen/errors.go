package langgen

import "fmt"

// FetchError represents a failure to obtain source data.
type FetchError struct {
	// Source is the source kind ("http" or "file").
	Source string
	// Location is the URL or path.
	Location string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s source: failed to fetch %s: %v", e.Source, e.Location, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewFetchError creates a new FetchError.
func NewFetchError(source, location string, cause error) *FetchError {
	return &FetchError{
		Source:   source,
		Location: location,
		Cause:    cause,
	}
}
