package resolver

import (
	"errors"
	"fmt"
)

// ResolveErrorType categorizes resolver errors.
type ResolveErrorType int

const (
	// InvalidGlobPattern indicates a glob directive with malformed syntax.
	InvalidGlobPattern ResolveErrorType = iota
	// InvalidRegexPattern indicates a regex directive that does not compile.
	InvalidRegexPattern
	// InvalidBaseDir indicates the base directory is missing or not a directory.
	InvalidBaseDir
	// WalkFailed indicates the base directory itself could not be read.
	WalkFailed
)

// String returns the string representation of the error type.
func (t ResolveErrorType) String() string {
	switch t {
	case InvalidGlobPattern:
		return "invalid glob pattern"
	case InvalidRegexPattern:
		return "invalid regex pattern"
	case InvalidBaseDir:
		return "invalid base directory"
	case WalkFailed:
		return "directory walk failed"
	default:
		return "resolve error"
	}
}

// ResolveError represents a fatal resolution error.
type ResolveError struct {
	// Type categorizes the error.
	Type ResolveErrorType
	// Pattern is the directive pattern as written in the template (or the
	// directory for InvalidBaseDir and WalkFailed).
	Pattern string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Pattern, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Pattern)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// newResolveError creates a new ResolveError.
func newResolveError(typ ResolveErrorType, pattern string, cause error) *ResolveError {
	return &ResolveError{
		Type:    typ,
		Pattern: pattern,
		Cause:   cause,
	}
}

// IsInvalidPattern reports whether err is caused by malformed directive syntax.
func IsInvalidPattern(err error) bool {
	var re *ResolveError
	if !errors.As(err, &re) {
		return false
	}
	return re.Type == InvalidGlobPattern || re.Type == InvalidRegexPattern
}

// IsIOError reports whether err is a filesystem failure rather than a pattern problem.
func IsIOError(err error) bool {
	var re *ResolveError
	if !errors.As(err, &re) {
		return false
	}
	return re.Type == WalkFailed || re.Type == InvalidBaseDir
}
