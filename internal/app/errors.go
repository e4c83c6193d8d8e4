package app

import (
	"errors"
	"fmt"

	"github.com/MoAI522/embed-files/internal/template/resolver"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// TemplateReadFailed indicates the template file could not be read.
	TemplateReadFailed AppErrorType = iota
	// TemplateInvalid indicates the template content is not valid UTF-8.
	TemplateInvalid
	// ResolveFailed indicates a directive could not be resolved.
	ResolveFailed
	// FormatLoadFailed indicates an output format file could not be loaded.
	FormatLoadFailed
	// OutputWriteFailed indicates the expanded document could not be written.
	OutputWriteFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case TemplateReadFailed:
		return "template read failed"
	case TemplateInvalid:
		return "template invalid"
	case ResolveFailed:
		return "resolve failed"
	case FormatLoadFailed:
		return "format load failed"
	case OutputWriteFailed:
		return "output write failed"
	default:
		return fmt.Sprintf("AppErrorType(%d)", int(t))
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewTemplateReadError creates a template read error.
func NewTemplateReadError(message string, cause error) *AppError {
	return NewAppError(TemplateReadFailed, message, cause)
}

// NewTemplateInvalidError creates a template content error.
func NewTemplateInvalidError(message string, cause error) *AppError {
	return NewAppError(TemplateInvalid, message, cause)
}

// NewResolveError creates a directive resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewFormatLoadError creates a format load error.
func NewFormatLoadError(message string, cause error) *AppError {
	return NewAppError(FormatLoadFailed, message, cause)
}

// NewOutputWriteError creates an output write error.
func NewOutputWriteError(message string, cause error) *AppError {
	return NewAppError(OutputWriteFailed, message, cause)
}

// IsIOError reports whether err is a filesystem or output failure, as
// opposed to a mistake in the template itself.
func IsIOError(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Type {
	case TemplateReadFailed, FormatLoadFailed, OutputWriteFailed:
		return true
	case ResolveFailed:
		return resolver.IsIOError(appErr.Cause)
	default:
		return false
	}
}

// IsInvalidPattern reports whether err is caused by a malformed directive pattern.
func IsInvalidPattern(err error) bool {
	return resolver.IsInvalidPattern(err)
}
