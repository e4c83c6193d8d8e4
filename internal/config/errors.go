package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates an explicitly named configuration file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file is unreadable, not YAML, or does not
	// decode into Config.
	ConfigInvalid
	// ConfigValidationFailed indicates a decoded value is out of range.
	ConfigValidationFailed
)

// String returns a short name for the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "not found"
	case ConfigInvalid:
		return "invalid"
	case ConfigValidationFailed:
		return "validation failed"
	default:
		return "unknown"
	}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path. Empty when the values came from
	// defaults and EF_* environment variables only.
	File string
	// Field is the dotted key that caused the error, e.g. "format.cache_size".
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration error")
	if e.File != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.File)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, " [field: %s]", e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	return sb.String()
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, file, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
	}
}

// NewConfigErrorWithField creates a ConfigError pointing at one key.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a ConfigNotFound error.
func IsNotFound(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound
}
