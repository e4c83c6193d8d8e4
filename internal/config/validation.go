package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration cannot be nil")
	}

	if err := validateFileName(config.Format.FileName); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "format.file_name", err.Error())
	}
	if config.Format.CacheSize < 1 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "format.cache_size", "cache size must be at least 1")
	}

	for i, p := range config.Resolver.IgnorePatterns {
		if !doublestar.ValidatePattern(p) {
			return NewConfigErrorWithField(
				ConfigValidationFailed,
				"",
				fmt.Sprintf("resolver.ignore_patterns[%d]", i),
				fmt.Sprintf("invalid glob pattern %q", p),
			)
		}
	}

	return nil
}

// validateFileName checks that name is a bare file name.
func validateFileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("file name cannot be %q", name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("file name %q must not contain a path separator", name)
	}
	return nil
}
