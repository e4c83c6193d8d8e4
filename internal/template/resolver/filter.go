package resolver

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MoAI522/embed-files/internal/debug"
)

// ValidateIgnorePatterns checks every pattern for doublestar syntax errors.
func ValidateIgnorePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return newResolveError(InvalidGlobPattern, p, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// ShouldIgnore checks if a base-relative, slash-separated path matches any
// ignore pattern.
func ShouldIgnore(rel string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		if MatchesPattern(rel, pattern) {
			debug.Debug("[resolver] Ignoring file: %s (matched pattern: %s)", rel, pattern)
			return true
		}
	}
	return false
}

// MatchesPattern checks if a slash-separated path matches a glob pattern.
// Patterns without a "/" are also tried against the base name, so "*.lock"
// ignores lock files at any depth.
func MatchesPattern(rel, pattern string) bool {
	// Try matching the full path
	if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		// Pattern has no path separator, try matching against basename
		matched, err := doublestar.Match(pattern, path.Base(rel))
		if err == nil && matched {
			return true
		}
	}

	return false
}
