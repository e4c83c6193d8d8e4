// Package resolver turns #ef and #efr directive patterns into ordered lists
// of existing, non-binary files under a fixed base directory.
//
// Non-fatal conditions (nothing matched, a glob expansion error, a file that
// cannot be inspected) are accumulated as warnings on the Resolver and handed
// over once through TakeWarnings. Malformed patterns are returned as errors.
//
// Symbolic links are never followed into directories, so directory walks
// cannot loop. A symlink to a regular file is treated as that file.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/template/model"
)

// Options configures a Resolver.
type Options struct {
	// RestrictToBaseDir drops glob matches that lie outside the base directory
	// (absolute patterns or patterns climbing with "..").
	RestrictToBaseDir bool
	// IgnorePatterns are doublestar patterns matched against base-relative
	// slash-separated paths. Matching files are skipped silently.
	IgnorePatterns []string
}

// Resolver resolves directive patterns relative to a base directory.
// It is not safe for concurrent use.
type Resolver struct {
	baseDir  string
	opts     Options
	warnings model.Warnings
}

// New creates a Resolver anchored at baseDir, which is made absolute and
// must be an existing directory.
func New(baseDir string, opts Options) (*Resolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, newResolveError(InvalidBaseDir, baseDir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, newResolveError(InvalidBaseDir, abs, err)
	}
	if !info.IsDir() {
		return nil, newResolveError(InvalidBaseDir, abs, fmt.Errorf("not a directory"))
	}

	if err := ValidateIgnorePatterns(opts.IgnorePatterns); err != nil {
		return nil, err
	}

	debug.Debug("[resolver] New: baseDir=%s restrict=%v ignore=%v", abs, opts.RestrictToBaseDir, opts.IgnorePatterns)
	return &Resolver{
		baseDir: abs,
		opts:    opts,
	}, nil
}

// BaseDir returns the absolute base directory.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Resolve dispatches a directive to ResolveGlob or ResolveRegex.
func (r *Resolver) Resolve(d model.Directive) ([]string, error) {
	switch d := d.(type) {
	case model.Glob:
		return r.ResolveGlob(d.Pattern)
	case model.Regex:
		return r.ResolveRegex(d.Pattern)
	default:
		return nil, fmt.Errorf("unsupported directive type %T", d)
	}
}

// TakeWarnings returns the warnings accumulated so far and clears them.
func (r *Resolver) TakeWarnings() model.Warnings {
	return r.warnings.Take()
}

// relative returns path relative to the base directory with "/" separators,
// and whether path lies inside the base directory.
func (r *Resolver) relative(path string) (string, bool) {
	rel, err := filepath.Rel(r.baseDir, path)
	if err != nil {
		return filepath.ToSlash(path), false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(rel), false
	}
	return filepath.ToSlash(rel), true
}

// admit reports whether path is an eligible text file. A non-nil error
// means the file could not be inspected; the caller decides how to report it.
func (r *Resolver) admit(path string) (bool, error) {
	rel, inside := r.relative(path)
	if r.opts.RestrictToBaseDir && !inside {
		debug.Debug("[resolver] Skipping file outside base directory: %s", path)
		return false, nil
	}
	if inside && len(r.opts.IgnorePatterns) > 0 && ShouldIgnore(rel, r.opts.IgnorePatterns) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	binary, err := IsBinaryFile(path)
	if err != nil {
		return false, err
	}
	if binary {
		debug.Debug("[resolver] Skipping binary file: %s", path)
		return false, nil
	}
	return true, nil
}
