package resolver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/template/model"
)

// ResolveGlob expands a shell glob ("*", "?", "**", "[...]", "{a,b}").
//
// A relative pattern is matched inside the base directory, so glob syntax in
// the base directory's own path is never interpreted. An absolute pattern is
// used as is. Syntax errors fail with InvalidGlobPattern before any file is
// touched. Expansion errors and matches that cannot be inspected become
// FileNotFound warnings for the pattern, and an empty result adds one more.
func (r *Resolver) ResolveGlob(pattern string) ([]string, error) {
	var (
		matches []string
		err     error
	)
	if filepath.IsAbs(pattern) {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, newResolveError(InvalidGlobPattern, pattern, doublestar.ErrBadPattern)
		}
		debug.Debug("[resolver] ResolveGlob: absolute pattern=%q", pattern)
		matches, err = r.expand(pattern, func(opts ...doublestar.GlobOption) ([]string, error) {
			return doublestar.FilepathGlob(pattern, opts...)
		})
	} else {
		slashed := filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(slashed) {
			return nil, newResolveError(InvalidGlobPattern, pattern, doublestar.ErrBadPattern)
		}
		debug.Debug("[resolver] ResolveGlob: pattern=%q base=%s", pattern, r.baseDir)
		matches, err = r.expandRelative(pattern, slashed)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(matches))
	var result []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true

		ok, err := r.admit(m)
		if err != nil {
			debug.Debug("[resolver] Glob match could not be inspected: %s: %v", m, err)
			r.warnings.Add(model.FileNotFoundBecause(pattern, err))
			continue
		}
		if ok {
			result = append(result, m)
		}
	}

	if len(result) == 0 {
		r.warnings.Add(model.FileNotFound(pattern))
	}

	debug.Debug("[resolver] ResolveGlob: %q matched %d file(s)", pattern, len(result))
	return result, nil
}

// expandRelative globs a relative pattern against the base directory. The
// literal leading directories of the pattern (which may climb with "..") are
// joined onto the base directory, and the rest is matched through an
// fs.FS rooted there. Results are absolute OS paths.
func (r *Resolver) expandRelative(pattern, slashed string) ([]string, error) {
	prefix, rest := doublestar.SplitPattern(slashed)
	root := filepath.Join(r.baseDir, filepath.FromSlash(unescape(prefix)))

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		debug.Debug("[resolver] Glob root does not exist: %s", root)
		return nil, nil
	}

	fsys := os.DirFS(root)
	matches, err := r.expand(pattern, func(opts ...doublestar.GlobOption) ([]string, error) {
		return doublestar.Glob(fsys, rest, opts...)
	})
	if err != nil {
		return nil, err
	}

	for i, m := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return matches, nil
}

// expand runs the glob engine. An I/O error during expansion is recorded as a
// warning and expansion is retried tolerantly so the readable part of the
// tree still contributes matches.
func (r *Resolver) expand(pattern string, glob func(...doublestar.GlobOption) ([]string, error)) ([]string, error) {
	matches, err := glob(doublestar.WithFailOnIOErrors(), doublestar.WithNoFollow())
	if err == nil {
		return matches, nil
	}
	if errors.Is(err, doublestar.ErrBadPattern) {
		return nil, newResolveError(InvalidGlobPattern, pattern, err)
	}

	debug.Debug("[resolver] Glob expansion error for %q: %v", pattern, err)
	r.warnings.Add(model.FileNotFoundBecause(pattern, err))

	matches, err = glob(doublestar.WithNoFollow())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, newResolveError(InvalidGlobPattern, pattern, err)
		}
		// Without WithFailOnIOErrors the engine does not report I/O errors;
		// anything else leaves nothing usable.
		return nil, nil
	}
	return matches, nil
}

// unescape drops the backslash escapes from a literal pattern prefix.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
