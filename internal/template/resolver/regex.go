package resolver

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/template/model"
)

// ResolveRegex walks the base directory depth-first in lexical order and
// returns every eligible file whose base-relative path, with "/" separators,
// matches pattern. The pattern is unanchored; use ^ and $ as needed.
//
// An unreadable subdirectory is reported as a warning and skipped; an
// unreadable base directory fails with WalkFailed.
func (r *Resolver) ResolveRegex(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, newResolveError(InvalidRegexPattern, pattern, err)
	}

	debug.Debug("[resolver] ResolveRegex: pattern=%q base=%s", pattern, r.baseDir)

	var result []string
	err = filepath.WalkDir(r.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == r.baseDir {
				return err
			}
			debug.Debug("[resolver] Skipping unreadable path: %s: %v", path, err)
			r.warnings.Add(model.FileNotFoundBecause(path, err))
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				debug.Debug("[resolver] Skipping broken symlink: %s", path)
				return nil
			}
			if target.IsDir() {
				// Not followed: keeps the walk finite.
				debug.Debug("[resolver] Not following directory symlink: %s", path)
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		rel, _ := r.relative(path)
		if !re.MatchString(rel) {
			return nil
		}

		ok, err := r.admit(path)
		if err != nil {
			debug.Debug("[resolver] Regex match could not be inspected: %s: %v", path, err)
			r.warnings.Add(model.FileNotFoundBecause(path, err))
			return nil
		}
		if ok {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, newResolveError(WalkFailed, r.baseDir, err)
	}

	if len(result) == 0 {
		r.warnings.Add(model.FileNotFound(pattern))
	}

	debug.Debug("[resolver] ResolveRegex: %q matched %d file(s)", pattern, len(result))
	return result, nil
}
