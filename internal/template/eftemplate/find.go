package eftemplate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MoAI522/embed-files/internal/debug"
)

// Find walks from startDir up to the filesystem root and returns the first
// regular file called name. startDir must be an absolute, clean directory.
// A candidate that does not exist, or is not a regular file, is skipped; any
// other stat failure stops the search with FormatLookupFailed.
func Find(startDir, name string) (string, bool, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			debug.Debug("[eftemplate] Found format file: %s", candidate)
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, newFormatError(FormatLookupFailed, candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// startDir resolves the directory a lookup begins in: startPath itself when
// it is a directory, its parent otherwise (including paths that do not exist).
func startDir(startPath string) (string, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return "", newFormatError(FormatLookupFailed, startPath, err)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}
