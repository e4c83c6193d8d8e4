package eftemplate

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MoAI522/embed-files/internal/debug"
)

// DefaultCacheSize is the number of directories a Loader remembers.
const DefaultCacheSize = 128

// Loader resolves formats for many paths during one run, caching the result
// per starting directory.
type Loader struct {
	name  string
	cache *lru.Cache[string, *Format]
}

// NewLoader creates a Loader that looks for files called name (FileName when
// empty) and caches up to size directories (DefaultCacheSize when size < 1).
func NewLoader(name string, size int) (*Loader, error) {
	if name == "" {
		name = FileName
	}
	if size < 1 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *Format](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create format cache: %w", err)
	}
	return &Loader{name: name, cache: cache}, nil
}

// FileName returns the format file name the Loader searches for.
func (l *Loader) FileName() string {
	return l.name
}

// Load returns the format governing startPath, consulting the cache first.
// Errors are not cached.
func (l *Loader) Load(startPath string) (*Format, error) {
	dir, err := startDir(startPath)
	if err != nil {
		return nil, err
	}

	if f, ok := l.cache.Get(dir); ok {
		debug.Debug("[eftemplate] Cache hit for %s", dir)
		return f, nil
	}

	f, err := findAndLoadIn(dir, l.name)
	if err != nil {
		return nil, err
	}
	l.cache.Add(dir, f)
	return f, nil
}

// Len returns the number of cached directories.
func (l *Loader) Len() int {
	return l.cache.Len()
}
