// Package eftemplate discovers and renders the per-directory output format
// that controls how each embedded file appears in the expanded document.
//
// A format is plain text with up to three placeholders: {filePath},
// {language} and {content}. Every occurrence is replaced; nothing else is
// interpreted or escaped.
package eftemplate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/langmap"
)

const (
	// FileName is the default name of a directory-local format file.
	FileName = ".eftemplate"

	// DefaultFormat is used when no format file exists in any ancestor.
	DefaultFormat = "{filePath}\n```{language}\n{content}\n```\n"

	PlaceholderFilePath = "{filePath}"
	PlaceholderLanguage = "{language}"
	PlaceholderContent  = "{content}"
)

// Format is a loaded output format. It is immutable.
type Format struct {
	template string
	source   string
}

// New creates a Format from template text. source names the file it was
// read from and may be empty.
func New(template, source string) *Format {
	return &Format{template: template, source: source}
}

// Default returns the built-in format.
func Default() *Format {
	return New(DefaultFormat, "")
}

// Template returns the raw format text.
func (f *Format) Template() string {
	return f.template
}

// Source returns the file the format was loaded from, or "" for the default.
func (f *Format) Source() string {
	return f.source
}

// IsDefault reports whether the format is the built-in one.
func (f *Format) IsDefault() bool {
	return f.source == ""
}

// Load reads a format file.
func Load(path string) (*Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newFormatError(FormatReadFailed, path, err)
	}
	return New(string(data), path), nil
}

// FindAndLoad returns the format governing startPath: the nearest
// FileName found from startPath (or its parent directory when startPath is
// a file) upward, or the default format when there is none.
func FindAndLoad(startPath string) (*Format, error) {
	return findAndLoadNamed(startPath, FileName)
}

func findAndLoadNamed(startPath, name string) (*Format, error) {
	dir, err := startDir(startPath)
	if err != nil {
		return nil, err
	}
	return findAndLoadIn(dir, name)
}

func findAndLoadIn(dir, name string) (*Format, error) {
	path, ok, err := Find(dir, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		debug.Debug("[eftemplate] No %s above %s, using default format", name, dir)
		return Default(), nil
	}
	return Load(path)
}

// Render formats one file. The display path is filePath relative to the
// current working directory when filePath is absolute and lies inside it,
// the absolute path when it lies elsewhere, and filePath unchanged when it
// is relative.
func (f *Format) Render(filePath, content string) string {
	r := strings.NewReplacer(
		PlaceholderFilePath, DisplayPath(filePath),
		PlaceholderLanguage, langmap.Detect(filePath),
		PlaceholderContent, content,
	)
	return r.Replace(f.template)
}

// DisplayPath converts filePath to the form shown in rendered output.
// Failures fall back to the unmodified path.
func DisplayPath(filePath string) string {
	if !filepath.IsAbs(filePath) {
		return filePath
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filePath
	}

	rel, err := filepath.Rel(cwd, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Clean(filePath)
	}
	return rel
}
