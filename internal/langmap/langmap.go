// Package langmap maps file extensions to the language labels used in fenced
// code blocks.
//
// The table is a build-time snapshot of GitHub linguist data with a few
// manual overrides (see Overrides), embedded as languages.yml and decoded
// once on first use. There is no write path at runtime. Regenerate it with
// cmd/ef-langgen.
package langmap

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MoAI522/embed-files/internal/debug"
)

// PlainText is the label used when an extension is missing or unmapped.
const PlainText = "plaintext"

//go:embed languages.yml
var languagesYAML []byte

var table = sync.OnceValue(func() map[string]string {
	m, err := decode(languagesYAML)
	if err != nil {
		// The data is embedded at build time; a decode failure is a build defect.
		panic(fmt.Sprintf("langmap: embedded languages.yml is invalid: %v", err))
	}
	debug.Debug("[langmap] loaded %d extension mapping(s)", len(m))
	return m
})

func decode(data []byte) (map[string]string, error) {
	m := make(map[string]string)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Lookup returns the language for an extension given without its leading
// dot. Matching is case-sensitive.
func Lookup(ext string) (string, bool) {
	lang, ok := table()[ext]
	return lang, ok
}

// Len returns the number of mapped extensions.
func Len() int {
	return len(table())
}

// Extension returns the extension of path without the leading dot, or "" if
// it has none. A leading dot alone (".bashrc") is not an extension.
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx+1:]
}

// Detect returns the language label for path, or PlainText.
func Detect(path string) string {
	ext := Extension(path)
	if ext == "" {
		return PlainText
	}
	if lang, ok := Lookup(ext); ok {
		return lang
	}
	return PlainText
}
