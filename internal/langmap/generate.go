package langmap

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeneratedHeader is written at the top of languages.yml.
const GeneratedHeader = "# Code generated by ef-langgen from github-linguist languages.yml. DO NOT EDIT.\n"

// Overrides correct ambiguous or unhelpful linguist mappings. They win over
// anything derived from the source data.
var Overrides = map[string]string{
	"txt":  "plaintext",
	"tsx":  "tsx",
	"md":   "markdown",
	"json": "json",
	"yml":  "yaml",
	"rs":   "rust",
	"php":  "php",
}

// linguistLanguage is the subset of a linguist languages.yml entry we need.
type linguistLanguage struct {
	Extensions []string `yaml:"extensions"`
}

type claim struct {
	language string
	primary  bool
}

// FromLinguist builds the extension table from linguist languages.yml data.
//
// Language names are lowercased. When several languages list the same
// extension, a language that lists it first (its primary extension) wins;
// remaining ties go to the alphabetically first language name. Overrides are
// applied last.
func FromLinguist(data []byte) (map[string]string, error) {
	var languages map[string]linguistLanguage
	if err := yaml.Unmarshal(data, &languages); err != nil {
		return nil, fmt.Errorf("failed to parse languages.yml: %w", err)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("languages.yml contains no languages")
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)

	claims := make(map[string]claim)
	for _, name := range names {
		label := strings.ToLower(name)
		for i, raw := range languages[name].Extensions {
			ext := strings.TrimPrefix(raw, ".")
			if ext == "" {
				continue
			}
			c := claim{language: label, primary: i == 0}
			existing, ok := claims[ext]
			if !ok || (c.primary && !existing.primary) {
				claims[ext] = c
			}
		}
	}

	table := make(map[string]string, len(claims)+len(Overrides))
	for ext, c := range claims {
		table[ext] = c.language
	}
	for ext, lang := range Overrides {
		table[ext] = lang
	}
	return table, nil
}

// Encode serializes a table as sorted YAML with the generated-file header.
func Encode(table map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(GeneratedHeader)

	// yaml.v3 sorts map keys when encoding.
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(table); err != nil {
		return nil, fmt.Errorf("failed to encode language table: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode language table: %w", err)
	}
	return buf.Bytes(), nil
}
