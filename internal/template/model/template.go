package model

import "slices"

// DirectiveType identifies the type of file-selection directive.
type DirectiveType int

const (
	// DirectiveGlob represents "#ef <pattern>".
	DirectiveGlob DirectiveType = iota
	// DirectiveRegex represents "#efr <pattern>".
	DirectiveRegex
)

// String returns the string representation of the directive type.
func (dt DirectiveType) String() string {
	switch dt {
	case DirectiveGlob:
		return "glob"
	case DirectiveRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Keyword returns the template keyword that introduces the directive.
func (dt DirectiveType) Keyword() string {
	switch dt {
	case DirectiveGlob:
		return "ef"
	case DirectiveRegex:
		return "efr"
	default:
		return ""
	}
}

// TemplateLine is one line of a parsed template: Text, Glob or Regex.
// The interface is sealed; type switches over it are exhaustive with those three cases.
type TemplateLine interface {
	isTemplateLine()
}

// Directive is a TemplateLine that selects files.
type Directive interface {
	TemplateLine
	// Type returns the directive type.
	Type() DirectiveType
	// Arg returns the raw pattern argument.
	Arg() string
}

// Text is a line passed through verbatim, without its line terminator.
type Text struct {
	Content string
}

// Glob selects files with a shell glob pattern.
type Glob struct {
	Pattern string
}

// Regex selects files whose base-relative path matches a regular expression.
type Regex struct {
	Pattern string
}

func (Text) isTemplateLine()  {}
func (Glob) isTemplateLine()  {}
func (Regex) isTemplateLine() {}

func (Glob) Type() DirectiveType { return DirectiveGlob }
func (g Glob) Arg() string       { return g.Pattern }

func (Regex) Type() DirectiveType { return DirectiveRegex }
func (r Regex) Arg() string        { return r.Pattern }

// Template is a parsed prompt template. It is immutable once built.
type Template struct {
	lines []TemplateLine
}

// NewTemplate creates a Template from lines in source order.
func NewTemplate(lines []TemplateLine) *Template {
	return &Template{lines: slices.Clone(lines)}
}

// Lines returns the template lines in source order.
func (t *Template) Lines() []TemplateLine {
	return slices.Clone(t.lines)
}

// Len returns the number of lines.
func (t *Template) Len() int {
	return len(t.lines)
}

// Directives returns only the directive lines, in source order.
func (t *Template) Directives() []Directive {
	var out []Directive
	for _, line := range t.lines {
		if d, ok := line.(Directive); ok {
			out = append(out, d)
		}
	}
	return out
}
