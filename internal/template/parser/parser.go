package parser

import (
	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/template/model"
)

// Parser turns prompt template text into a Template.
type Parser interface {
	// Parse splits content into text lines and directives.
	// It never fails: anything that is not a well-formed directive is text.
	Parse(content string) *model.Template
}

// DefaultParser implements Parser interface.
type DefaultParser struct{}

// NewParser creates a new DefaultParser.
func NewParser() Parser {
	return &DefaultParser{}
}

// Parse processes template content line by line.
func (p *DefaultParser) Parse(content string) *model.Template {
	debug.Debug("[parser] Parse: starting with input size=%d bytes", len(content))

	raw := splitLines(content)
	lines := make([]model.TemplateLine, 0, len(raw))
	directives := 0

	for i, line := range raw {
		parsed := parseLine(line)
		if d, ok := parsed.(model.Directive); ok {
			directives++
			debug.Debug("[parser] line %d: %s directive %q", i+1, d.Type(), d.Arg())
		}
		lines = append(lines, parsed)
	}

	debug.Debug("[parser] Parse complete: %d line(s), %d directive(s)", len(lines), directives)
	return model.NewTemplate(lines)
}

// Parse is a convenience wrapper around DefaultParser.
func Parse(content string) *model.Template {
	return NewParser().Parse(content)
}
