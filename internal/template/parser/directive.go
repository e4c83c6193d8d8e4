package parser

import (
	"strings"

	"github.com/MoAI522/embed-files/internal/template/model"
)

// directivePrefix marks a line as a directive candidate. Only the first
// character of a line is inspected; "#ef" in the middle of a line is text.
const directivePrefix = "#"

// parseLine classifies a single line (without its terminator).
//
// The remainder after "#" is split on whitespace. The first token is the
// keyword and the rest are rejoined with single spaces to form the pattern,
// so runs of whitespace inside a pattern collapse to one space and a pattern
// cannot carry leading or trailing spaces. There is no quoting syntax.
func parseLine(line string) model.TemplateLine {
	rest, ok := strings.CutPrefix(line, directivePrefix)
	if !ok {
		return model.Text{Content: line}
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		// "#" alone or "#" followed only by whitespace
		return model.Text{Content: line}
	}

	arg := strings.Join(fields[1:], " ")
	if arg == "" {
		// A bare "#ef" must not expand to anything.
		return model.Text{Content: line}
	}

	if d, ok := newDirective(fields[0], arg); ok {
		return d
	}
	return model.Text{Content: line}
}

// newDirective maps a keyword to its directive type.
func newDirective(keyword, arg string) (model.Directive, bool) {
	switch keyword {
	case model.DirectiveGlob.Keyword():
		return model.Glob{Pattern: arg}, true
	case model.DirectiveRegex.Keyword():
		return model.Regex{Pattern: arg}, true
	default:
		return nil, false
	}
}

// splitLines splits content into lines the way a line-oriented reader does:
// "\n" terminates a line, a trailing "\r" is dropped, and a final terminator
// does not produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
