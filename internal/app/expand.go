package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/langmap"
	"github.com/MoAI522/embed-files/internal/template/eftemplate"
	"github.com/MoAI522/embed-files/internal/template/model"
	"github.com/MoAI522/embed-files/internal/template/parser"
	"github.com/MoAI522/embed-files/internal/template/resolver"
)

// ExpandOptions holds options for expanding a template.
type ExpandOptions struct {
	// TemplatePath is the template file to expand.
	TemplatePath string
	// Output receives the expanded document (os.Stdout when nil).
	Output io.Writer
	// FormatFileName is the name of the format file to look for
	// (eftemplate.FileName when empty).
	FormatFileName string
	// FormatCacheSize bounds the per-directory format cache.
	FormatCacheSize int
	// PerFileFormat renders each file with the format nearest to it instead
	// of the format governing the template.
	PerFileFormat bool
	// RestrictToBaseDir drops glob matches outside the template's directory.
	RestrictToBaseDir bool
	// IgnorePatterns are skipped by both selectors.
	IgnorePatterns []string
	// DryRun lists resolved files instead of writing the document.
	DryRun bool
}

// ExpandResult holds the result of template expansion.
type ExpandResult struct {
	// BaseDir is the directory patterns were resolved against.
	BaseDir string
	// Directives is the number of directives in the template.
	Directives int
	// Files lists every embedded (or, in dry-run mode, resolved) file.
	Files []string
	// BytesWritten is the size of the output.
	BytesWritten int
	// Warnings are the non-fatal problems found during the run.
	Warnings []model.Warning
}

// Expand reads the template at opts.TemplatePath, replaces each directive
// with the rendered contents of the files it selects and writes the document
// to opts.Output.
//
// The returned result is never nil: on error it still carries the warnings
// gathered before the failure. Nothing is written unless every directive
// resolves.
func Expand(ctx context.Context, opts ExpandOptions) (*ExpandResult, error) {
	debug.DebugSection("[app] Expand workflow start")
	debug.DebugValue("[app] Template path", opts.TemplatePath)
	debug.DebugValue("[app] Per-file format", opts.PerFileFormat)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	result := &ExpandResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	absPath, err := filepath.Abs(opts.TemplatePath)
	if err != nil {
		return result, NewTemplateReadError("failed to resolve template path", err)
	}

	content, err := readTemplate(absPath)
	if err != nil {
		return result, err
	}

	tmpl := parser.Parse(content)
	result.Directives = len(tmpl.Directives())
	debug.Debug("[app] Parsed %d line(s), %d directive(s)", tmpl.Len(), result.Directives)

	res, err := resolver.New(filepath.Dir(absPath), resolver.Options{
		RestrictToBaseDir: opts.RestrictToBaseDir,
		IgnorePatterns:    opts.IgnorePatterns,
	})
	if err != nil {
		return result, NewResolveError("failed to initialize resolver", err)
	}
	result.BaseDir = res.BaseDir()

	loader, err := eftemplate.NewLoader(opts.FormatFileName, opts.FormatCacheSize)
	if err != nil {
		return result, NewFormatLoadError("failed to create format loader", err)
	}

	e := &expander{
		opts:     opts,
		resolver: res,
		loader:   loader,
		result:   result,
	}
	if !opts.DryRun && !opts.PerFileFormat {
		e.format, err = loader.Load(absPath)
		if err != nil {
			return result, NewFormatLoadError("failed to load output format", err)
		}
		debug.DebugValue("[app] Output format", formatSource(e.format))
	}

	doc, err := e.expand(tmpl)
	result.Warnings = e.takeWarnings().Items()
	if err != nil {
		return result, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	n, err := io.WriteString(out, doc)
	result.BytesWritten = n
	if err != nil {
		return result, NewOutputWriteError("failed to write output", err)
	}

	debug.Debug("[app] Expand complete: %d file(s), %d byte(s), %d warning(s)",
		len(result.Files), result.BytesWritten, len(result.Warnings))
	return result, nil
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewTemplateReadError(fmt.Sprintf("failed to read template %s", path), err)
	}
	if !utf8.Valid(data) {
		return "", NewTemplateInvalidError(fmt.Sprintf("template %s is not valid UTF-8", path), nil)
	}
	return string(data), nil
}

func formatSource(f *eftemplate.Format) string {
	if f.IsDefault() {
		return "(built-in default)"
	}
	return f.Source()
}

// expander carries the state of one Expand run.
type expander struct {
	opts     ExpandOptions
	resolver *resolver.Resolver
	loader   *eftemplate.Loader
	format   *eftemplate.Format
	result   *ExpandResult
	// warnings holds per-file problems; resolver warnings are merged in once
	// at the end.
	warnings model.Warnings
}

func (e *expander) expand(tmpl *model.Template) (string, error) {
	var sb strings.Builder

	for _, line := range tmpl.Lines() {
		switch l := line.(type) {
		case model.Text:
			if !e.opts.DryRun {
				sb.WriteString(l.Content)
				sb.WriteByte('\n')
			}
		case model.Directive:
			debug.Debug("[app] Resolving #%s %s", l.Type().Keyword(), l.Arg())
			paths, err := e.resolver.Resolve(l)
			if err != nil {
				return "", NewResolveError(fmt.Sprintf("failed to resolve #%s %s", l.Type().Keyword(), l.Arg()), err)
			}
			for _, path := range paths {
				if err := e.embed(&sb, path); err != nil {
					return "", err
				}
			}
		}
	}

	return sb.String(), nil
}

// embed appends one resolved file. Unreadable files become warnings.
func (e *expander) embed(sb *strings.Builder, path string) error {
	if e.opts.DryRun {
		fmt.Fprintf(sb, "%s\t%s\n", eftemplate.DisplayPath(path), langmap.Detect(path))
		e.result.Files = append(e.result.Files, path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		debug.Debug("[app] Skipping unreadable file %s: %v", path, err)
		e.warnings.Add(model.FileNotFoundBecause(eftemplate.DisplayPath(path), err))
		return nil
	}
	if !utf8.Valid(data) {
		debug.Debug("[app] Skipping non-UTF-8 file %s", path)
		e.warnings.Add(model.FileNotFoundBecause(eftemplate.DisplayPath(path), fmt.Errorf("not valid UTF-8")))
		return nil
	}

	format := e.format
	if format == nil {
		format, err = e.loader.Load(path)
		if err != nil {
			return NewFormatLoadError("failed to load output format", err)
		}
	}

	// A rendered block always ends on a line boundary so the next template
	// line starts on a fresh line.
	rendered := format.Render(path, string(data))
	sb.WriteString(rendered)
	if rendered != "" && !strings.HasSuffix(rendered, "\n") {
		sb.WriteByte('\n')
	}
	e.result.Files = append(e.result.Files, path)
	return nil
}

func (e *expander) takeWarnings() model.Warnings {
	all := e.resolver.TakeWarnings()
	all.Extend(e.warnings.Take())
	return all
}
