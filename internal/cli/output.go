package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/MoAI522/embed-files/internal/template/model"
)

// reporter prints errors and warnings to stderr. The expanded document
// never goes through it.
type reporter struct {
	w     io.Writer
	quiet bool
	debug bool

	errColor  *color.Color
	warnColor *color.Color
	dimColor  *color.Color
}

func newReporter(w io.Writer, useColor, quiet, debug bool) *reporter {
	r := &reporter{
		w:         w,
		quiet:     quiet,
		debug:     debug,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		dimColor:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.errColor, r.warnColor, r.dimColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError prints err and, in debug mode, every wrapped cause.
func (r *reporter) printError(err error) {
	r.errColor.Fprint(r.w, "Error:")
	fmt.Fprintf(r.w, " %v\n", err)

	if !r.debug {
		return
	}
	causes := causeChain(err)
	if len(causes) == 0 {
		return
	}
	r.dimColor.Fprintln(r.w, "Caused by:")
	for i, cause := range causes {
		r.dimColor.Fprintf(r.w, "  %d: %v\n", i, cause)
	}
}

// printWarnings prints each warning on its own line.
func (r *reporter) printWarnings(warnings []model.Warning) {
	if r.quiet {
		return
	}
	for _, w := range warnings {
		r.warnColor.Fprint(r.w, "Warning:")
		fmt.Fprintf(r.w, " %s\n", w)
	}
}

// causeChain lists the errors wrapped by err, outermost first.
func causeChain(err error) []error {
	var chain []error
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		chain = append(chain, cause)
	}
	return chain
}
