package model

import (
	"fmt"
	"slices"
)

// WarningType categorizes non-fatal conditions reported after the document.
type WarningType int

const (
	// WarningFileNotFound indicates a pattern matched nothing, a glob
	// expansion failed part way, or a matched file could not be read.
	WarningFileNotFound WarningType = iota
)

// String returns the string representation of the warning type.
func (wt WarningType) String() string {
	switch wt {
	case WarningFileNotFound:
		return "file not found"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition accumulated during a run.
type Warning struct {
	// Type is the warning type.
	Type WarningType
	// Path is the pattern or file path the warning refers to.
	Path string
	// Reason is an optional detail (e.g. the underlying read error).
	Reason string
}

// String renders the warning for the end-of-run report.
func (w Warning) String() string {
	switch w.Type {
	case WarningFileNotFound:
		if w.Reason != "" {
			return fmt.Sprintf("File not found: %s (%s)", w.Path, w.Reason)
		}
		return fmt.Sprintf("File not found: %s", w.Path)
	default:
		return fmt.Sprintf("%s: %s", w.Type, w.Path)
	}
}

// FileNotFound creates a WarningFileNotFound for path.
func FileNotFound(path string) Warning {
	return Warning{Type: WarningFileNotFound, Path: path}
}

// FileNotFoundBecause creates a WarningFileNotFound carrying a reason.
func FileNotFoundBecause(path string, cause error) Warning {
	w := FileNotFound(path)
	if cause != nil {
		w.Reason = cause.Error()
	}
	return w
}

// Warnings is an append-only accumulator. The zero value is ready to use.
type Warnings struct {
	items []Warning
}

// Add appends a warning.
func (w *Warnings) Add(warning Warning) {
	w.items = append(w.items, warning)
}

// Extend appends every warning of other, preserving order.
func (w *Warnings) Extend(other Warnings) {
	w.items = append(w.items, other.items...)
}

// Items returns the warnings in the order they were added.
func (w Warnings) Items() []Warning {
	return slices.Clone(w.items)
}

// Len returns the number of warnings.
func (w Warnings) Len() int {
	return len(w.items)
}

// Empty reports whether there are no warnings.
func (w Warnings) Empty() bool {
	return len(w.items) == 0
}

// Take returns the accumulated warnings and resets the accumulator.
func (w *Warnings) Take() Warnings {
	taken := Warnings{items: w.items}
	w.items = nil
	return taken
}
