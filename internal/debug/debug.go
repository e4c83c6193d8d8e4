package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger  *log.Logger
	mu      sync.RWMutex
)

func init() {
	logger = newLogger(out, false)
}

// newLogger builds the debug sink. Debug output always goes to stderr (or the
// writer installed by SetOutput) so it never mixes with the expanded document.
func newLogger(w io.Writer, plain bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "ef",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
	})
	if plain {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	logger = newLogger(out, noColor)
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	logger = newLogger(out, noColor)
}

func current() (*log.Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, enabled
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l, on := current()
	if !on {
		return
	}
	l.Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug(fmt.Sprintf("%s = %v", key, value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	l, on := current()
	if !on {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	l.Debug(fmt.Sprintf("%s:\n%s", key, string(jsonBytes)))
}
