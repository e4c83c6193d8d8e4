package debug

import (
	"bytes"
	"strings"
	"testing"
)

// captureDebug enables plain debug output into a buffer for the duration of the test.
func captureDebug(t *testing.T, enable bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(enable)
	t.Cleanup(func() {
		SetDebug(false)
		SetNoColor(false)
		SetOutput(nil)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := captureDebug(t, true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.Contains(output, "DEBU") {
		t.Errorf("Output should contain debug level, got: %s", output)
	}
	if !strings.Contains(output, "ef") {
		t.Errorf("Output should contain prefix, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Output should not contain ANSI escapes with no-color, got: %q", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := captureDebug(t, false)

	Debug("this should not appear")
	DebugSection("hidden")
	DebugValue("k", "v")

	if buf.Len() != 0 {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	buf := captureDebug(t, true)

	DebugSection("Test Section")

	if !strings.Contains(buf.String(), "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", buf.String())
	}
}

func TestDebugValue(t *testing.T) {
	buf := captureDebug(t, true)

	DebugValue("key", "value")

	if !strings.Contains(buf.String(), "key = value") {
		t.Errorf("Output should contain key=value, got: %s", buf.String())
	}
}

func TestDebugJSON(t *testing.T) {
	buf := captureDebug(t, true)

	testData := map[string]interface{}{
		"foo": "bar",
		"num": 42,
	}
	DebugJSON("testData", testData)

	output := buf.String()
	if !strings.Contains(output, "testData:") {
		t.Errorf("Output should contain key, got: %s", output)
	}
	if !strings.Contains(output, "\"foo\"") {
		t.Errorf("Output should contain JSON data, got: %s", output)
	}
}
