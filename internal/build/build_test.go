package build

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	v := Version()
	if v == "" {
		t.Fatal("Version() returned an empty string")
	}
	if v != strings.TrimSpace(v) {
		t.Errorf("Version() = %q, want no surrounding whitespace", v)
	}
}

func TestVersion_Override(t *testing.T) {
	old := version
	version = "9.9.9"
	t.Cleanup(func() { version = old })

	if got := Version(); got != "9.9.9" {
		t.Errorf("Version() = %q, want %q", got, "9.9.9")
	}
}
