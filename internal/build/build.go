// Package build exposes the ef release version. Release builds stamp it with
// ldflags; every other build reports the VERSION file compiled into the binary.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// version is stamped at link time:
//
//	go build -ldflags "-X github.com/MoAI522/embed-files/internal/build.version=0.2.0" ./cmd/ef
var version string

// Version returns the stamped version, or the embedded VERSION file trimmed
// of surrounding whitespace.
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}
