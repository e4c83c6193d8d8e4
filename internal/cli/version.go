package cli

import (
	"fmt"
	"runtime"

	"github.com/MoAI522/embed-files/internal/build"
)

// Version information. main overrides these from build-time variables.
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func currentVersion() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		Commit:    GitCommit,
		BuildDate: BuildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// versionTemplate is the cobra template used for --version.
func versionTemplate() string {
	info := currentVersion()
	return fmt.Sprintf("ef version {{.Version}}\nBuilt with: %s\nCommit: %s\nBuild date: %s\nOS/Arch: %s/%s\n",
		info.GoVersion, info.Commit, info.BuildDate, info.OS, info.Arch)
}
