package main

import (
	"github.com/MoAI522/embed-files/internal/cli"
)

// Version information (set via ldflags during build). An empty version falls
// back to the embedded VERSION file.
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version info from build-time variables
	if version != "" {
		cli.Version = version
	}
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate

	// Execute the root command
	cli.Execute()
}
