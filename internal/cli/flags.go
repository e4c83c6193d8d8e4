package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig        = "config"
	FlagDryRun        = "dry-run"
	FlagNoColor       = "no-color"
	FlagQuiet         = "quiet"
	FlagDebug         = "debug"
	FlagPerFileFormat = "per-file-format"
	FlagRestrict      = "restrict"

	// Flag descriptions
	DescConfig        = "Path to config file (default $XDG_CONFIG_HOME/ef/config.yaml)"
	DescDryRun        = "List the files each directive selects without embedding them"
	DescNoColor       = "Disable colored output"
	DescQuiet         = "Suppress warnings"
	DescDebug         = "Enable debug logging and show full error chains"
	DescPerFileFormat = "Render each file with the format file nearest to it"
	DescRestrict      = "Only embed files inside the template's directory"
)
