package config

// Config represents the global ef configuration.
type Config struct {
	// Debug enables debug logging on stderr.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// Output configuration for stderr reporting.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	// Format configuration for output format discovery.
	Format FormatConfig `mapstructure:"format" yaml:"format"`
	// Resolver configuration for directive resolution.
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored warnings and errors when stderr is a terminal.
	Color bool `mapstructure:"color" yaml:"color"`
	// Quiet suppresses warnings on stderr. Errors are always printed.
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
}

// FormatConfig represents output format settings.
type FormatConfig struct {
	// FileName is the name of the directory-local format file.
	FileName string `mapstructure:"file_name" yaml:"file_name"`
	// PerFile looks up the format nearest each matched file instead of
	// using the template's format for every file.
	PerFile bool `mapstructure:"per_file" yaml:"per_file"`
	// CacheSize is the number of directories whose format lookup is cached.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size"`
}

// ResolverConfig represents path resolution settings.
type ResolverConfig struct {
	// RestrictToBaseDir drops glob matches outside the template's directory.
	RestrictToBaseDir bool `mapstructure:"restrict_to_base_dir" yaml:"restrict_to_base_dir"`
	// IgnorePatterns are doublestar patterns relative to the template's
	// directory; matching files are skipped.
	IgnorePatterns []string `mapstructure:"ignore_patterns" yaml:"ignore_patterns"`
}
