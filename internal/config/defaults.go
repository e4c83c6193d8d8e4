package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the directory name used under the user config directory.
	AppName = "ef"
	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. EF_OUTPUT_QUIET.
	EnvPrefix = "EF"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
		Format: FormatConfig{
			FileName:  ".eftemplate",
			PerFile:   false,
			CacheSize: 128,
		},
		Resolver: ResolverConfig{
			RestrictToBaseDir: false,
			IgnorePatterns:    []string{},
		},
	}
}

// DefaultConfigPath returns the default configuration file path:
// $XDG_CONFIG_HOME/ef/config.yaml, or ~/.config/ef/config.yaml.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, ConfigFileName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", AppName, ConfigFileName)
}
