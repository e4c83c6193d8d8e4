package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/MoAI522/embed-files/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for YAML configuration files.
// Values from EF_* environment variables override the file.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// newViper returns a viper instance with defaults and env overrides bound.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.quiet", defaults.Output.Quiet)
	v.SetDefault("format.file_name", defaults.Format.FileName)
	v.SetDefault("format.per_file", defaults.Format.PerFile)
	v.SetDefault("format.cache_size", defaults.Format.CacheSize)
	v.SetDefault("resolver.restrict_to_base_dir", defaults.Resolver.RestrictToBaseDir)
	v.SetDefault("resolver.ignore_patterns", defaults.Resolver.IgnorePatterns)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}
	if info.IsDir() {
		return nil, NewConfigError(ConfigInvalid, path, "configuration path is a directory")
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML configuration", err)
	}

	debug.Debug("[config] Loaded configuration from %s", path)
	return decode(v, path)
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
// Environment overrides apply in both cases.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return decode(newViper(), "")
	}

	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return decode(newViper(), path)
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return Validate(config)
}

func decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}
	if cfg.Resolver.IgnorePatterns == nil {
		cfg.Resolver.IgnorePatterns = []string{}
	}
	return &cfg, nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
