package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(cfg *Config)
		wantErr   bool
		wantField string
	}{
		{
			name:   "defaults",
			modify: func(cfg *Config) {},
		},
		{
			name: "custom file name",
			modify: func(cfg *Config) {
				cfg.Format.FileName = ".llm-format"
			},
		},
		{
			name: "empty file name",
			modify: func(cfg *Config) {
				cfg.Format.FileName = "  "
			},
			wantErr:   true,
			wantField: "format.file_name",
		},
		{
			name: "file name with separator",
			modify: func(cfg *Config) {
				cfg.Format.FileName = "conf/.eftemplate"
			},
			wantErr:   true,
			wantField: "format.file_name",
		},
		{
			name: "dot file name",
			modify: func(cfg *Config) {
				cfg.Format.FileName = ".."
			},
			wantErr:   true,
			wantField: "format.file_name",
		},
		{
			name: "zero cache size",
			modify: func(cfg *Config) {
				cfg.Format.CacheSize = 0
			},
			wantErr:   true,
			wantField: "format.cache_size",
		},
		{
			name: "valid ignore patterns",
			modify: func(cfg *Config) {
				cfg.Resolver.IgnorePatterns = []string{"*.lock", "**/node_modules/**", "{a,b}/*.txt"}
			},
		},
		{
			name: "invalid ignore pattern",
			modify: func(cfg *Config) {
				cfg.Resolver.IgnorePatterns = []string{"*.lock", "[unclosed"}
			},
			wantErr:   true,
			wantField: "resolver.ignore_patterns[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := NewLoader().Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cfgErr.Type != ConfigValidationFailed {
				t.Errorf("Expected ConfigValidationFailed, got %v", cfgErr.Type)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Expected field %s, got %s", tt.wantField, cfgErr.Field)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		contains []string
	}{
		{
			name:     "basic error",
			err:      NewConfigError(ConfigInvalid, "config.yaml", "bad"),
			contains: []string{"config.yaml", "bad"},
		},
		{
			name:     "error with field",
			err:      NewConfigErrorWithField(ConfigValidationFailed, "config.yaml", "format.cache_size", "too small"),
			contains: []string{"config.yaml", "format.cache_size", "too small"},
		},
		{
			name:     "error with cause",
			err:      NewConfigErrorWithCause(ConfigNotFound, "config.yaml", "missing", errors.New("no such file")),
			contains: []string{"missing", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error message %q should contain %q", msg, s)
				}
			}
		})
	}

	cause := errors.New("root cause")
	wrapped := NewConfigErrorWithCause(ConfigInvalid, "x", "y", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}

	noFile := NewConfigErrorWithField(ConfigValidationFailed, "", "format.file_name", "empty")
	if got, want := noFile.Error(), "configuration error [field: format.file_name]: empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsNotFound(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewConfigError(ConfigNotFound, "a.yaml", "missing"))
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(NewConfigError(ConfigInvalid, "a.yaml", "bad")) {
		t.Error("IsNotFound should be false for ConfigInvalid")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("IsNotFound should be false for unrelated errors")
	}
	if ConfigValidationFailed.String() != "validation failed" {
		t.Errorf("unexpected String(): %s", ConfigValidationFailed.String())
	}
}
