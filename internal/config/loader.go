package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirName is the directory, relative to the base path, that holds config
// and progress data.
const DirName = ".onboard"

// Default values for Config.
const (
	DefaultBackend    = BackendFile
	DefaultFilePath   = "progress.yaml"
	DefaultSQLitePath = "progress.db"
	DefaultLogLevel   = LevelWarn
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{Backend: DefaultBackend},
		Logging: Logging{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Dir returns the .onboard directory under basePath.
func Dir(basePath string) string {
	return filepath.Join(basePath, DirName)
}

// Path returns the config file location under basePath.
func Path(basePath string) string {
	return filepath.Join(Dir(basePath), "config.yaml")
}

// LoadConfig reads and parses .onboard/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	data, err := os.ReadFile(Path(basePath))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig writes cfg to .onboard/config.yaml, creating the directory.
func SaveConfig(basePath string, cfg *Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	dir := Dir(basePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(basePath), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("must be one of %s, %s, %s", BackendFile, BackendSQLite, BackendMemory),
		}
	}

	if cfg.Storage.Backend == BackendMemory && cfg.Storage.Path != "" {
		return ValidationError{Field: "storage.path", Message: "not used by the memory backend"}
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case LevelDebug, LevelInfo, LevelWarn, "warning", LevelError:
	default:
		return ValidationError{Field: "logging.level", Message: "must be one of debug, info, warn, error"}
	}

	return nil
}

// StoragePath resolves the progress file location for the configured
// backend. Relative paths are taken relative to the .onboard directory.
// The memory backend has no path.
func (c *Config) StoragePath(basePath string) string {
	path := c.Storage.Path
	if path == "" {
		switch c.Storage.Backend {
		case BackendSQLite:
			path = DefaultSQLitePath
		case BackendMemory:
			return ""
		default:
			path = DefaultFilePath
		}
	}

	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(Dir(basePath), path)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
