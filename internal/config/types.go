package config

// Storage selects and locates the progress backend.
type Storage struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path,omitempty"`
}

// Logging configures the process logger.
type Logging struct {
	Level string `yaml:"level"`
}

// Config represents the .onboard/config.yaml file.
type Config struct {
	Storage Storage `yaml:"storage"`
	Logging Logging `yaml:"logging"`
}

// Storage backend values.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Log level values accepted in logging.level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)
