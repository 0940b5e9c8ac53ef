package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"todo-app/internal/repository/sqlite"
)

// MemoryDatabase is the filename that selects an in-memory database
const MemoryDatabase = ":memory:"

// MaxTaskLength is the width of the task column; configured limits may only narrow it
const MaxTaskLength = 80

// Config holds all configuration options for the todo application
type Config struct {
	Environment Environment      `yaml:"environment" env:"TODO_ENV"`
	Server      ServerConfig     `yaml:"server"`
	Database    DatabaseConfig   `yaml:"database"`
	Validation  ValidationConfig `yaml:"validation"`
	Logging     LoggingConfig    `yaml:"logging"`
	View        ViewConfig       `yaml:"view"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"TODO_SERVER_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"TODO_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TODO_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" env:"TODO_DB_DIR"`
	Filename       string        `yaml:"filename" env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"TODO_DB_WRITE_TIMEOUT"`
	BusyTimeout    time.Duration `yaml:"busy_timeout" env:"TODO_DB_BUSY_TIMEOUT"`
	DirPermissions FileMode      `yaml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskMaxLength int `yaml:"task_max_length" env:"TODO_VALIDATION_TASK_MAX_LENGTH"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level" env:"TODO_LOG_LEVEL"`
	Format string `yaml:"format" env:"TODO_LOG_FORMAT"`
}

// ViewConfig holds values rendered on the full page
type ViewConfig struct {
	AppName   string `yaml:"app_name" env:"TODO_VIEW_APP_NAME"`
	OwnerName string `yaml:"owner_name" env:"TODO_VIEW_OWNER_NAME"`
}

// FileMode is an octal permission value such as 0755, accepted from YAML and
// environment variables as text.
type FileMode uint32

// UnmarshalText parses an octal permission string
func (m *FileMode) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "0o")
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", string(text), err)
	}
	*m = FileMode(v)
	return nil
}

// Perm returns the mode as an os.FileMode
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Environment: GetEnvironment(),
		Server: ServerConfig{
			Addr:            ":5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:            ".",
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			BusyTimeout:    5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskMaxLength: MaxTaskLength,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		View: ViewConfig{
			AppName: "Todo Tasks",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == MemoryDatabase {
		return MemoryDatabase
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// RepositoryOptions returns the storage options derived from the database configuration
func (c *Config) RepositoryOptions() sqlite.Options {
	return sqlite.Options{
		QueryTimeout: c.Database.QueryTimeout,
		WriteTimeout: c.Database.WriteTimeout,
		BusyTimeout:  c.Database.BusyTimeout,
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if !c.Environment.IsValid() {
		return &ConfigError{Field: "environment", Message: fmt.Sprintf("unknown environment %q", c.Environment)}
	}

	// Validate server configuration
	if strings.TrimSpace(c.Server.Addr) == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate database configuration
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.Dir == "" && c.Database.Filename != MemoryDatabase {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	// Validate validation configuration
	if c.Validation.TaskMaxLength < 1 || c.Validation.TaskMaxLength > MaxTaskLength {
		return &ConfigError{Field: "validation.task_max_length", Message: fmt.Sprintf("task maximum length must be between 1 and %d", MaxTaskLength)}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown log level %q", c.Logging.Level)}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown log format %q", c.Logging.Format)}
	}

	if strings.TrimSpace(c.View.AppName) == "" {
		return &ConfigError{Field: "view.app_name", Message: "application name cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
