package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TODO_SERVER_ADDR", "127.0.0.1:8080")
	t.Setenv("TODO_DB_DIR", "/tmp/todo-data")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "2s")
	t.Setenv("TODO_DB_DIR_PERMISSIONS", "0700")
	t.Setenv("TODO_VALIDATION_TASK_MAX_LENGTH", "40")
	t.Setenv("TODO_LOG_LEVEL", "debug")
	t.Setenv("TODO_VIEW_OWNER_NAME", "Jakob Vargis")
	t.Setenv("TODO_ENV", "development")

	cfg, err := NewLoader().WithEnvFiles().Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "/tmp/todo-data", cfg.Database.Dir)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, os.FileMode(0700), cfg.Database.DirPermissions.Perm())
	assert.Equal(t, 40, cfg.Validation.TaskMaxLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Jakob Vargis", cfg.View.OwnerName)
	assert.Equal(t, Development, cfg.Environment)

	// untouched values keep their defaults
	assert.Equal(t, "todo.db", cfg.Database.Filename)
	assert.Equal(t, "Todo Tasks", cfg.View.AppName)
}

func TestLoader_FileThenEnvironment(t *testing.T) {
	path := writeFile(t, "todo.yaml", `
server:
  addr: ":9000"
  shutdown_timeout: 3s
database:
  filename: tasks.db
  dir_permissions: "0750"
validation:
  task_max_length: 60
view:
  app_name: My Tasks
`)
	t.Setenv("TODO_VALIDATION_TASK_MAX_LENGTH", "50")

	cfg, err := NewLoader().WithFile(path).WithEnvFiles().Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "tasks.db", cfg.Database.Filename)
	assert.Equal(t, os.FileMode(0750), cfg.Database.DirPermissions.Perm())
	assert.Equal(t, "My Tasks", cfg.View.AppName)
	assert.Equal(t, 50, cfg.Validation.TaskMaxLength, "environment wins over file")
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout, "missing keys keep defaults")
}

func TestLoader_DotEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "TODO_VIEW_APP_NAME=From Dotenv\n")
	t.Setenv("TODO_VIEW_APP_NAME", "")
	os.Unsetenv("TODO_VIEW_APP_NAME")

	cfg, err := NewLoader().WithEnvFiles(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "From Dotenv", cfg.View.AppName)
}

func TestLoader_MissingDotEnvIsIgnored(t *testing.T) {
	_, err := NewLoader().WithEnvFiles(filepath.Join(t.TempDir(), "absent.env")).Load()
	assert.NoError(t, err)
}

func TestLoader_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "TODO_DB_WRITE_TIMEOUT", "soon"},
		{"bad integer", "TODO_VALIDATION_TASK_MAX_LENGTH", "eighty"},
		{"limit too large", "TODO_VALIDATION_TASK_MAX_LENGTH", "200"},
		{"bad permissions", "TODO_DB_DIR_PERMISSIONS", "rwxr-xr-x"},
		{"bad environment", "TODO_ENV", "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewLoader().WithEnvFiles().Load()
			assert.Error(t, err)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().WithFile(filepath.Join(t.TempDir(), "nope.yaml")).WithEnvFiles().Load()
	assert.Error(t, err)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("TODO_SERVER_ADDR", ":7000")

	addr := ":6000"
	dir := t.TempDir()
	level := "error"
	format := "json"
	env := Testing
	timeout := 500 * time.Millisecond

	cfg, err := NewLoader().WithEnvFiles().LoadWithOverrides(&ConfigOverrides{
		Environment:    &env,
		Addr:           &addr,
		DBDir:          &dir,
		DBQueryTimeout: &timeout,
		LogLevel:       &level,
		LogFormat:      &format,
	})
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Server.Addr, "flags win over environment")
	assert.Equal(t, dir, cfg.Database.Dir)
	assert.Equal(t, timeout, cfg.Database.QueryTimeout)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, Testing, cfg.Environment)
}

func TestLoader_OverridesAreValidated(t *testing.T) {
	level := "loud"
	_, err := NewLoader().WithEnvFiles().LoadWithOverrides(&ConfigOverrides{LogLevel: &level})
	assert.Error(t, err)
}
