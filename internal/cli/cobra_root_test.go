package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command against a database in dir
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.envFiles = nil
	root.SetArgs(append([]string{"--db-dir", dir}, args...))
	err := root.Execute(context.Background())
	return out.String(), err
}

func TestRootCommand_AddListDelete(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")

	out, err = run(t, dir, "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task 1: Buy milk")

	_, err = run(t, dir, "add", "Walk dog")
	require.NoError(t, err)

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Walk dog"), strings.Index(out, "Buy milk"))

	out, err = run(t, dir, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task 1")

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Buy milk")

	_, err = os.Stat(filepath.Join(dir, "todo.db"))
	assert.NoError(t, err)
}

func TestRootCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "dup")
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		contains string
		exit     int
	}{
		{"empty task", []string{"add", "   "}, "Task cannot be empty", ExitInvalid},
		{"duplicate task", []string{"add", "dup"}, "failed to add task: Error: ", ExitStorage},
		{"unknown id", []string{"delete", "99"}, "task not found: 99", ExitNotFound},
		{"non-numeric id", []string{"delete", "abc"}, `invalid task id "abc"`, ExitInvalid},
		{"missing id", []string{"delete"}, "accepts 1 arg", ExitFailure},
		{"bad log level", []string{"list", "--log-level", "loud"}, "logging.level", ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, dir, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.exit, NewErrorHandler().ExitCode(err))
		})
	}
}

func TestRootCommand_FlagsOverrideEnvironment(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv("TODO_DB_DIR", envDir)

	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.envFiles = nil
	root.SetArgs([]string{"--db-dir", flagDir, "--db-filename", "flags.db", "--addr", ":6000", "add", "x"})
	require.NoError(t, root.Execute(context.Background()))

	cfg := root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, flagDir, cfg.Database.Dir)
	assert.Equal(t, ":6000", cfg.Server.Addr)

	_, err := os.Stat(filepath.Join(flagDir, "flags.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(envDir, "flags.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database:\n  filename: fromfile.db\n"), 0600))

	_, err := run(t, dir, "--config", cfgPath, "add", "from file")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "fromfile.db"))
	assert.NoError(t, err)
}

func TestRootCommand_ServeStopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.envFiles = nil
	root.SetArgs([]string{"serve", "--db-dir", t.TempDir(), "--addr", "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.Execute(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestRootCommand_TestingEnvironmentUsesMemory(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--env", "testing", "add", "ephemeral")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task")

	_, err = os.Stat(filepath.Join(dir, "todo.db"))
	assert.True(t, os.IsNotExist(err))
}
