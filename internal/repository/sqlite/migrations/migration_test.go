package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, "create_todos", first.Name)
	assert.Contains(t, first.Up, "CREATE TABLE IF NOT EXISTS todos")
	assert.Contains(t, first.Down, "DROP TABLE IF EXISTS todos")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.Exec(`INSERT INTO todos (task) VALUES (?)`, "Learn HTMX")
	require.NoError(t, err)

	// task column is unique
	_, err = db.Exec(`INSERT INTO todos (task) VALUES (?)`, "Learn HTMX")
	assert.Error(t, err)

	// task column is not null
	_, err = db.Exec(`INSERT INTO todos (task) VALUES (NULL)`)
	assert.Error(t, err)

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.True(t, applied[1])
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	_, err := db.Exec(`INSERT INTO todos (task) VALUES (?)`, "keep me")
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM todos`).Scan(&count))
	assert.Equal(t, 1, count)

	var versions int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&versions))
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), versions)
}

func TestRunMigrations_AutoincrementNeverReusesIDs(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))

	res, err := db.Exec(`INSERT INTO todos (task) VALUES ('a')`)
	require.NoError(t, err)
	firstID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM todos WHERE id = ?`, firstID)
	require.NoError(t, err)

	res, err = db.Exec(`INSERT INTO todos (task) VALUES ('b')`)
	require.NoError(t, err)
	secondID, err := res.LastInsertId()
	require.NoError(t, err)

	assert.Greater(t, secondID, firstID)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		expected int
	}{
		{"000001_create_todos.up.sql", 1},
		{"000012_add_index.up.sql", 12},
		{"readme.txt", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
