package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"todo-app/internal/errors"
	"todo-app/internal/repository/sqlite/migrations"
)

const memoryPath = ":memory:"

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Ping(ctx context.Context) error
	Close() error
}

// Options tunes the connection and per-operation deadlines. Zero timeouts
// leave the caller's context untouched.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	BusyTimeout  time.Duration
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens (creating if needed) the database at dbPath and applies
// pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dataSourceName(dbPath, opts))
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// every connection to :memory: is a separate database
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

func dataSourceName(dbPath string, opts Options) string {
	if dbPath == memoryPath {
		return dbPath
	}
	if opts.BusyTimeout <= 0 {
		return dbPath
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", dbPath, opts.BusyTimeout.Milliseconds())
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database is reachable
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// CreateTask inserts a task and sets its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `INSERT INTO todos (task) VALUES (?)`

	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		id, err = ExecuteWithLastInsertID(ctx, tx, "insert task", query, task.Text)
		return err
	})
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT id, task FROM todos WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", formatID(id), id)
}

// ListTasks retrieves all tasks, most recently created first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT id, task FROM todos ORDER BY id DESC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask replaces the text of an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `UPDATE todos SET task = ? WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return ExecuteWithRowsAffected(ctx, tx, "update task", query, "task", formatID(task.ID), task.Text, task.ID)
	})
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `DELETE FROM todos WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return ExecuteWithRowsAffected(ctx, tx, "delete task", query, "task", formatID(id), id)
	})
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
