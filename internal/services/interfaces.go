package services

import (
	"context"

	"todo-app/internal/domain"
)

// TaskService defines the interface for task operations used by the web
// handlers and the command line.
type TaskService interface {
	// Task CRUD operations
	Create(ctx context.Context, text string) (*domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, id int64, text string) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the underlying storage is reachable
	Ping(ctx context.Context) error
}
