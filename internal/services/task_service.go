package services

import (
	"context"
	stderrors "errors"
	"strconv"

	"todo-app/internal/config"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/logging"
	"todo-app/internal/repository/sqlite"
	"todo-app/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a TaskService that validates text against the
// configured limits
func NewTaskService(repo sqlite.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(cfg),
	}
}

// validateText trims and validates task text, wrapping failures as validation errors
func (t *taskServiceImpl) validateText(text string) (string, error) {
	normalized, err := t.taskValidator.GetValidText(text)
	if err != nil {
		var ve *validation.ValidationError
		if stderrors.As(err, &ve) {
			return "", errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
		}
		return "", errors.NewValidationError("invalid task", err)
	}
	return normalized, nil
}

// Create validates the text and inserts a new task
func (t *taskServiceImpl) Create(ctx context.Context, text string) (task *domain.Task, err error) {
	defer func() { observe("create", err) }()

	normalized, err := t.validateText(text)
	if err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{Text: normalized}
	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("task created", "id", dbTask.ID)

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListAll returns every task, most recently created first
func (t *taskServiceImpl) ListAll(ctx context.Context) (tasks []domain.Task, err error) {
	defer func() { observe("list", err) }()

	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetByID retrieves a task or fails with a not found error
func (t *taskServiceImpl) GetByID(ctx context.Context, id int64) (task *domain.Task, err error) {
	defer func() { observe("get", err) }()

	return t.get(ctx, id)
}

func (t *taskServiceImpl) get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewNotFoundError("task", formatID(id))
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// Update replaces the text of an existing task. A missing task is reported
// before invalid text.
func (t *taskServiceImpl) Update(ctx context.Context, id int64, text string) (task *domain.Task, err error) {
	defer func() { observe("update", err) }()

	existing, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}

	normalized, err := t.validateText(text)
	if err != nil {
		return nil, err
	}

	existing.Text = normalized
	dbTask := t.mapper.Task.ToDatabase(*existing)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("task updated", "id", id)

	return existing, nil
}

// Delete removes an existing task
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete", err) }()

	if _, err := t.get(ctx, id); err != nil {
		return err
	}

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("task deleted", "id", id)
	return nil
}

// Ping checks storage connectivity
func (t *taskServiceImpl) Ping(ctx context.Context) error {
	return t.repo.Ping(ctx)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
