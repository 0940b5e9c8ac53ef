package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-app/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the task whose id is the single argument
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete requires exactly one task id")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.app.errorHandler.Handle("delete task", errors.NewValidationError(fmt.Sprintf("invalid task id %q", args[0]), err))
	}

	if err := c.app.tasks.Delete(ctx, id); err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.app.out, "Deleted task %d\n", id)
	return nil
}
