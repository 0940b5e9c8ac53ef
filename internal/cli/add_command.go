package cli

import (
	"context"
	"fmt"
	"strings"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute creates a task from the arguments joined by spaces
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.tasks.Create(ctx, strings.Join(args, " "))
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s\n", task.ID, task.Text)
	return nil
}
