package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every task, newest first
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.tasks.ListAll(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found.")
		return nil
	}

	fmt.Fprintf(c.app.out, "%-6s %s\n", "ID", "TASK")
	for _, task := range tasks {
		fmt.Fprintf(c.app.out, "%-6d %s\n", task.ID, task.Text)
	}
	return nil
}
