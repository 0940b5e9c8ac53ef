package cli

import (
	"io"
	"os"

	"todo-app/internal/services"
)

// App bundles what the task commands need to run
type App struct {
	tasks        services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(tasks services.TaskService, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{
		tasks:        tasks,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}
