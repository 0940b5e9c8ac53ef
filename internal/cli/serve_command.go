package cli

import (
	"context"

	"todo-app/internal/config"
	"todo-app/internal/web"
)

// ServeCommand runs the web server until the context is cancelled
type ServeCommand struct {
	app    *App
	config *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App, cfg *config.Config) *ServeCommand {
	return &ServeCommand{app: app, config: cfg}
}

// Execute starts the server
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	return web.NewServer(c.config, c.app.tasks).ListenAndServe(ctx)
}
