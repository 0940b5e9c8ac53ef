package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todo-app/internal/config"
	"todo-app/internal/logging"
	"todo-app/internal/repository/sqlite"
	"todo-app/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	out        io.Writer
	configFile string
	envFiles   []string
	config     *config.Config
	repo       sqlite.Repository
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(out io.Writer) *RootCommand {
	if out == nil {
		out = os.Stdout
	}

	root := &RootCommand{
		out:      out,
		envFiles: []string{config.DefaultEnvFile},
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small task list served over HTTP",
		Long: `todo serves a task list web page with HTMX partial updates and offers
a few maintenance commands against the same database.

EXAMPLES:
  todo                                     # Serve on :5000
  todo serve --addr 127.0.0.1:8080         # Serve on another address
  todo add "Buy milk"                      # Add a task
  todo list                                # List tasks, newest first
  todo delete 3                            # Delete task 3

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables (.env included) > config file > defaults

    TODO_SERVER_ADDR                       Listen address (default: :5000)
    TODO_DB_DIR                            Database directory (default: .)
    TODO_DB_FILENAME                       Database filename (default: todo.db)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)
    TODO_VALIDATION_TASK_MAX_LENGTH        Maximum task length (default: 80)
    TODO_LOG_LEVEL                         debug, info, warn or error (default: info)
    TODO_LOG_FORMAT                        text or json (default: text)
    TODO_VIEW_APP_NAME                     Page title (default: Todo Tasks)
    TODO_VIEW_OWNER_NAME                   Owner shown under the title
    TODO_ENV                               development, testing or production`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runServe(cmd.Context(), args)
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetArgs overrides the command line arguments, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and releases the database afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

// Config returns the configuration loaded for the running command
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "YAML configuration file")
	flags.String("env", "", "Environment: development, testing or production (overrides TODO_ENV)")

	// Server configuration
	flags.String("addr", "", "Listen address (overrides TODO_SERVER_ADDR)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
	flags.String("log-format", "", "Log format (overrides TODO_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list over HTTP",
		Long:  "Serve the task list until interrupted with SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runServe(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp()
			if err != nil {
				return err
			}
			return NewListCommand(app).Execute(cmd.Context(), args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Long: `Add a task. Arguments are joined with spaces.

Example:
  todo add Buy milk`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp()
			if err != nil {
				return err
			}
			return NewAddCommand(app).Execute(cmd.Context(), args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task by id",
		Long:  "Delete a task by id. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp()
			if err != nil {
				return err
			}
			return NewDeleteCommand(app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(serveCmd, listCmd, addCmd, deleteCmd)
}

func (r *RootCommand) runServe(ctx context.Context, args []string) error {
	app, err := r.newApp()
	if err != nil {
		return err
	}
	return NewServeCommand(app, r.config).Execute(ctx, args)
}

// loadConfig applies the configuration cascade and initializes logging
func (r *RootCommand) loadConfig() error {
	loader := config.NewLoader().WithEnvFiles(r.envFiles...)
	if r.configFile != "" {
		loader = loader.WithFile(r.configFile)
	}

	cfg, err := loader.LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}
	r.config = cfg

	logging.InitWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	logging.Debugf("configuration loaded: env=%s db=%s", cfg.Environment, cfg.GetDatabasePath())
	return nil
}

// overridesFromFlags collects the flags set explicitly on the command line
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("env") {
		v, _ := flags.GetString("env")
		env := config.Environment(v)
		overrides.Environment = &env
	}
	if flags.Changed("addr") {
		v, _ := flags.GetString("addr")
		overrides.Addr = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		overrides.LogFormat = &v
	}

	return overrides
}

// newApp opens the repository for the loaded configuration
func (r *RootCommand) newApp() (*App, error) {
	repo, err := config.NewRepositoryFactory(r.config).CreateRepository()
	if err != nil {
		return nil, err
	}
	r.repo = repo

	return NewApp(services.NewTaskService(repo, r.config), r.out), nil
}

func (r *RootCommand) close() {
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			logging.Error("failed to close database", "error", err)
		}
		r.repo = nil
	}
}
