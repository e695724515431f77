package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	apperrors "tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/render"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	config *config.Config

	configFile string
	color      render.ColorMode
	wrap       render.WrapMode
	errors     *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		in:     in,
		out:    out,
		errOut: errOut,
		color:  render.ColorAuto,
		wrap:   render.WrapChar,
		errors: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "tasklist",
		Short: "An interactive task list",
		Long: `Tasklist keeps an ordered list of tasks, each with a date, a time,
a priority and one or more lines of text.

Run without arguments to start an interactive session. The session reads
actions from standard input:

  add      ask for priority, date, time and task lines, then append the task
  print    print the task table
  edit     change the priority, date, time or lines of one task
  delete   remove one task
  end      save the list and exit

The list is loaded once at start and saved once at end.

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  Config file: tasklist.toml in the working directory, or --config

  Environment:
    TASKLIST_BACKEND       Storage backend, json or sqlite (default: json)
    TASKLIST_FILE          JSON task file (default: tasklist.json)
    TASKLIST_DB            SQLite database (default: tasklist.db)
    TASKLIST_COLOR         auto, always or never (default: auto)
    TASKLIST_WRAP          char or word (default: char)
    TASKLIST_TIMEZONE      Zone deciding which day is today (default: UTC)
    TASKLIST_LOG_LEVEL     debug, info, warn or error (default: warn)
    TASKLIST_LOG_FORMAT    text, json or logfmt (default: text)
    TASKLIST_DEBUG         Force debug logging`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runSession(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "Config file (default: ./tasklist.toml if present)")

	// Storage configuration
	flags.String("backend", "", "Storage backend, json or sqlite (overrides TASKLIST_BACKEND)")
	flags.String("file", "", "JSON task file (overrides TASKLIST_FILE)")
	flags.String("db", "", "SQLite database file (overrides TASKLIST_DB)")

	// Display configuration
	flags.Var(&r.color, "color", "Swatch colors (overrides TASKLIST_COLOR)")
	flags.Var(&r.wrap, "wrap", "Task line wrapping (overrides TASKLIST_WRAP)")
	flags.String("timezone", "", "Zone deciding which day is today (overrides TASKLIST_TIMEZONE)")

	// Logging configuration
	flags.String("log-level", "", "Log level on stderr (overrides TASKLIST_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, text, json or logfmt (overrides TASKLIST_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the task table and exit",
		Long:  "Load the task list, print it as a table and exit without saving.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.printOnce(cmd.Context())
		},
	}

	r.cmd.AddCommand(printCmd)
}

// loadConfig resolves configuration and installs the logger
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	loader.File = r.configFile

	cfg, err := loader.LoadWithOverrides(r.overridesFromFlags(cmd))
	if err != nil {
		return r.errors.Handle("load configuration", configError(err))
	}
	r.config = cfg

	logging.SetDefault(logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: r.errOut,
	}))
	logging.Debugf("storage backend %s at %s", cfg.Storage.Backend, cfg.StoragePath())
	return nil
}

// overridesFromFlags collects the flags set on the command line
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	overrides.Backend = str("backend")
	overrides.Path = str("file")
	overrides.SQLitePath = str("db")
	overrides.Timezone = str("timezone")
	overrides.LogLevel = str("log-level")
	overrides.LogFormat = str("log-format")

	if flags.Changed("color") {
		overrides.Color = &r.color
	}
	if flags.Changed("wrap") {
		overrides.Wrap = &r.wrap
	}
	return overrides
}

// configError reports a rejected setting as a configuration error
func configError(err error) error {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.NewConfigError(cfgErr.Field, cfgErr)
	}
	return err
}

func (r *RootCommand) newApp(ctx context.Context) (*App, func(), error) {
	repo, err := config.CreateRepository(ctx, r.config)
	if err != nil {
		return nil, nil, r.errors.Handle("open task list", configError(err))
	}
	loc, err := r.config.Location()
	if err != nil {
		repo.Close()
		return nil, nil, r.errors.Handle("resolve timezone", err)
	}

	app := NewApp(AppOptions{
		Repository: repo,
		In:         r.in,
		Out:        r.out,
		Color:      r.config.Display.Color,
		Wrap:       r.config.Display.Wrap,
		Location:   loc,
	})
	if err := app.Load(ctx); err != nil {
		repo.Close()
		return nil, nil, r.errors.Handle("load task list", err)
	}

	closeRepo := func() {
		if err := repo.Close(); err != nil {
			logging.Default().Warn("closing storage", "err", err)
		}
	}
	return app, closeRepo, nil
}

func (r *RootCommand) runSession(ctx context.Context) error {
	app, closeRepo, err := r.newApp(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	err = app.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInputClosed):
		return errors.New("input closed before the action was complete, nothing saved")
	case r.errors.IsStorageError(err):
		return r.errors.Handle("save task list", err)
	default:
		return r.errors.Handle("run session", err)
	}
}

func (r *RootCommand) printOnce(ctx context.Context) error {
	app, closeRepo, err := r.newApp(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	return app.Print()
}
