package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/render"
	"tasklist/internal/repository"
	"tasklist/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// errSessionEnded stops the action loop after a successful end.
var errSessionEnded = errors.New("session ended")

// AppOptions holds the collaborators of an App.
type AppOptions struct {
	Repository repository.Repository
	In         io.Reader
	Out        io.Writer
	Color      render.ColorMode
	Wrap       render.WrapMode
	Location   *time.Location
}

// App represents one interactive session over a task list
type App struct {
	tasks    services.TaskListService
	console  *Console
	prompt   *Prompter
	renderer *render.Renderer
	registry *CommandRegistry

	actionPrompt string
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(opts AppOptions) *App {
	console := NewConsole(opts.In, opts.Out)
	app := &App{
		tasks:   services.NewTaskListService(opts.Repository),
		console: console,
		prompt:  NewPrompter(console),
		renderer: render.New(opts.Out, render.Options{
			Color:    opts.Color,
			Wrap:     opts.Wrap,
			Location: opts.Location,
			Now:      func() time.Time { return timeNow() },
		}),
	}
	app.registry = NewCommandRegistry(app)
	app.actionPrompt = fmt.Sprintf(msgActionPrompt, strings.Join(app.registry.Names(), ", "))
	return app
}

// Load replaces the task list with the persisted one.
func (a *App) Load(ctx context.Context) error {
	return a.tasks.Load(ctx)
}

// Save writes the whole task list through the repository.
func (a *App) Save(ctx context.Context) error {
	return a.tasks.Save(ctx)
}

// Print renders the task list once.
func (a *App) Print() error {
	return a.renderer.Print(a.tasks.List())
}

// Run reads actions until end or closed input. Closed input at the action
// prompt ends the session like end does; closed input inside an action
// returns ErrInputClosed and nothing is saved.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := a.console.Ask(a.actionPrompt)
		if errors.Is(err, ErrInputClosed) {
			logging.Debugln("input closed at the action prompt, ending session")
			action = "end"
		} else if err != nil {
			return err
		}

		err = a.registry.Execute(ctx, strings.TrimSpace(action))
		switch {
		case err == nil:
		case errors.Is(err, errSessionEnded):
			return nil
		case apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput):
			a.console.Println(msgInvalidAction)
		default:
			return err
		}
	}
}
