package cli

import "context"

// DeleteCommand handles the delete action
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute shows the table, asks for a task number and removes that task
func (c *DeleteCommand) Execute(ctx context.Context) error {
	index, ok, err := selectTask(c.app)
	if err != nil || !ok {
		return err
	}

	if _, err := c.app.tasks.Delete(index); err != nil {
		return err
	}
	c.app.console.Println(msgTaskDeleted)
	return nil
}

// selectTask prints the table and asks for a task number. ok is false when
// the list is empty.
func selectTask(app *App) (index int, ok bool, err error) {
	if app.tasks.IsEmpty() {
		app.console.Println(msgNoTasks)
		return 0, false, nil
	}
	if err := app.Print(); err != nil {
		return 0, false, err
	}
	index, err = app.prompt.AskIndex(app.tasks.Len())
	if err != nil {
		return 0, false, err
	}
	return index, true, nil
}
