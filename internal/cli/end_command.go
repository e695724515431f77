package cli

import "context"

// EndCommand handles the end action
type EndCommand struct {
	app *App
}

// NewEndCommand creates a new end command handler
func NewEndCommand(app *App) *EndCommand {
	return &EndCommand{app: app}
}

// Execute saves the task list and ends the session
func (c *EndCommand) Execute(ctx context.Context) error {
	if err := c.app.Save(ctx); err != nil {
		return err
	}
	c.app.console.Println(msgExiting)
	return errSessionEnded
}
