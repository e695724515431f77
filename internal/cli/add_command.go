package cli

import (
	"context"

	"tasklist/internal/domain"
)

// AddCommand handles the add action
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute asks for every field of a new task and appends it. A task without
// action lines is dropped.
func (c *AddCommand) Execute(ctx context.Context) error {
	priority, err := c.app.prompt.AskPriority()
	if err != nil {
		return err
	}
	date, err := c.app.prompt.AskDate()
	if err != nil {
		return err
	}
	clock, err := c.app.prompt.AskTime()
	if err != nil {
		return err
	}
	actions, err := c.app.prompt.AskActions()
	if err != nil {
		return err
	}

	c.app.tasks.Add(domain.NewTask(date, clock, priority, actions))
	return nil
}
