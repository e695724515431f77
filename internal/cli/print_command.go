package cli

import "context"

// PrintCommand handles the print action
type PrintCommand struct {
	app *App
}

// NewPrintCommand creates a new print command handler
func NewPrintCommand(app *App) *PrintCommand {
	return &PrintCommand{app: app}
}

// Execute prints the task table
func (c *PrintCommand) Execute(ctx context.Context) error {
	return c.app.Print()
}
