package cli

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// EditCommand handles the edit action
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute asks for a task and one of its fields, then replaces that field.
// A blank replacement for the action lines leaves the task as it was.
func (c *EditCommand) Execute(ctx context.Context) error {
	index, ok, err := selectTask(c.app)
	if err != nil || !ok {
		return err
	}

	field, err := c.app.prompt.AskField()
	if err != nil {
		return err
	}

	edit, err := c.askEdit(field)
	if err != nil {
		return err
	}

	if _, err := c.app.tasks.Edit(index, edit); err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeValidation) {
			return nil
		}
		return err
	}
	c.app.console.Println(msgTaskChanged)
	return nil
}

func (c *EditCommand) askEdit(field domain.Field) (domain.Edit, error) {
	switch field {
	case domain.FieldPriority:
		p, err := c.app.prompt.AskPriority()
		return domain.EditPriority(p), err
	case domain.FieldDate:
		d, err := c.app.prompt.AskDate()
		return domain.EditDate(d), err
	case domain.FieldTime:
		t, err := c.app.prompt.AskTime()
		return domain.EditTime(t), err
	default:
		actions, err := c.app.prompt.AskActions()
		return domain.EditActions(actions), err
	}
}
