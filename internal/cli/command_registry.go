package cli

import (
	"context"

	"tasklist/internal/errors"
)

// Command represents one console action
type Command interface {
	Execute(ctx context.Context) error
}

// CommandRegistry manages all available actions
type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("print", NewPrintCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("end", NewEndCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = command
}

// Execute runs the named command
func (r *CommandRegistry) Execute(ctx context.Context, commandName string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("action", commandName, "unknown action")
	}
	return command.Execute(ctx)
}

// Names returns the registered action names in registration order
func (r *CommandRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
