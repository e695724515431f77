package services

import (
	"context"

	"tasklist/internal/domain"
)

// TaskListService owns the task list of one session: it is loaded once,
// changed in memory and saved once.
type TaskListService interface {
	// Load replaces the in-memory list with the persisted one.
	Load(ctx context.Context) error
	// Save persists the whole list.
	Save(ctx context.Context) error

	List() []domain.Task
	Len() int
	IsEmpty() bool

	// Add appends task unless it has no action lines.
	Add(task domain.Task) bool
	// Edit and Delete take 1-based display indices.
	Edit(index int, edit domain.Edit) (domain.Task, error)
	Delete(index int) (domain.Task, error)
}
