package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/logging"
	"tasklist/internal/repository"
)

// taskListServiceImpl implements the TaskListService interface
type taskListServiceImpl struct {
	repo   repository.Repository
	store  *domain.Store
	mapper *domain.TaskMapper
}

// NewTaskListService creates a new TaskListService over repo
func NewTaskListService(repo repository.Repository) TaskListService {
	return &taskListServiceImpl{
		repo:   repo,
		store:  domain.NewStore(),
		mapper: domain.NewTaskMapper(),
	}
}

// Load replaces the in-memory list with the persisted one
func (s *taskListServiceImpl) Load(ctx context.Context) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	tasks, err := s.mapper.FromRecords(records)
	if err != nil {
		return err
	}

	s.store.Replace(tasks)
	if dropped := len(tasks) - s.store.Len(); dropped > 0 {
		logging.Default().Warn("dropped stored tasks without action lines", "count", dropped)
	}
	logging.Debugf("loaded %d tasks", s.store.Len())
	return nil
}

// Save persists the whole list
func (s *taskListServiceImpl) Save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.mapper.ToRecords(s.store.List())); err != nil {
		return err
	}
	logging.Debugf("saved %d tasks", s.store.Len())
	return nil
}

// List returns the tasks in display order
func (s *taskListServiceImpl) List() []domain.Task {
	return s.store.List()
}

// Len returns the number of tasks
func (s *taskListServiceImpl) Len() int {
	return s.store.Len()
}

// IsEmpty reports whether there are no tasks
func (s *taskListServiceImpl) IsEmpty() bool {
	return s.store.IsEmpty()
}

// Add appends task unless it has no action lines
func (s *taskListServiceImpl) Add(task domain.Task) bool {
	if !s.store.Add(task) {
		logging.Debugln("discarded task without action lines")
		return false
	}
	return true
}

// Edit applies edit to the task at index
func (s *taskListServiceImpl) Edit(index int, edit domain.Edit) (domain.Task, error) {
	return s.store.EditAt(index, edit)
}

// Delete removes the task at index
func (s *taskListServiceImpl) Delete(index int) (domain.Task, error) {
	return s.store.DeleteAt(index)
}
