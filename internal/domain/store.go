package domain

import (
	"strconv"

	"tasklist/internal/errors"
)

// Field names one editable part of a task.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldTask     Field = "task"
)

// ParseField returns the field with the given name.
func ParseField(name string) (Field, bool) {
	switch f := Field(name); f {
	case FieldPriority, FieldDate, FieldTime, FieldTask:
		return f, true
	default:
		return "", false
	}
}

// Edit replaces exactly one field of a task.
type Edit struct {
	Field    Field
	Priority Priority
	Date     Date
	Clock    Clock
	Actions  []string
}

// EditPriority replaces the priority.
func EditPriority(p Priority) Edit { return Edit{Field: FieldPriority, Priority: p} }

// EditDate moves the task to another day, keeping its time of day.
func EditDate(d Date) Edit { return Edit{Field: FieldDate, Date: d} }

// EditTime moves the task to another time of day, keeping its day.
func EditTime(c Clock) Edit { return Edit{Field: FieldTime, Clock: c} }

// EditActions replaces all action lines.
func EditActions(actions []string) Edit {
	return Edit{Field: FieldTask, Actions: append([]string(nil), actions...)}
}

// Apply returns a copy of t with the edit applied.
func (e Edit) Apply(t Task) (Task, error) {
	switch e.Field {
	case FieldPriority:
		if !e.Priority.IsValid() {
			return t, errors.NewInvalidInputError("priority", e.Priority, "unknown priority")
		}
		t.Priority = e.Priority
	case FieldDate:
		t = t.WithDate(e.Date)
	case FieldTime:
		t = t.WithClock(e.Clock)
	case FieldTask:
		if len(e.Actions) == 0 {
			return t, errors.NewValidationError("task has no action lines", nil)
		}
		t.Actions = append([]string(nil), e.Actions...)
	default:
		return t, errors.NewInvalidInputError("field", e.Field, "unknown field")
	}
	return t, nil
}

// Store is the ordered task list. Display indices are 1-based.
type Store struct {
	tasks []Task
}

// NewStore creates a store holding tasks in order. Tasks without actions are dropped.
func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.Replace(tasks)
	return s
}

// Add appends a task. A task without action lines is discarded and Add
// reports false.
func (s *Store) Add(task Task) bool {
	if len(task.Actions) == 0 {
		return false
	}
	task.Actions = append([]string(nil), task.Actions...)
	s.tasks = append(s.tasks, task)
	return true
}

// Replace discards the current contents and adds tasks in order.
func (s *Store) Replace(tasks []Task) {
	s.tasks = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		s.Add(t)
	}
}

// List returns a copy of the tasks in display order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// IsEmpty reports whether the store holds no tasks.
func (s *Store) IsEmpty() bool {
	return len(s.tasks) == 0
}

// DeleteAt removes the task at displayIndex; later tasks move up by one.
func (s *Store) DeleteAt(displayIndex int) (Task, error) {
	i, err := s.position(displayIndex)
	if err != nil {
		return Task{}, err
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// EditAt applies edit to the task at displayIndex and returns the new task.
func (s *Store) EditAt(displayIndex int, edit Edit) (Task, error) {
	i, err := s.position(displayIndex)
	if err != nil {
		return Task{}, err
	}
	updated, err := edit.Apply(s.tasks[i])
	if err != nil {
		return Task{}, err
	}
	s.tasks[i] = updated
	return updated, nil
}

func (s *Store) position(displayIndex int) (int, error) {
	if displayIndex < 1 || displayIndex > len(s.tasks) {
		return 0, errors.NewNotFoundError("task", strconv.Itoa(displayIndex))
	}
	return displayIndex - 1, nil
}
