package domain

import (
	"fmt"
	"time"

	"tasklist/internal/errors"
	"tasklist/internal/repository"
)

// RecordTimeLayout is how task date-times are written to storage.
const RecordTimeLayout = "2006-01-02T15:04"

// recordTimeLayouts are accepted when reading; seconds and fractions are
// dropped.
var recordTimeLayouts = []string{
	RecordTimeLayout,
	"2006-01-02T15:04:05",
}

// TaskMapper handles conversion between domain tasks and storage records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a task to its storage record.
func (m *TaskMapper) ToRecord(task Task) repository.Record {
	return repository.Record{
		TaskDate: task.When.Format(RecordTimeLayout),
		Priority: string(task.Priority),
		Actions:  append([]string{}, task.Actions...),
	}
}

// FromRecord converts a storage record to a task.
func (m *TaskMapper) FromRecord(record repository.Record) (Task, error) {
	when, err := ParseRecordTime(record.TaskDate)
	if err != nil {
		return Task{}, err
	}
	priority := Priority(record.Priority)
	if !priority.IsValid() {
		return Task{}, errors.NewDecodeError("task priority", fmt.Errorf("unknown priority %q", record.Priority))
	}
	return Task{
		When:     when,
		Priority: priority,
		Actions:  append([]string(nil), record.Actions...),
	}, nil
}

// ToRecords converts tasks to records, keeping order.
func (m *TaskMapper) ToRecords(tasks []Task) []repository.Record {
	records := make([]repository.Record, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecords converts records to tasks, keeping order. The first bad record
// fails the whole conversion.
func (m *TaskMapper) FromRecords(records []repository.Record) ([]Task, error) {
	tasks := make([]Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				appErr.WithContext("record", i+1)
			}
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// ParseRecordTime parses a stored date-time, truncated to the minute.
func ParseRecordTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range recordTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Truncate(time.Minute), nil
		}
		lastErr = err
	}
	return time.Time{}, errors.NewDecodeError("task date-time", lastErr).WithContext("value", value)
}
