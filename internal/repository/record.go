// Package repository defines the persisted shape of the task list and the
// backends that load and save it.
package repository

import "context"

// Record is the serialized form of a task. TaskDate holds an ISO-8601
// local date-time without offset, e.g. "2024-03-01T09:30".
type Record struct {
	TaskDate string   `json:"taskDate"`
	Priority string   `json:"priority"`
	Actions  []string `json:"actions"`
}

// Repository loads the whole task list once and saves it once.
type Repository interface {
	// Load returns the persisted records in display order. A backend with
	// nothing persisted yet returns an empty slice and no error.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces everything persisted with records.
	Save(ctx context.Context, records []Record) error

	Close() error
}
