package cli

import (
	"context"

	"tasklist/internal/repository"
)

// memoryRepository is an in-memory repository.Repository for tests.
type memoryRepository struct {
	records []repository.Record
	saves   int
	loadErr error
	saveErr error
	closed  bool
}

func newMemoryRepository(records ...repository.Record) *memoryRepository {
	return &memoryRepository{records: records}
}

func (m *memoryRepository) Load(ctx context.Context) ([]repository.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]repository.Record(nil), m.records...), nil
}

func (m *memoryRepository) Save(ctx context.Context, records []repository.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records = append([]repository.Record(nil), records...)
	return nil
}

func (m *memoryRepository) Close() error {
	m.closed = true
	return nil
}
