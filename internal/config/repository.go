package config

import (
	"context"
	"fmt"

	"tasklist/internal/repository"
	"tasklist/internal/repository/jsonfile"
	"tasklist/internal/repository/sqlite"
)

// CreateRepository creates the repository for the configured backend
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendSQLite:
		repo, err := sqlite.New(ctx, config.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	case BackendJSON, "":
		repo, err := jsonfile.New(config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize task file: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}
