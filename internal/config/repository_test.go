package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/repository/jsonfile"
	"tasklist/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		backend string
		check   func(t *testing.T, repo interface{})
	}{
		{
			name:    "json",
			backend: BackendJSON,
			check: func(t *testing.T, repo interface{}) {
				r, ok := repo.(*jsonfile.Repository)
				require.True(t, ok, "got %T", repo)
				assert.Equal(t, filepath.Join(dir, "tasks.json"), r.Path())
			},
		},
		{
			name:    "sqlite",
			backend: BackendSQLite,
			check: func(t *testing.T, repo interface{}) {
				r, ok := repo.(*sqlite.Repository)
				require.True(t, ok, "got %T", repo)
				assert.Equal(t, filepath.Join(dir, "tasks.db"), r.Path())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Backend = tt.backend
			cfg.Storage.Path = filepath.Join(dir, "tasks.json")
			cfg.Storage.SQLitePath = filepath.Join(dir, "tasks.db")

			repo, err := CreateRepository(context.Background(), cfg)
			require.NoError(t, err)
			defer repo.Close()

			tt.check(t, repo)

			records, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestCreateRepository_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = "postgres"

	_, err := CreateRepository(context.Background(), cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "storage.backend", cfgErr.Field)
}
