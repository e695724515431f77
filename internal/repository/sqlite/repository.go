package sqlite

import (
	"context"
	"database/sql"

	"tasklist/internal/errors"
	"tasklist/internal/repository"
	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository stores the task list in a SQLite database. Every Save
// replaces the stored list as a whole.
type Repository struct {
	db   *sql.DB
	path string
}

var _ repository.Repository = (*Repository)(nil)

// New opens (or creates) the database at dbPath and applies pending migrations.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

// Path returns the database file the repository was opened with.
func (r *Repository) Path() string {
	return r.path
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load returns the stored records ordered by position.
func (r *Repository) Load(ctx context.Context) ([]repository.Record, error) {
	tasks, err := QueryMultiple(ctx, r.db,
		`SELECT position, task_date, priority FROM tasks ORDER BY position`,
		ScanTaskRows, "tasks")
	if err != nil {
		return nil, err
	}

	actions, err := QueryMultiple(ctx, r.db,
		`SELECT task_position, line, text FROM task_actions ORDER BY task_position, line`,
		ScanActionRows, "task actions")
	if err != nil {
		return nil, err
	}

	lines := make(map[int64][]string, len(tasks))
	for _, a := range actions {
		lines[a.TaskPosition] = append(lines[a.TaskPosition], a.Text)
	}

	records := make([]repository.Record, 0, len(tasks))
	for _, t := range tasks {
		actions := lines[t.Position]
		if actions == nil {
			actions = []string{}
		}
		records = append(records, repository.Record{
			TaskDate: t.TaskDate,
			Priority: t.Priority,
			Actions:  actions,
		})
	}
	return records, nil
}

// Save replaces the stored list with records in a single transaction.
func (r *Repository) Save(ctx context.Context, records []repository.Record) error {
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_actions`); err != nil {
			return HandleDatabaseError("clear task actions", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return HandleDatabaseError("clear tasks", err)
		}

		for i, rec := range records {
			position := int64(i + 1)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (position, task_date, priority) VALUES (?, ?, ?)`,
				position, rec.TaskDate, rec.Priority); err != nil {
				return HandleDatabaseError("insert task", err)
			}
			for line, text := range rec.Actions {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO task_actions (task_position, line, text) VALUES (?, ?, ?)`,
					position, line+1, text); err != nil {
					return HandleDatabaseError("insert task action", err)
				}
			}
		}
		return nil
	})
}
