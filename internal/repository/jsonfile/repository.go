// Package jsonfile persists the task list as a single JSON array.
package jsonfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository"
)

//go:embed schema.json
var schemaJSON string

// Repository reads and writes one JSON file.
type Repository struct {
	path   string
	schema *jsonschema.Schema
}

var _ repository.Repository = (*Repository)(nil)

// New creates a repository backed by the file at path. The file does not
// need to exist yet.
func New(path string) (*Repository, error) {
	schema, err := jsonschema.CompileString("tasklist.schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile tasklist schema: %w", err)
	}
	return &Repository{path: path, schema: schema}, nil
}

// Path returns the backing file path.
func (r *Repository) Path() string {
	return r.path
}

// Load reads every record. A missing file yields no records.
func (r *Repository) Load(ctx context.Context) ([]repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		logging.Debugf("no task file at %s, starting empty", r.path)
		return []repository.Record{}, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("read "+r.path, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewDecodeError(r.path, err)
	}
	if err := r.schema.Validate(raw); err != nil {
		return nil, errors.NewDecodeError(r.path, schemaError(err))
	}

	var records []repository.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewDecodeError(r.path, err)
	}
	logging.Debugf("loaded %d records from %s", len(records), r.path)
	return records, nil
}

// Save overwrites the file with records, creating it and its directory if needed.
func (r *Repository) Save(ctx context.Context, records []repository.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []repository.Record{}
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewStorageError("create directory "+dir, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.NewStorageError("open "+r.path, err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return errors.NewStorageError("write "+r.path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewStorageError("close "+r.path, err)
	}
	logging.Debugf("saved %d records to %s", len(records), r.path)
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (r *Repository) Close() error {
	return nil
}

// schemaError reduces a schema failure to its first leaf cause.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("%s: %s", location, ve.Message)
}
