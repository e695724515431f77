package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single task from a database row
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	if err := scanner.Scan(&row.Position, &row.TaskDate, &row.Priority); err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTaskRows scans multiple tasks from database rows
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	return scanAll(rows, ScanTaskRow)
}

// ScanActionRow scans a single action line from a database row
func ScanActionRow(scanner Scanner) (*ActionRow, error) {
	row := &ActionRow{}
	if err := scanner.Scan(&row.TaskPosition, &row.Line, &row.Text); err != nil {
		return nil, err
	}
	return row, nil
}

// ScanActionRows scans multiple action lines from database rows
func ScanActionRows(rows Rows) ([]*ActionRow, error) {
	return scanAll(rows, ScanActionRow)
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
