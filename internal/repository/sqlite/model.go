package sqlite

// TaskRow is one row of the tasks table. Position keeps the list order.
type TaskRow struct {
	Position int64
	TaskDate string
	Priority string
}

// ActionRow is one line of a task's description.
type ActionRow struct {
	TaskPosition int64
	Line         int
	Text         string
}
