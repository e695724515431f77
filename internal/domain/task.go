package domain

import (
	"time"
)

// Date is a calendar day without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Task is one entry of the task list.
// When carries wall-clock date and time; its location is always UTC and has
// no meaning beyond that.
type Task struct {
	When     time.Time
	Priority Priority
	Actions  []string
}

// NewTask assembles a task from its separately entered parts.
func NewTask(date Date, clock Clock, priority Priority, actions []string) Task {
	return Task{
		When:     timestamp(date, clock),
		Priority: priority,
		Actions:  append([]string(nil), actions...),
	}
}

// Date returns the calendar day of the task.
func (t Task) Date() Date {
	y, m, d := t.When.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Clock returns the time of day of the task.
func (t Task) Clock() Clock {
	return Clock{Hour: t.When.Hour(), Minute: t.When.Minute()}
}

// WithDate returns a copy of t on another day at the same time of day.
func (t Task) WithDate(date Date) Task {
	t.When = timestamp(date, t.Clock())
	return t
}

// WithClock returns a copy of t on the same day at another time of day.
func (t Task) WithClock(clock Clock) Task {
	t.When = timestamp(t.Date(), clock)
	return t
}

// IsValid checks that the task could be stored.
func (t Task) IsValid() bool {
	return t.Priority.IsValid() && len(t.Actions) > 0
}

func timestamp(date Date, clock Clock) time.Time {
	return time.Date(date.Year, date.Month, date.Day, clock.Hour, clock.Minute, 0, 0, time.UTC)
}
