package domain

import "time"

// DueStatus relates a task's day to the current day.
type DueStatus int

const (
	DueToday DueStatus = iota
	DueOverdue
	DueUpcoming
)

// String returns the status name.
func (s DueStatus) String() string {
	switch s {
	case DueToday:
		return "today"
	case DueOverdue:
		return "overdue"
	case DueUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// DaysUntil counts calendar days from the task's day to today, ignoring time
// of day. Positive means the task's day has already passed.
func DaysUntil(taskDay Date, today Date) int {
	from := time.Date(taskDay.Year, taskDay.Month, taskDay.Day, 0, 0, 0, 0, time.UTC)
	to := time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / 86400)
}

// DueStatusForDays maps a DaysUntil result to a status.
func DueStatusForDays(days int) DueStatus {
	switch {
	case days == 0:
		return DueToday
	case days > 0:
		return DueOverdue
	default:
		return DueUpcoming
	}
}

// DueStatus reports the task's status relative to now as seen in loc.
func (t Task) DueStatus(now time.Time, loc *time.Location) DueStatus {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return DueStatusForDays(DaysUntil(t.Date(), Date{Year: y, Month: m, Day: d}))
}
