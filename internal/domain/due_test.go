package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	today := Date{Year: 2024, Month: time.March, Day: 1}

	assert.Equal(t, 0, DaysUntil(today, today))
	assert.Equal(t, 1, DaysUntil(Date{Year: 2024, Month: time.February, Day: 29}, today), "yesterday is one day past")
	assert.Equal(t, -1, DaysUntil(Date{Year: 2024, Month: time.March, Day: 2}, today))
	assert.Equal(t, 366, DaysUntil(Date{Year: 2023, Month: time.March, Day: 1}, today))
	assert.Equal(t, 192118, DaysUntil(Date{Year: 1500, Month: time.January, Day: 1}, Date{Year: 2026, Month: time.January, Day: 1}), "spans past time.Duration range")
	assert.Equal(t, -738885, DaysUntil(Date{Year: 2024, Month: time.January, Day: 1}, Date{Year: 1, Month: time.January, Day: 1}))
}

func TestDueStatusForDays(t *testing.T) {
	assert.Equal(t, DueToday, DueStatusForDays(0))
	assert.Equal(t, DueOverdue, DueStatusForDays(3))
	assert.Equal(t, DueUpcoming, DueStatusForDays(-3))
}

func TestTask_DueStatusIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 1, 0, 0, time.UTC)

	late := NewTask(Date{Year: 2024, Month: time.March, Day: 1}, Clock{Hour: 23, Minute: 59}, PriorityLow, []string{"a"})
	past := NewTask(Date{Year: 2024, Month: time.February, Day: 29}, Clock{Hour: 23, Minute: 59}, PriorityLow, []string{"a"})
	next := NewTask(Date{Year: 2024, Month: time.March, Day: 2}, Clock{Hour: 0, Minute: 0}, PriorityLow, []string{"a"})

	assert.Equal(t, DueToday, late.DueStatus(now, time.UTC))
	assert.Equal(t, DueOverdue, past.DueStatus(now, time.UTC))
	assert.Equal(t, DueUpcoming, next.DueStatus(now, nil))
}

func TestTask_DueStatusUsesLocation(t *testing.T) {
	// 23:30 UTC on Feb 29 is already Mar 1 east of UTC.
	now := time.Date(2024, time.February, 29, 23, 30, 0, 0, time.UTC)
	east := time.FixedZone("UTC+2", 2*60*60)
	task := NewTask(Date{Year: 2024, Month: time.March, Day: 1}, Clock{Hour: 12, Minute: 0}, PriorityLow, []string{"a"})

	assert.Equal(t, DueUpcoming, task.DueStatus(now, time.UTC))
	assert.Equal(t, DueToday, task.DueStatus(now, east))
}

func TestDueStatus_String(t *testing.T) {
	assert.Equal(t, "today", DueToday.String())
	assert.Equal(t, "overdue", DueOverdue.String())
	assert.Equal(t, "upcoming", DueUpcoming.String())
	assert.Equal(t, "unknown", DueStatus(42).String())
}
