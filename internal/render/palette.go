package render

import (
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/domain"
)

// Bright ANSI background colors.
const (
	red    = lipgloss.Color("9")
	green  = lipgloss.Color("10")
	yellow = lipgloss.Color("11")
	blue   = lipgloss.Color("12")
)

var priorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityCritical: red,
	domain.PriorityHigh:     yellow,
	domain.PriorityNormal:   green,
	domain.PriorityLow:      blue,
}

var dueColors = map[domain.DueStatus]lipgloss.Color{
	domain.DueOverdue:  red,
	domain.DueToday:    yellow,
	domain.DueUpcoming: green,
}
