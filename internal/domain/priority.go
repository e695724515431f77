package domain

import "strings"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityNormal   Priority = "NORMAL"
	PriorityLow      Priority = "LOW"
)

var priorityAbbreviations = map[Priority]string{
	PriorityCritical: "C",
	PriorityHigh:     "H",
	PriorityNormal:   "N",
	PriorityLow:      "L",
}

// ValidPriorities returns all priorities from most to least urgent.
func ValidPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	_, ok := priorityAbbreviations[p]
	return ok
}

// Abbreviation returns the one-letter code the user types for p.
func (p Priority) Abbreviation() string {
	return priorityAbbreviations[p]
}

// PriorityFromAbbreviation looks up a priority by its letter, ignoring case.
func PriorityFromAbbreviation(letter string) (Priority, bool) {
	letter = strings.ToUpper(letter)
	for p, abbr := range priorityAbbreviations {
		if abbr == letter {
			return p, true
		}
	}
	return "", false
}

// String returns the priority name.
func (p Priority) String() string {
	return string(p)
}
