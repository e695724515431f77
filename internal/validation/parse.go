// Package validation turns raw console input into dates, times, priorities
// and list indices. Every parser either returns a value or a *FieldError;
// retrying is up to the caller.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tasklist/internal/domain"
)

var (
	dateShape = regexp.MustCompile(`^[0-9]{1,4}-[0-9]{1,2}-[0-9]{1,2}$`)
	timeShape = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{1,2}$`)
)

// ParsePriority accepts a single letter C, H, N or L in either case.
func ParsePriority(input string) (domain.Priority, error) {
	if len(input) != 1 {
		return "", invalidFormat("priority", input, "one of C, H, N, L")
	}
	p, ok := domain.PriorityFromAbbreviation(input)
	if !ok {
		return "", invalidValue("priority", input, "unknown priority letter")
	}
	return p, nil
}

// ParseDate accepts y-m-d with a 1-4 digit year and 1-2 digit month and day.
// A two-digit month must start with 0 or 1, and the day must exist in that
// month of that year.
func ParseDate(input string) (domain.Date, error) {
	if !dateShape.MatchString(input) {
		return domain.Date{}, invalidFormat("date", input, "yyyy-mm-dd")
	}
	parts := strings.Split(input, "-")
	if len(parts) != 3 {
		return domain.Date{}, invalidFormat("date", input, "yyyy-mm-dd")
	}
	month := parts[1]
	if len(month) == 2 && month[0] != '0' && month[0] != '1' {
		return domain.Date{}, invalidFormat("date", input, "month 01-12")
	}

	year, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(month)
	day, _ := strconv.Atoi(parts[2])
	if year < 1 {
		return domain.Date{}, invalidRange("date", input, "year must be at least 1")
	}
	if m < 1 || m > 12 {
		return domain.Date{}, invalidRange("date", input, "month must be between 1 and 12")
	}
	if day < 1 || day > daysIn(year, time.Month(m)) {
		return domain.Date{}, invalidRange("date", input, fmt.Sprintf("day must be between 1 and %d", daysIn(year, time.Month(m))))
	}
	return domain.Date{Year: year, Month: time.Month(m), Day: day}, nil
}

// ParseTime accepts h:m with 1-2 digits each, hour 0-23 and minute 0-59.
func ParseTime(input string) (domain.Clock, error) {
	if !timeShape.MatchString(input) {
		return domain.Clock{}, invalidFormat("time", input, "hh:mm")
	}
	hour, minute, _ := strings.Cut(input, ":")
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	if h > 23 {
		return domain.Clock{}, invalidRange("time", input, "hour must be between 0 and 23")
	}
	if m > 59 {
		return domain.Clock{}, invalidRange("time", input, "minute must be between 0 and 59")
	}
	return domain.Clock{Hour: h, Minute: m}, nil
}

// ParseIndex accepts a 1-based task number between 1 and size.
func ParseIndex(input string, size int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, invalidFormat("task number", input, "an integer")
	}
	if n < 1 || n > size {
		return 0, invalidRange("task number", input, fmt.Sprintf("must be between 1 and %d", size))
	}
	return n, nil
}

// daysIn returns the number of days in month m of year, Gregorian rules.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
