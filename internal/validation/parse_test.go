package validation

import (
	"fmt"
	"testing"
	"time"

	"tasklist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Priority
		wantErr  bool
	}{
		{"C", domain.PriorityCritical, false},
		{"c", domain.PriorityCritical, false},
		{"H", domain.PriorityHigh, false},
		{"h", domain.PriorityHigh, false},
		{"N", domain.PriorityNormal, false},
		{"n", domain.PriorityNormal, false},
		{"L", domain.PriorityLow, false},
		{"l", domain.PriorityLow, false},
		{"", "", true},
		{"X", "", true},
		{"CC", "", true},
		{" C", "", true},
		{"low", "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			p, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsFieldError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestParseDate_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Date
	}{
		{"2023-01-05", domain.Date{Year: 2023, Month: time.January, Day: 5}},
		{"2023-1-5", domain.Date{Year: 2023, Month: time.January, Day: 5}},
		{"2024-02-29", domain.Date{Year: 2024, Month: time.February, Day: 29}},
		{"2000-02-29", domain.Date{Year: 2000, Month: time.February, Day: 29}},
		{"2023-12-31", domain.Date{Year: 2023, Month: time.December, Day: 31}},
		{"23-4-30", domain.Date{Year: 23, Month: time.April, Day: 30}},
		{"1-1-1", domain.Date{Year: 1, Month: time.January, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		input   string
		errType ValidationErrorType
	}{
		{"2023-02-30", ErrorTypeInvalidRange},
		{"2023-13-01", ErrorTypeInvalidRange},
		{"2023-00-10", ErrorTypeInvalidRange},
		{"2023-04-31", ErrorTypeInvalidRange},
		{"1900-02-29", ErrorTypeInvalidRange},
		{"2023-01-00", ErrorTypeInvalidRange},
		{"0-1-1", ErrorTypeInvalidRange},
		{"0000-02-29", ErrorTypeInvalidRange},
		{"2023-20-01", ErrorTypeInvalidFormat},
		{"20233-01-01", ErrorTypeInvalidFormat},
		{"2023-001-01", ErrorTypeInvalidFormat},
		{"2023-01-01-01", ErrorTypeInvalidFormat},
		{"2023/01/01", ErrorTypeInvalidFormat},
		{"2023-01-1a", ErrorTypeInvalidFormat},
		{"", ErrorTypeInvalidFormat},
		{" 2023-01-01", ErrorTypeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			require.Error(t, err)
			fieldErr, ok := err.(*FieldError)
			require.True(t, ok)
			assert.Equal(t, "date", fieldErr.Field)
			assert.Equal(t, tt.errType, fieldErr.Type)
		})
	}
}

func TestParseDate_EveryDayOfLeapAndCommonYear(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for day.Year() == year {
			input := fmt.Sprintf("%d-%d-%d", day.Year(), int(day.Month()), day.Day())
			d, err := ParseDate(input)
			require.NoError(t, err, input)
			assert.Equal(t, domain.Date{Year: day.Year(), Month: day.Month(), Day: day.Day()}, d)
			day = day.AddDate(0, 0, 1)
		}
	}
}

func TestParseTime(t *testing.T) {
	for h := 0; h <= 23; h++ {
		for m := 0; m <= 59; m++ {
			for _, input := range []string{fmt.Sprintf("%d:%d", h, m), fmt.Sprintf("%02d:%02d", h, m)} {
				c, err := ParseTime(input)
				require.NoError(t, err, input)
				assert.Equal(t, domain.Clock{Hour: h, Minute: m}, c)
			}
		}
	}
}

func TestParseTime_Invalid(t *testing.T) {
	tests := []struct {
		input   string
		errType ValidationErrorType
	}{
		{"24:00", ErrorTypeInvalidRange},
		{"12:60", ErrorTypeInvalidRange},
		{"99:99", ErrorTypeInvalidRange},
		{"123:00", ErrorTypeInvalidFormat},
		{"12:000", ErrorTypeInvalidFormat},
		{"12-00", ErrorTypeInvalidFormat},
		{"12:", ErrorTypeInvalidFormat},
		{":30", ErrorTypeInvalidFormat},
		{"", ErrorTypeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseTime(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.errType, err.(*FieldError).Type)
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		size     int
		expected int
		wantErr  bool
	}{
		{"first", "1", 3, 1, false},
		{"last", "3", 3, 3, false},
		{"zero", "0", 3, 0, true},
		{"past end", "4", 3, 0, true},
		{"negative", "-1", 3, 0, true},
		{"not a number", "two", 3, 0, true},
		{"empty", "", 3, 0, true},
		{"empty store", "1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseIndex(tt.input, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	err := invalidRange("time", "24:00", "hour must be between 0 and 23")

	assert.Equal(t, "validation error for field 'time': time has invalid range: hour must be between 0 and 23", err.Error())
}
