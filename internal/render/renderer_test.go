package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestRenderer(buf *bytes.Buffer, color ColorMode) *Renderer {
	return New(buf, Options{
		Color: color,
		Now:   func() time.Time { return fixedNow },
	})
}

func task(y int, m time.Month, d, hh, mm int, p domain.Priority, actions ...string) domain.Task {
	return domain.NewTask(domain.Date{Year: y, Month: m, Day: d}, domain.Clock{Hour: hh, Minute: mm}, p, actions)
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)

	require.NoError(t, r.Print(nil))
	assert.Equal(t, "No tasks have been input\n", buf.String())
}

func TestTable_SingleTask(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)

	require.NoError(t, r.Print([]domain.Task{
		task(2000, time.January, 1, 0, 0, domain.PriorityLow, "buy milk"),
	}))

	want := strings.Join([]string{
		Separator,
		Header,
		Separator,
		"| 01 | 2000-01-01 | 00:00 |   |   |buy milk                                    |",
		Separator,
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_LineWidths(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)

	require.NoError(t, r.Print([]domain.Task{
		task(2024, time.March, 15, 9, 5, domain.PriorityHigh,
			strings.Repeat("a", 45), "short", "line one\nline two"),
		task(2024, time.March, 16, 23, 59, domain.PriorityCritical, strings.Repeat("b", 44)),
	}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	for _, line := range lines {
		assert.Len(t, line, len(Separator), line)
	}

	assert.Equal(t, "| 01 | 2024-03-15 | 09:05 |   |   |"+strings.Repeat("a", 44)+"|", lines[3])
	assert.Equal(t, continued+"a"+strings.Repeat(" ", 43)+"|", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], continued+"short "))
	assert.True(t, strings.HasPrefix(lines[6], continued+"line one "))
	assert.True(t, strings.HasPrefix(lines[7], continued+"line two "))
	assert.Equal(t, Separator, lines[8])
	assert.Equal(t, "| 02 | 2024-03-16 | 23:59 |   |   |"+strings.Repeat("b", 44)+"|", lines[9])
	assert.Equal(t, Separator, lines[10])
}

func TestTable_Swatches(t *testing.T) {
	tests := []struct {
		name         string
		task         domain.Task
		wantPriority string
		wantDue      string
	}{
		{
			name:         "critical overdue",
			task:         task(2024, time.March, 14, 8, 0, domain.PriorityCritical, "x"),
			wantPriority: "101",
			wantDue:      "101",
		},
		{
			name:         "high today",
			task:         task(2024, time.March, 15, 23, 0, domain.PriorityHigh, "x"),
			wantPriority: "103",
			wantDue:      "103",
		},
		{
			name:         "normal upcoming",
			task:         task(2024, time.March, 16, 0, 0, domain.PriorityNormal, "x"),
			wantPriority: "102",
			wantDue:      "102",
		},
		{
			name:         "low upcoming",
			task:         task(2025, time.January, 1, 0, 0, domain.PriorityLow, "x"),
			wantPriority: "104",
			wantDue:      "102",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newTestRenderer(&buf, ColorAlways)

			out := r.Table([]domain.Task{tt.task})
			row := strings.Split(out, "\n")[3]
			assert.Contains(t, row, "| \x1b["+tt.wantPriority+"m \x1b[0m | \x1b["+tt.wantDue+"m \x1b[0m |")
		})
	}
}

func TestTable_DueStatusUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	r := New(&buf, Options{
		Color:    ColorAlways,
		Location: tokyo,
		Now:      func() time.Time { return late },
	})

	// 20:00 UTC is already the 16th in UTC+9, so a task on the 15th is overdue.
	out := r.Table([]domain.Task{task(2024, time.March, 15, 10, 0, domain.PriorityLow, "x")})
	assert.Contains(t, out, "| \x1b[104m \x1b[0m | \x1b[101m \x1b[0m |")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, colorEnabled(ColorAlways, &buf))
	assert.False(t, colorEnabled(ColorNever, &buf))
	assert.False(t, colorEnabled(ColorAuto, &buf), "non-file writers are never terminals")

	t.Setenv("NO_COLOR", "1")
	assert.True(t, colorEnabled(ColorAlways, &buf))
	assert.False(t, colorEnabled(ColorAuto, &buf))
}

func TestParseModes(t *testing.T) {
	mode, err := ParseColorMode("ALWAYS")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, mode)

	mode, err = ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, mode)

	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)

	wrap, err := ParseWrapMode("word")
	require.NoError(t, err)
	assert.Equal(t, WrapWord, wrap)

	_, err = ParseWrapMode("line")
	assert.Error(t, err)

	var flagValue ColorMode
	require.NoError(t, flagValue.Set("never"))
	assert.Equal(t, "never", flagValue.String())

	var wrapValue WrapMode
	assert.Equal(t, "char", wrapValue.String())
	assert.Error(t, wrapValue.Set("bogus"))
}
