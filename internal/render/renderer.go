package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"tasklist/internal/domain"
)

const (
	Separator  = "+----+------------+-------+---+---+--------------------------------------------+"
	Header     = "| N  |    Date    | Time  | P | D |                   Task                     |"
	continued  = "|    |            |       |   |   |"
	EmptyTable = "No tasks have been input"
)

// Options configures a Renderer.
type Options struct {
	Color    ColorMode
	Wrap     WrapMode
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Renderer formats the task list as a bordered table.
type Renderer struct {
	out      io.Writer
	styles   *lipgloss.Renderer
	wrap     WrapMode
	location *time.Location
	now      func() time.Time
}

// New creates a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	styles := lipgloss.NewRenderer(w)
	if colorEnabled(opts.Color, w) {
		styles.SetColorProfile(termenv.ANSI)
	} else {
		styles.SetColorProfile(termenv.Ascii)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	wrap := opts.Wrap
	if wrap == "" {
		wrap = WrapChar
	}

	return &Renderer{
		out:      w,
		styles:   styles,
		wrap:     wrap,
		location: loc,
		now:      now,
	}
}

// Print writes the table for tasks, or the empty-list notice.
func (r *Renderer) Print(tasks []domain.Task) error {
	_, err := io.WriteString(r.out, r.Table(tasks))
	return err
}

// Table returns the rendered table including the trailing newline.
func (r *Renderer) Table(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return EmptyTable + "\n"
	}

	var b strings.Builder
	b.WriteString(Separator + "\n")
	b.WriteString(Header + "\n")
	b.WriteString(Separator + "\n")

	now := r.now()
	for i, task := range tasks {
		r.writeTask(&b, i+1, task, now)
		b.WriteString(Separator + "\n")
	}
	return b.String()
}

func (r *Renderer) writeTask(b *strings.Builder, number int, task domain.Task, now time.Time) {
	lead := fmt.Sprintf("| %02d | %s | %s | %s | %s |",
		number,
		task.When.Format("2006-01-02"),
		task.When.Format("15:04"),
		r.swatch(priorityColors[task.Priority]),
		r.swatch(dueColors[task.DueStatus(now, r.location)]),
	)

	first := true
	for _, action := range task.Actions {
		for _, line := range wrapAction(action, TextWidth, r.wrap) {
			if first {
				b.WriteString(lead)
				first = false
			} else {
				b.WriteString(continued)
			}
			b.WriteString(pad(line, TextWidth))
			b.WriteString("|\n")
		}
	}
}

func (r *Renderer) swatch(color lipgloss.Color) string {
	return r.styles.NewStyle().Background(color).Render(" ")
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
