package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// TextWidth is the display width of the task column.
const TextWidth = 44

// wrapAction splits one action into lines no wider than width cells.
// An embedded newline always ends a line and is not part of the output.
func wrapAction(action string, width int, mode WrapMode) []string {
	if mode == WrapWord {
		action = wordwrap.String(action, width)
	}

	var lines []string
	var line strings.Builder
	cells := 0
	for _, r := range action {
		if r == '\n' {
			lines = append(lines, line.String())
			line.Reset()
			cells = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if cells+w > width && cells > 0 {
			lines = append(lines, line.String())
			line.Reset()
			cells = 0
		}
		line.WriteRune(r)
		cells += w
	}
	return append(lines, line.String())
}

// pad right-fills s with spaces up to width cells.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
