package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Console reads answers line by line and writes prompts and messages.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over r and w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

// Println writes one line of output.
func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// ReadLine returns the next line without its line terminator. A final line
// without a terminator is still returned; after that ReadLine reports
// ErrInputClosed.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints prompt and reads the answer.
func (c *Console) Ask(prompt string) (string, error) {
	c.Println(prompt)
	return c.ReadLine()
}
