// Package console reads answers to prompts from a line-oriented input stream.
package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// ErrInputClosed is returned when the input ends before an answer is given.
var ErrInputClosed = errors.New("input closed")

// Console writes prompts to out and reads one answer per line from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Print writes text as is.
func (c *Console) Print(text string) error {
	if _, err := io.WriteString(c.out, text); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) error {
	return c.Print(text + "\n")
}

// Ask writes the prompt and returns the next line of input with surrounding
// whitespace removed. A final line without a trailing newline still counts.
func (c *Console) Ask(prompt string) (string, error) {
	if err := c.Print(prompt); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	default:
		return "", errors.Wrap(err, "read answer")
	}
	return strings.TrimSpace(line), nil
}

// Until asks with prompt and keeps asking until check accepts the answer.
// When check rejects an answer it returns the prompt to ask with next.
func (c *Console) Until(prompt string, check func(answer string) (retry string, ok bool)) (string, error) {
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			return "", err
		}
		retry, ok := check(answer)
		if ok {
			return answer, nil
		}
		prompt = retry
	}
}
