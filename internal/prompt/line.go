package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Hint is appended to every three-way question
const Hint = "[y]es / [n]o / [c]ontinue"

// LinePrompter reads one answer per line. It is used when stdin is not a
// terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the question and reads a line. End of input counts as "no".
func (p *LinePrompter) Ask(message string) (Decision, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return Abort, err
	}
	if _, err := fmt.Fprintf(p.out, "%s %s: ", message, Hint); err != nil {
		return Abort, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Abort, err
	}
	return ParseAnswer(line), nil
}
