package rmtree

import (
	"fmt"
	"io"
)

type eventType string

const (
	eventRemoved     eventType = "rm  "
	eventWouldRemove eventType = "dry "
	eventFailed      eventType = "FAIL"
)

type progress interface {
	event(t eventType, path, message string)
	done()
}

//------------------------------------------------------------------------------

type quietProgress struct{}

func (quietProgress) event(eventType, string, string) {}
func (quietProgress) done()                           {}

//------------------------------------------------------------------------------

// plainProgress prints one line per processed entry. Used in verbose
// and dry-run modes, and when the output is not a terminal.
type plainProgress struct {
	output io.Writer
	count  int
}

func newPlainProgress(w io.Writer) *plainProgress {
	return &plainProgress{output: w}
}

func (p *plainProgress) event(t eventType, path, message string) {
	p.count++

	if message != "" {
		fmt.Fprintf(p.output, "[%d] %s %s -- %s\n", p.count, t, path, message)
		return
	}
	fmt.Fprintf(p.output, "[%d] %s %s\n", p.count, t, path)
}

func (p *plainProgress) done() {}

//------------------------------------------------------------------------------

// ansiProgress keeps a single status line updated with the entry
// being processed. Failures are printed on their own lines so they
// stay visible. The walk is lazy, so there is no total to draw a
// progress bar against.
type ansiProgress struct {
	output io.Writer
}

func newANSIProgress(w io.Writer) *ansiProgress {
	return &ansiProgress{output: w}
}

func (p *ansiProgress) event(t eventType, path, message string) {
	fmt.Fprintf(p.output, "\r\x1b[0K") // back to column 0, clear the line

	if t == eventFailed {
		fmt.Fprintf(p.output, "%s %s -- %s\n", t, path, message)
		return
	}

	fmt.Fprintf(p.output, "%s %s", t, path)
}

func (p *ansiProgress) done() {
	fmt.Fprintf(p.output, "\r\x1b[0K")
}
