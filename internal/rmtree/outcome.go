package rmtree

import (
	"fmt"
	"io"
)

type Failure struct {
	Path   string
	Reason string
}

// Outcome accumulates what one run did (or, in dry-run mode, would
// do). It is owned by the Executor and never shared.
type Outcome struct {
	CollectionsRemoved int
	DataObjectsRemoved int
	Failures           []Failure
}

func (o *Outcome) removed(kind Kind) {
	switch kind {
	case KindCollection:
		o.CollectionsRemoved++
	case KindDataObject:
		o.DataObjectsRemoved++
	}
}

func (o *Outcome) failed(path string, err error) {
	o.Failures = append(o.Failures, Failure{Path: path, Reason: err.Error()})
}

// Report writes the final summary. It is printed on every run,
// including after a fatal abort, so the operator can see exactly what
// was removed.
func (o *Outcome) Report(w io.Writer, dryRun bool) {
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}

	fmt.Fprintf(w, "%s %d collections and %d data objects.\n",
		verb, o.CollectionsRemoved, o.DataObjectsRemoved)

	if len(o.Failures) == 0 {
		return
	}

	fmt.Fprintf(w, "%d failures:\n", len(o.Failures))
	for _, f := range o.Failures {
		fmt.Fprintf(w, "  FAIL %s: %s\n", f.Path, f.Reason)
	}
}
