package rmtree

import (
	"fmt"

	"github.com/irods-contrib/ztools/internal/zone"
)

// DepthGuardError is the pre-flight refusal to remove a collection
// that sits too close to the zone root. Nothing has been removed when
// it is returned.
type DepthGuardError struct {
	Path     string
	Depth    int
	MinDepth int
}

func (e *DepthGuardError) Error() string {
	return fmt.Sprintf(
		"refusing to remove %s: its depth %d is below the minimum depth %d set for safety reasons; "+
			"reduce --min-depth if you are sure you want to remove it",
		e.Path, e.Depth, e.MinDepth)
}

// CheckDepth applies the depth floor to a candidate root collection.
func CheckDepth(path string, minDepth int) error {
	if depth := zone.Depth(path); depth < minDepth {
		return &DepthGuardError{Path: path, Depth: depth, MinDepth: minDepth}
	}
	return nil
}

// FatalError aborts a run on the first failure when continuing was
// not requested. It carries the outcome accumulated up to and
// including the failing entry, so a summary can still be reported.
type FatalError struct {
	Outcome *Outcome
	Err     error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("aborted: %v", e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }
