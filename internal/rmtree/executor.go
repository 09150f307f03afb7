// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package rmtree

import "github.com/irods-contrib/ztools/internal/zone"

// Executor applies the plan entry by entry, strictly sequentially.
// Because the plan is post-order, a collection is never attempted
// before everything below it has been attempted.
type Executor struct {
	Client            zone.Client
	DryRun            bool
	Force             bool
	ContinueOnFailure bool
	Progress          progress

	Outcome Outcome
}

var _ Visitor = (*Executor)(nil)

func (x *Executor) VisitEntry(e Entry) error {
	if x.DryRun {
		x.Progress.event(eventWouldRemove, e.Path, "")
		x.Outcome.removed(e.Kind)
		return nil
	}

	var err error
	switch e.Kind {
	case KindCollection:
		err = x.Client.DeleteCollection(e.Path, x.Force)
	case KindDataObject:
		err = x.Client.DeleteDataObject(e.Path, x.Force)
	}
	if err != nil {
		return x.recordFailure(e.Path, &zone.DeletionError{Path: e.Path, Err: err})
	}

	x.Progress.event(eventRemoved, e.Path, "")
	x.Outcome.removed(e.Kind)
	return nil
}

func (x *Executor) ListingFailed(path string, err error) error {
	return x.recordFailure(path, err)
}

// recordFailure folds a failure into the outcome and decides, per the
// configured policy, whether to keep going or to abort the run.
func (x *Executor) recordFailure(path string, err error) error {
	x.Outcome.failed(path, err)
	x.Progress.event(eventFailed, path, err.Error())

	if x.ContinueOnFailure {
		return nil
	}
	return &FatalError{Outcome: &x.Outcome, Err: err}
}
