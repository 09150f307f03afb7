// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package rmtree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bloomberg/go-testgroup"
)

const testRoot = "/zoneA/home/research-x/data"

// testTree builds the reference tree: one sub-collection sub1 holding
// a.txt, and b.txt directly under the root.
func testTree() *fakeZone {
	f := newFakeZone()
	f.addCollection(testRoot, []string{"sub1"}, []string{"b.txt"})
	f.addCollection(testRoot+"/sub1", nil, []string{"a.txt"})
	return f
}

// planRecorder is a Visitor that just collects what the walker
// produces.
type planRecorder struct {
	entries  []Entry
	failures []string
	abortOn  string // listing failure on this path aborts the walk
}

func (r *planRecorder) VisitEntry(e Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *planRecorder) ListingFailed(path string, err error) error {
	r.failures = append(r.failures, path)
	if path == r.abortOn {
		return err
	}
	return nil
}

func paths(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func Test_Walker(t *testing.T) {
	testgroup.RunInParallel(t, &WalkerTests{})
}

type WalkerTests struct{}

func (*WalkerTests) Plan_is_post_order(t *testgroup.T) {
	zone := testTree()
	var plan planRecorder

	w := &Walker{Client: zone, Root: testRoot, MinDepth: 3}
	t.Require.NoError(w.Walk(&plan))

	t.Equal([]Entry{
		{Path: testRoot + "/sub1/a.txt", Kind: KindDataObject, Depth: 6},
		{Path: testRoot + "/sub1", Kind: KindCollection, Depth: 5},
		{Path: testRoot + "/b.txt", Kind: KindDataObject, Depth: 5},
		{Path: testRoot, Kind: KindCollection, Depth: 4},
	}, plan.entries)
}

func (*WalkerTests) Keep_root_omits_the_root_entry(t *testgroup.T) {
	zone := testTree()
	var plan planRecorder

	w := &Walker{Client: zone, Root: testRoot, MinDepth: 3, KeepRoot: true}
	t.Require.NoError(w.Walk(&plan))

	t.Equal([]string{
		testRoot + "/sub1/a.txt",
		testRoot + "/sub1",
		testRoot + "/b.txt",
	}, paths(plan.entries))
}

func (*WalkerTests) Trailing_slash_on_the_root_is_ignored(t *testgroup.T) {
	zone := testTree()
	var plan planRecorder

	w := &Walker{Client: zone, Root: testRoot + "/", MinDepth: 3}
	t.Require.NoError(w.Walk(&plan))

	t.Equal(testRoot, plan.entries[len(plan.entries)-1].Path)
}

func (*WalkerTests) Depth_guard_rejects_shallow_roots(t *testgroup.T) {
	zone := testTree()
	var plan planRecorder

	w := &Walker{Client: zone, Root: testRoot, MinDepth: 5}
	err := w.Walk(&plan)

	var guardErr *DepthGuardError
	t.Require.True(errors.As(err, &guardErr), "expected a DepthGuardError, got %v", err)
	t.Equal(4, guardErr.Depth)
	t.Equal(5, guardErr.MinDepth)

	// rejected before any remote call
	t.Empty(zone.listed)
	t.Empty(plan.entries)
}

func (*WalkerTests) Sibling_order_is_lexicographic(t *testgroup.T) {
	zone := newFakeZone()
	zone.addCollection(testRoot, []string{"zz", "aa"}, []string{"2.txt", "1.txt"})
	zone.addCollection(testRoot+"/aa", nil, nil)
	zone.addCollection(testRoot+"/zz", nil, nil)

	var plan planRecorder
	w := &Walker{Client: zone, Root: testRoot, MinDepth: 3}
	t.Require.NoError(w.Walk(&plan))

	t.Equal([]string{
		testRoot + "/aa",
		testRoot + "/zz",
		testRoot + "/1.txt",
		testRoot + "/2.txt",
		testRoot,
	}, paths(plan.entries))
}

func (*WalkerTests) Listing_failure_skips_the_subtree_and_continues(t *testgroup.T) {
	zone := testTree()
	zone.listErrs[testRoot+"/sub1"] = fmt.Errorf("connection reset")

	var plan planRecorder
	w := &Walker{Client: zone, Root: testRoot, MinDepth: 3}
	t.Require.NoError(w.Walk(&plan))

	t.Equal([]string{testRoot + "/sub1"}, plan.failures)
	t.Equal([]string{
		testRoot + "/b.txt",
		testRoot,
	}, paths(plan.entries))
}

func (*WalkerTests) Listing_failure_aborts_when_the_visitor_says_so(t *testgroup.T) {
	zone := testTree()
	zone.listErrs[testRoot+"/sub1"] = fmt.Errorf("connection reset")

	plan := planRecorder{abortOn: testRoot + "/sub1"}
	w := &Walker{Client: zone, Root: testRoot, MinDepth: 3}
	err := w.Walk(&plan)

	t.Require.Error(err)
	t.Empty(plan.entries) // nothing after the failing node
}
