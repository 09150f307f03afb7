// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

// Package rmtree removes a collection tree from the zone, depth-first
// so that even trees too large for a single recursive remove on the
// server side come down in small steps.
package rmtree

import (
	"sort"
	"strings"

	"github.com/irods-contrib/ztools/internal/zone"
)

type Kind string

const (
	KindCollection Kind = "collection"
	KindDataObject Kind = "data object"
)

// Entry is one planned removal. Entries are produced in strict
// post-order: everything below a collection is planned before the
// collection itself.
type Entry struct {
	Path  string
	Kind  Kind
	Depth int
}

// Visitor consumes the plan as it is produced.
//
// VisitEntry is called once per planned removal, in post-order.
// ListingFailed is called when the children of a collection could not
// be enumerated; returning nil skips that subtree and continues the
// walk, returning an error aborts it.
type Visitor interface {
	VisitEntry(Entry) error
	ListingFailed(path string, err error) error
}

// Walker enumerates the tree under Root. The walk is lazy: nothing is
// listed ahead of what the visitor has consumed, so memory stays
// bounded on very large trees.
type Walker struct {
	Client   zone.Client
	Root     string
	MinDepth int
	KeepRoot bool
}

// Walk drives the visitor over the tree in post-order. The depth
// guard is checked first: a root above the configured floor is
// rejected before any remote call is made.
func (w *Walker) Walk(v Visitor) error {
	root := strings.TrimSuffix(w.Root, "/")

	if err := CheckDepth(root, w.MinDepth); err != nil {
		return err
	}

	return w.walk(root, v, w.KeepRoot)
}

func (w *Walker) walk(path string, v Visitor, keep bool) error {
	collections, objects, err := w.Client.ListChildren(path)
	if err != nil {
		return v.ListingFailed(path, &zone.ListingError{Path: path, Err: err})
	}

	// Sibling order is unspecified by the catalog; sort so that two
	// runs over the same tree produce the same plan.
	sort.Strings(collections)
	sort.Strings(objects)

	for _, name := range collections {
		if err := w.walk(zone.Join(path, name), v, false); err != nil {
			return err
		}
	}

	for _, name := range objects {
		child := zone.Join(path, name)
		if err := v.VisitEntry(Entry{Path: child, Kind: KindDataObject, Depth: zone.Depth(child)}); err != nil {
			return err
		}
	}

	if keep {
		return nil
	}

	return v.VisitEntry(Entry{Path: path, Kind: KindCollection, Depth: zone.Depth(path)})
}
