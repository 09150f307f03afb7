// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

// Package zone provides access to the collections, data objects and
// groups of a remote data-management zone. Two implementations exist:
// one shelling out to the icommands, one talking to the zone's HTTP
// API.
package zone

import "fmt"

// Client is the remote-access surface the commands run against.
//
// ListChildren returns only the direct children of a collection,
// split into sub-collection names and data object names. Deletion of
// a collection requires it to be empty unless the backend removes
// recursively; callers are expected to delete children first.
type Client interface {
	CollectionExists(path string) (bool, error)
	ListChildren(path string) (collections, objects []string, err error)
	DeleteCollection(path string, permanent bool) error
	DeleteDataObject(path string, permanent bool) error

	// FindDataObjectsByName returns the full paths of data objects
	// under root (inclusive) whose name matches the given pattern,
	// which may contain the * and ? wildcards.
	FindDataObjectsByName(root, pattern string) ([]string, error)

	GroupExists(name string) (bool, error)
	GroupAttribute(group, attribute string) (string, error)
}

// ListingError reports that the children of a collection could not be
// enumerated.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing %s: %v", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// DeletionError reports that a single collection or data object could
// not be removed.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("removing %s: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }
