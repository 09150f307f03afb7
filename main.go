// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

// ztools is a family of administrative command-line utilities for a
// data-management zone: collections, data objects, users and groups.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type rootOptions struct {
	Rmtree    rmtreeOptions    `command:"rmtree" description:"recursively remove a collection tree, depth-first"`
	Cleanup   cleanupOptions   `command:"cleanup" description:"remove unwanted data objects such as thumbnail caches"`
	Groupinfo groupinfoOptions `command:"groupinfo" description:"show information about a research group"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts rootOptions

	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				return 0
			}
		} else {
			// go-flags only prints its own error type
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}
