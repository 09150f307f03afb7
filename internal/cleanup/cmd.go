// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

// Package cleanup finds and removes data objects that typically have
// to be cleaned up before a dataset is archived, such as resource
// forks and thumbnail caches.
package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/irods-contrib/ztools/internal/config"
	"github.com/irods-contrib/ztools/internal/zone"
)

var defaultPatterns = []string{
	"._*",       // MacOS resource forks
	".DS_Store", // MacOS custom folder attributes
	"Thumbs.db", // Windows thumbnail images
}

type Options struct {
	DryRun bool `short:"d" long:"dry-run" description:"only show what would be removed"`
	Yes    bool `short:"y" long:"yes" description:"do not ask for confirmation"`

	Args struct {
		Collection string `positional-arg-name:"<collection>" description:"remove unwanted data objects in this collection and its subcollections"`
	} `positional-args:"true" required:"true"`
}

func (opts *Options) Execute(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := zone.Connect(cfg.API)
	if err != nil {
		return err
	}

	patterns := append(defaultPatterns, cfg.CleanupPatterns...)

	return Run(client, *opts, patterns, os.Stdin, os.Stdout)
}

func Run(client zone.Client, opts Options, patterns []string, in io.Reader, out io.Writer) error {
	root := opts.Args.Collection

	if !zone.IsAbsolute(root) {
		return fmt.Errorf("collection path must be absolute, for safety reasons")
	}
	if zone.ContainsDotDot(root) {
		return fmt.Errorf("collection path must not contain .., for safety reasons")
	}

	exists, err := client.CollectionExists(root)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("collection %s does not exist (or you don't have access)", root)
	}

	objects, err := findObjects(client, root, patterns)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		fmt.Fprintln(out, "No data objects to remove have been found.")
		return nil
	}

	fmt.Fprintln(out, "The following data objects have been found:")
	for _, path := range objects {
		fmt.Fprintf(out, " - %s\n", path)
	}

	if opts.DryRun {
		return nil
	}

	if !opts.Yes {
		ok, err := confirm(in, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	var failed int
	for _, path := range objects {
		if err := client.DeleteDataObject(path, true); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "Removed %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d removals failed", failed)
	}

	return nil
}

func findObjects(client zone.Client, root string, patterns []string) ([]string, error) {
	seen := map[string]bool{}

	var objects []string
	for _, pattern := range patterns {
		paths, err := client.FindDataObjectsByName(root, pattern)
		if err != nil {
			return nil, err
		}

		// patterns may overlap
		for _, path := range paths {
			if !seen[path] {
				seen[path] = true
				objects = append(objects, path)
			}
		}
	}

	sort.Strings(objects)
	return objects, nil
}

func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "Do you want to remove these data objects (yes/no)? ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
