// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package rmtree

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/irods-contrib/ztools/internal/config"
	"github.com/irods-contrib/ztools/internal/zone"
)

type Options struct {
	MinDepth        *int `short:"m" long:"min-depth" value-name:"N" description:"minimum depth of the tree to remove (default: 3)"`
	KeepRoot        bool `short:"k" long:"keep-collection-itself" description:"only remove the contents, keep the collection itself"`
	Force           bool `short:"f" long:"force" description:"remove permanently instead of moving data to the trash"`
	DryRun          bool `short:"d" long:"dry-run" description:"only show what would be removed"`
	ContinueFailure bool `short:"c" long:"continue-failure" description:"continue if an error occurs while removing data"`
	Verbose         bool `short:"v" long:"verbose" description:"print a progress line for every removal"`

	Args struct {
		Collection string `positional-arg-name:"<collection>" description:"absolute path of the collection to remove"`
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

	minDepth := cfg.EffectiveMinDepth()
	if opts.MinDepth != nil {
		minDepth = *opts.MinDepth
	}

	tty := term.IsTerminal(int(os.Stderr.Fd()))

	return Run(client, *opts, minDepth, tty, os.Stdout, os.Stderr)
}

// Run performs one removal invocation: sanity gates, depth guard,
// post-order walk, execution, summary. The returned error is non-nil
// whenever anything failed, so the process exit status reflects
// partial failure too.
func Run(client zone.Client, opts Options, minDepth int, tty bool, stdout, stderr io.Writer) error {
	root := opts.Args.Collection

	if !zone.IsAbsolute(root) {
		return fmt.Errorf("collection path must be absolute, for safety reasons")
	}
	if zone.ContainsDotDot(root) {
		return fmt.Errorf("collection path must not contain .., for safety reasons")
	}
	if minDepth < 0 {
		return fmt.Errorf("minimum depth must not be negative")
	}
	if err := CheckDepth(root, minDepth); err != nil {
		return err
	}

	exists, err := client.CollectionExists(root)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("collection %s does not exist (or you don't have access)", root)
	}

	var prog progress
	switch {
	case opts.Verbose || opts.DryRun:
		prog = newPlainProgress(stderr)
	case tty:
		prog = newANSIProgress(stderr)
	default:
		prog = quietProgress{}
	}

	walker := &Walker{
		Client:   client,
		Root:     root,
		MinDepth: minDepth,
		KeepRoot: opts.KeepRoot,
	}
	executor := &Executor{
		Client:            client,
		DryRun:            opts.DryRun,
		Force:             opts.Force,
		ContinueOnFailure: opts.ContinueFailure,
		Progress:          prog,
	}

	walkErr := walker.Walk(executor)
	prog.done()

	executor.Outcome.Report(stdout, opts.DryRun)

	if walkErr != nil {
		return walkErr
	}
	if n := len(executor.Outcome.Failures); n > 0 {
		return fmt.Errorf("%d removals failed", n)
	}

	return nil
}
