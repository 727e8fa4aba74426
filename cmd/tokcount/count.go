package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	for _, path := range c.Paths {
		if err := c.count(deps, path); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
			return err
		}
	}
	return nil
}

func (c *CountCmd) count(deps *Dependencies, path string) error {
	counter, err := deps.Counters(path)
	if err != nil {
		return err
	}

	res, err := counter.CountPath(deps.Ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
		tokcount.FormatBadge(res.Tokens), formatTooltip(res.Tokens, deps.Suffix), path)

	if c.Files {
		for _, e := range res.Entries {
			if e.Path == res.Path {
				continue
			}
			rel, err := filepath.Rel(res.Path, e.Path)
			if err != nil {
				rel = e.Path
			}
			if e.Skipped != "" {
				fmt.Fprintf(deps.Stdout, "  -  skipped (%s)  %s\n", e.Skipped, rel)
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %s  %s  %s\n",
				tokcount.FormatBadge(e.Tokens), formatTooltip(e.Tokens, deps.Suffix), rel)
		}
	}

	if res.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d files under %s could not be counted\n", res.Failed, path)
	}

	if deps.Scans == nil {
		return nil
	}
	root, err := filepath.Abs(path)
	if err != nil {
		root = path
	}
	return deps.Scans.CreateScan(deps.Ctx, &tokcount.Scan{
		Root:      root,
		Tokenizer: deps.Tokenizer,
		Files:     res.Files,
		Tokens:    res.Tokens,
	})
}
