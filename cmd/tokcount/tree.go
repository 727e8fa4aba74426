package main

import (
	"fmt"

	"github.com/fwojciec/tokcount"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	counter, err := deps.Counters(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	entries, err := counter.Tree(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No files found in %s.\n", c.Path)
		return nil
	}

	for _, e := range entries {
		fmt.Fprintln(deps.Stdout, treeLabel(e, deps.Suffix))
	}
	return nil
}

// treeLabel renders an entry as "name [badge suffix]". Directories end in
// a slash; entries without tokens show only their name.
func treeLabel(e *tokcount.TreeEntry, suffix string) string {
	name := e.Name
	if e.IsDir {
		name += "/"
	}
	if e.Tokens == 0 {
		return name
	}
	badge := tokcount.FormatBadge(e.Tokens)
	if suffix != "" {
		badge += " " + suffix
	}
	return fmt.Sprintf("%s [%s]", name, badge)
}
