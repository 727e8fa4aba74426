package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/tokcount"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := tokcount.ScanFilter{Limit: c.Limit}
	if c.Path != "" {
		root, err := filepath.Abs(c.Path)
		if err != nil {
			root = c.Path
		}
		filter.Root = &root
	}

	scans, err := deps.Scans.FindScans(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No counts recorded yet. Use 'tokcount count' to create one.")
		return nil
	}

	for _, s := range scans {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), formatTooltip(s.Tokens, deps.Suffix), s.Root)
	}
	return nil
}
