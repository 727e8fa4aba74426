package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/tokcount"
)

// Run executes the watch command. It prints the current total, then a new
// total after every batch of changes, until interrupted.
func (c *WatchCmd) Run(deps *Dependencies) error {
	counter, err := deps.Counters(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	report := func(ctx context.Context, changed int) error {
		res, err := counter.CountPath(ctx, c.Path)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s  %s  %s", tokcount.FormatBadge(res.Tokens), formatTooltip(res.Tokens, deps.Suffix), c.Path)
		if changed > 0 {
			line += fmt.Sprintf("  (%d changed)", changed)
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", time.Now().Format(time.TimeOnly), line)
		return nil
	}

	if err := report(deps.Ctx, 0); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	err = deps.Watch(deps.Ctx, c.Path, func(ctx context.Context, paths []string) error {
		logger.Debug("recount", "path", c.Path, "changed", len(paths))
		return report(ctx, len(paths))
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}
	return nil
}
