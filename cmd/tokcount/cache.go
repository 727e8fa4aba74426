package main

import (
	"fmt"

	"github.com/fwojciec/tokcount"
)

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.ClearCache(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tokcount.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached entries\n", n)
	return nil
}
