package main

import (
	"fmt"

	"github.com/fwojciec/tokcount"
)

// Run executes the sample command.
func (c *SampleCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Token count: %d\n", tokcount.CountWords(tokcount.SampleText))
	return nil
}
