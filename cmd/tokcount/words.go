package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/tokcount"
)

// Run executes the words command.
func (c *WordsCmd) Run(deps *Dependencies) error {
	text := strings.Join(c.Text, " ")
	if len(c.Text) == 0 && deps.Stdin != nil {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to read standard input: %s\n", err)
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	fmt.Fprintln(deps.Stdout, tokcount.CountWords(text))
	return nil
}
