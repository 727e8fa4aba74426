package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/fsnotify"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Tokenizer string
	Suffix    string
	Cache     tokcount.CacheService
	Scans     tokcount.ScanService
	Counters  CounterFunc
	Watch     WatchFunc
}

// CounterFunc returns a PathCounter configured for the tree at root.
type CounterFunc func(root string) (tokcount.PathCounter, error)

// WatchFunc watches root until ctx is done, calling onChange with batches
// of changed paths.
type WatchFunc func(ctx context.Context, root string, onChange fsnotify.ChangeFunc) error

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string   `name:"db" env:"TOKCOUNT_DB" help:"Cache database path (default ~/.tokcount/tokcount.db)"`
	Tokenizer   string   `enum:"estimate,words,gemini" default:"estimate" env:"TOKCOUNT_TOKENIZER" help:"Tokenizer (${enum})"`
	Model       string   `default:"gemini-2.5-flash" env:"TOKCOUNT_MODEL" help:"Model for the gemini tokenizer"`
	Exclude     []string `short:"x" help:"Skip files with this extension (repeatable)"`
	MaxFileSize int64    `default:"1048576" help:"Skip files larger than this many bytes, 0 for no limit"`
	Suffix      string   `default:"tokens" help:"Text shown after counts"`
	StripHTML   bool     `name:"strip-html" default:"true" negatable:"" help:"Count only the text of HTML files"`
	Concurrency int      `short:"c" default:"8" help:"Files counted in parallel"`
	Verbose     bool     `short:"v" help:"Log debug output to stderr"`

	Sample  SampleCmd  `cmd:"" default:"1" help:"Count words in the built-in sample sentence"`
	Words   WordsCmd   `cmd:"" help:"Count words in arguments or standard input"`
	Count   CountCmd   `cmd:"" help:"Count tokens in files and directories"`
	Tree    TreeCmd    `cmd:"" help:"List a directory with token badges"`
	Watch   WatchCmd   `cmd:"" help:"Recount a directory whenever it changes"`
	History HistoryCmd `cmd:"" help:"List past counts"`
	Cache   CacheCmd   `cmd:"" help:"Manage cached token counts"`
}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct{}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	Text []string `arg:"" optional:"" help:"Text to count, standard input when empty"`
}

// CountCmd is the "count" subcommand.
type CountCmd struct {
	Paths []string `arg:"" name:"path" help:"Files or directories to count"`
	Files bool     `short:"f" help:"List every counted file under a directory"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Path string `arg:"" optional:"" default:"." help:"Directory to list"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Path string `arg:"" optional:"" default:"." help:"Directory to watch"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Path  string `short:"p" help:"Only show counts of this path"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// CacheCmd groups cache subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove all cached token counts"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
