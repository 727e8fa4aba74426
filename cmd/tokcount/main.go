package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/bloom"
	"github.com/fwojciec/tokcount/fs"
	"github.com/fwojciec/tokcount/fsnotify"
	"github.com/fwojciec/tokcount/gemini"
	"github.com/fwojciec/tokcount/goquery"
	tcslog "github.com/fwojciec/tokcount/slog"
	"github.com/fwojciec/tokcount/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). Overridden by --db.
	DBPath string

	// YAML configuration files, lowest precedence first. Missing files
	// are ignored.
	ConfigPaths []string

	// Input for the words command.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CacheService tokcount.CacheService
	ScanService  tokcount.ScanService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{"~/.tokcount.yaml", ".tokcount.yaml"},
		Stdin:       os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tokcount"),
		kong.Description("Count tokens in text, files and directory trees."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAML, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Tokenizer = cli.Tokenizer
	deps.Suffix = cli.Suffix

	cmd := commandName(kongCtx.Command())
	switch cmd {
	case "", "sample", "words":
		return runCommand(kongCtx, deps)
	}

	// Open database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TOKCOUNT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CacheService = sqlite.NewCacheService(m.DB)
	m.ScanService = sqlite.NewScanService(m.DB)
	deps.Cache = m.CacheService
	deps.Scans = m.ScanService
	if cli.Verbose {
		deps.Cache = tcslog.NewLoggingCacheService(deps.Cache, deps.Logger)
	}

	if cmd == "cache" || cmd == "history" {
		return runCommand(kongCtx, deps)
	}

	tokens, err := newTokenCounter(cli.Tokenizer, cli.Model)
	if err != nil {
		return fmt.Errorf("failed to create token counter: %w", err)
	}
	if cli.Verbose {
		tokens = tcslog.NewLoggingTokenCounter(tokens, cli.Tokenizer, deps.Logger)
	}

	// Seed the bloom filter with every cached path so lookups for unseen
	// files skip the database.
	paths, err := m.CacheService.CachePaths(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cached paths: %w", err)
	}
	known := bloom.NewFilterFromPaths(paths, knownPathsHeadroom, knownPathsFPRate)

	var extractors map[string]tokcount.ContentExtractor
	if cli.StripHTML {
		extractors = goquery.Extractors()
	}
	filter := tokcount.NewFilter(cli.Exclude, cli.MaxFileSize)

	deps.Counters = func(root string) (tokcount.PathCounter, error) {
		ignore, err := fs.LoadIgnore(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read .gitignore: %w", err)
		}
		return &fs.Counter{
			Tokens:      tokens,
			Tokenizer:   cli.Tokenizer,
			Cache:       deps.Cache,
			Known:       known,
			Filter:      filter,
			Ignore:      ignore,
			Extractors:  extractors,
			Concurrency: cli.Concurrency,
		}, nil
	}

	deps.Watch = func(ctx context.Context, root string, onChange fsnotify.ChangeFunc) error {
		ignore, err := fs.LoadIgnore(root)
		if err != nil {
			return fmt.Errorf("failed to read .gitignore: %w", err)
		}
		w := fsnotify.NewWatcher(deps.Cache, onChange)
		w.Ignore = ignore
		return w.Watch(ctx, root)
	}

	return runCommand(kongCtx, deps)
}

// runCommand runs the selected command. Commands print their own failures,
// so their errors are marked as reported.
func runCommand(kongCtx *kong.Context, deps *Dependencies) error {
	if err := kongCtx.Run(deps); err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// reportedError wraps an error that was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// ReportError writes err to w unless a command already reported it.
func ReportError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, err)
}

// commandName returns the top-level command of a kong command path such
// as "count <path>" or "cache clear".
func commandName(path string) string {
	name, _, _ := strings.Cut(path, " ")
	return name
}

const (
	knownPathsHeadroom = 10000
	knownPathsFPRate   = 0.01
)

// newTokenCounter returns the TokenCounter for a tokenizer name.
func newTokenCounter(name, model string) (tokcount.TokenCounter, error) {
	switch name {
	case tokcount.TokenizerEstimate, "":
		return tokcount.Estimator{}, nil
	case tokcount.TokenizerWords:
		return tokcount.WordCounter{}, nil
	case tokcount.TokenizerGemini:
		tc, err := gemini.NewTokenCounter(model)
		if err != nil {
			return nil, err
		}
		return tc, nil
	default:
		return nil, tokcount.Errorf(tokcount.EINVALID, "unknown tokenizer %q", name)
	}
}

// newLogger returns a debug-level text logger on w when verbose, and a
// logger that discards otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("TOKCOUNT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tokcount.db"
	}
	dir := filepath.Join(home, ".tokcount")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tokcount.db")
}
