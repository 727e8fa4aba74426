package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/tokcount/cmd/tokcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a database in a temp directory and
// no configuration files.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.ConfigPaths = nil
	m.Stdin = strings.NewReader("")
	return m
}

// run executes args against m and returns stdout.
func run(t *testing.T, m *main.Main, args ...string) string {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	require.NoError(t, err, stderr.String())
	return stdout.String()
}

// setupProject writes a small tree:
//
//	a.txt       3 words
//	notes.md    2 words
//	page.html   2 words of text
//	logo.png    excluded by --exclude
//	sub/b.txt   1 word
func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.txt":     "one two three",
		"notes.md":  "four five",
		"page.html": "<html><head><style>p { color: red }</style></head><body><p>six seven</p></body></html>",
		"logo.png":  "binary",
		"sub/b.txt": "eight",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"sample", "words", "count", "tree", "watch", "history", "cache"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		out := run(t, newTestMain(t), "--help")

		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "Flags:")
		assert.Contains(t, out, "count")
	})

	t.Run("runs sample without arguments", func(t *testing.T) {
		t.Parallel()

		out := run(t, newTestMain(t))

		assert.Equal(t, "Token count: 13\n", out)
	})

	t.Run("sample does not open the database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "test.db")

		out := run(t, m, "sample")

		assert.Equal(t, "Token count: 13\n", out)
		assert.NoFileExists(t, m.DBPath)
	})

	t.Run("counts words from standard input", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Stdin = strings.NewReader("the quick brown fox\n")

		out := run(t, m, "words")

		assert.Equal(t, "4\n", out)
	})

	t.Run("counts a directory with the words tokenizer", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		m := newTestMain(t)

		out := run(t, m, "--tokenizer", "words", "--exclude", ".png", "count", root)

		assert.Equal(t, "8  8 tokens  "+root+"\n", out)
	})

	t.Run("counts html markup without stripping", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		page := filepath.Join(root, "page.html")

		stripped := run(t, newTestMain(t), "--tokenizer", "words", "count", page)
		raw := run(t, newTestMain(t), "--tokenizer", "words", "--no-strip-html", "count", page)

		assert.Equal(t, "2  2 tokens  "+page+"\n", stripped)
		assert.NotEqual(t, stripped, raw)
	})

	t.Run("records counts in history", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		m := newTestMain(t)

		run(t, m, "--tokenizer", "words", "count", filepath.Join(root, "a.txt"))
		out := run(t, m, "history")

		assert.Contains(t, out, "3 tokens  "+filepath.Join(root, "a.txt"))
	})

	t.Run("lists a tree", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)

		out := run(t, newTestMain(t), "--tokenizer", "words", "--exclude", ".png", "tree", root)

		expected := "sub/ [1 tokens]\n" +
			"a.txt [3 tokens]\n" +
			"logo.png\n" +
			"notes.md [2 tokens]\n" +
			"page.html [2 tokens]\n"
		assert.Equal(t, expected, out)
	})

	t.Run("clears the cache", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		m := newTestMain(t)

		run(t, m, "--tokenizer", "words", "count", filepath.Join(root, "a.txt"))
		out := run(t, m, "cache", "clear")

		assert.Equal(t, "Removed 1 cached entries\n", out)
	})

	t.Run("reads configuration files", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		m := newTestMain(t)
		m.ConfigPaths = []string{writeConfig(t, "tokenizer: words\nsuffix: words\n")}

		out := run(t, m, "count", filepath.Join(root, "notes.md"))

		assert.Equal(t, "2  2 words  "+filepath.Join(root, "notes.md")+"\n", out)
	})

	t.Run("logs debug output with --verbose", func(t *testing.T) {
		t.Parallel()

		root := setupProject(t)
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(),
			[]string{"--verbose", "--tokenizer", "words", "count", filepath.Join(root, "a.txt")},
			&bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "token count")
		assert.Contains(t, stderr.String(), "cache save")
	})

	t.Run("rejects unknown tokenizer", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(),
			[]string{"--tokenizer", "bpe", "count", "."}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Error(t, err)
	})

	t.Run("reports missing paths", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		missing := filepath.Join(t.TempDir(), "missing")

		err := newTestMain(t).Run(context.Background(), []string{"count", missing}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestReportError(t *testing.T) {
	t.Parallel()

	t.Run("prints a failed command once", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		missing := filepath.Join(t.TempDir(), "missing")

		err := newTestMain(t).Run(context.Background(), []string{"count", missing}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		main.ReportError(stderr, err)

		lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
		require.Len(t, lines, 1)
		assert.True(t, strings.HasPrefix(lines[0], "error: "), lines[0])
		assert.Contains(t, lines[0], "not found")
	})

	t.Run("prints errors no command reported", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(),
			[]string{"--tokenizer", "bpe", "count", "."}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		main.ReportError(stderr, err)

		assert.Contains(t, stderr.String(), "bpe")
	})
}

