package tokcount

import "context"

// FileResult is the outcome of counting one file.
type FileResult struct {
	Path    string
	Tokens  int
	Size    int64
	Skipped string // empty when counted
	Cached  bool
}

// DirResult is the outcome of counting a directory tree.
type DirResult struct {
	Path    string
	Tokens  int
	Files   int
	Skipped int
	Failed  int
	Entries []*FileResult
}

// TreeEntry is one immediate child of a listed directory.
type TreeEntry struct {
	Name   string
	Path   string
	IsDir  bool
	Tokens int
}

// PathCounter counts tokens in files and directory trees.
type PathCounter interface {
	// CountFile counts a single file.
	CountFile(ctx context.Context, path string) (*FileResult, error)

	// CountDir counts every eligible file below root.
	CountDir(ctx context.Context, root string) (*DirResult, error)

	// CountPath counts a file or a directory tree. The result for a file is
	// reported as a DirResult with a single entry.
	// Returns ENOTFOUND if path does not exist.
	CountPath(ctx context.Context, path string) (*DirResult, error)

	// Tree lists the immediate children of root with their token totals,
	// directories first, then by name.
	// Returns ENOTFOUND if root does not exist.
	Tree(ctx context.Context, root string) ([]*TreeEntry, error)
}
