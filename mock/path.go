package mock

import (
	"context"

	"github.com/fwojciec/tokcount"
)

var _ tokcount.PathCounter = (*PathCounter)(nil)

// PathCounter is a mock implementation of tokcount.PathCounter.
type PathCounter struct {
	CountFileFn func(ctx context.Context, path string) (*tokcount.FileResult, error)
	CountDirFn  func(ctx context.Context, root string) (*tokcount.DirResult, error)
	CountPathFn func(ctx context.Context, path string) (*tokcount.DirResult, error)
	TreeFn      func(ctx context.Context, root string) ([]*tokcount.TreeEntry, error)
}

func (c *PathCounter) CountFile(ctx context.Context, path string) (*tokcount.FileResult, error) {
	return c.CountFileFn(ctx, path)
}

func (c *PathCounter) CountDir(ctx context.Context, root string) (*tokcount.DirResult, error) {
	return c.CountDirFn(ctx, root)
}

func (c *PathCounter) CountPath(ctx context.Context, path string) (*tokcount.DirResult, error) {
	return c.CountPathFn(ctx, path)
}

func (c *PathCounter) Tree(ctx context.Context, root string) ([]*tokcount.TreeEntry, error) {
	return c.TreeFn(ctx, root)
}
