package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/tokcount"
)

// Tree lists the immediate children of root with their token totals,
// directories first, then by name. Children that cannot be counted are
// listed with zero tokens.
func (c *Counter) Tree(ctx context.Context, root string) ([]*tokcount.TreeEntry, error) {
	root, err := absPath(root)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, tokcount.Errorf(tokcount.ENOTFOUND, "directory %q not found", root)
	}
	if err != nil {
		return nil, err
	}

	var entries []*tokcount.TreeEntry
	for _, d := range dirEntries {
		path := filepath.Join(root, d.Name())
		if c.excluded(path, root, d.Name(), d.IsDir()) {
			continue
		}

		entry := &tokcount.TreeEntry{Name: d.Name(), Path: path, IsDir: d.IsDir()}
		switch {
		case d.IsDir():
			if res, err := c.countDir(ctx, path, root); err == nil {
				entry.Tokens = res.Tokens
			}
		case d.Type().IsRegular():
			if res, err := c.CountFile(ctx, path); err == nil {
				entry.Tokens = res.Tokens
			}
		default:
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b *tokcount.TreeEntry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return entries, nil
}
