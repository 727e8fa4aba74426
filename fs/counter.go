// Package fs counts tokens in files and directory trees on the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tokcount"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files counted in parallel.
const DefaultConcurrency = 8

// Ensure Counter implements tokcount.PathCounter at compile time.
var _ tokcount.PathCounter = (*Counter)(nil)

// Counter counts tokens in files, caching per-file results.
// Cache, Known, Filter, Ignore and Extractors are optional.
type Counter struct {
	Tokens      tokcount.TokenCounter
	Tokenizer   string
	Cache       tokcount.CacheService
	Known       tokcount.KnownPaths
	Filter      *tokcount.Filter
	Ignore      *tokcount.IgnoreMatcher
	Extractors  map[string]tokcount.ContentExtractor
	Concurrency int
}

// CountPath counts a file or a directory tree.
// Paths in the result are absolute.
func (c *Counter) CountPath(ctx context.Context, path string) (*tokcount.DirResult, error) {
	path, err := absPath(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, tokcount.Errorf(tokcount.ENOTFOUND, "path %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return c.countDir(ctx, path, path)
	}

	res, err := c.countFile(ctx, path, info)
	if err != nil {
		return nil, err
	}

	dir := &tokcount.DirResult{Path: path, Entries: []*tokcount.FileResult{res}}
	if res.Skipped != "" {
		dir.Skipped = 1
	} else {
		dir.Files = 1
		dir.Tokens = res.Tokens
	}
	return dir, nil
}

// CountFile counts a single file.
func (c *Counter) CountFile(ctx context.Context, path string) (*tokcount.FileResult, error) {
	path, err := absPath(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, tokcount.Errorf(tokcount.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, tokcount.Errorf(tokcount.EINVALID, "%q is a directory", path)
	}
	return c.countFile(ctx, path, info)
}

// CountDir counts every eligible file below root.
func (c *Counter) CountDir(ctx context.Context, root string) (*tokcount.DirResult, error) {
	root, err := absPath(root)
	if err != nil {
		return nil, err
	}
	return c.countDir(ctx, root, root)
}

func (c *Counter) countFile(ctx context.Context, path string, info os.FileInfo) (*tokcount.FileResult, error) {
	res := &tokcount.FileResult{Path: path, Size: info.Size()}

	if ok, reason := c.Filter.Allows(path, info.Size()); !ok {
		res.Skipped = reason
		return res, nil
	}

	cached, err := c.lookup(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}
	if cached != nil && cached.Fresh(info.Size(), info.ModTime(), c.Tokenizer) {
		res.Tokens = cached.Tokens
		res.Cached = true
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)
	hash := computeHash(content)

	// Touched but unchanged files keep their count.
	if cached != nil && cached.Hash == hash && cached.Tokenizer == c.Tokenizer {
		res.Tokens = cached.Tokens
		res.Cached = true
	} else {
		text, err := c.extract(path, content)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
		}
		res.Tokens, err = c.Tokens.CountTokens(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("count tokens: %w", err)
		}
	}

	if err := c.save(ctx, &tokcount.CacheEntry{
		Path:      path,
		Tokens:    res.Tokens,
		Size:      info.Size(),
		ModTime:   info.ModTime().UTC(),
		Hash:      hash,
		Tokenizer: c.Tokenizer,
	}); err != nil {
		return nil, fmt.Errorf("cache save: %w", err)
	}

	return res, nil
}

// fileOutcome holds the outcome of counting a single file.
type fileOutcome struct {
	index int
	res   *tokcount.FileResult
	err   error
}

// countDir counts files below root. Ignore rules are matched against paths
// relative to base.
func (c *Counter) countDir(ctx context.Context, root, base string) (*tokcount.DirResult, error) {
	result := &tokcount.DirResult{Path: root}

	files, failed, err := c.collect(root, base)
	if err != nil {
		return nil, err
	}
	result.Failed = failed

	outcomes := make(chan fileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	go func() {
		for i, path := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					outcomes <- fileOutcome{index: i, err: err}
					return nil
				}
				res, err := c.CountFile(gctx, path)
				outcomes <- fileOutcome{index: i, res: res, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	var total tokcount.Counter
	entries := make([]*tokcount.FileResult, len(files))
	for out := range outcomes {
		if out.err != nil {
			result.Failed++
			continue
		}
		entries[out.index] = out.res
		if out.res.Skipped != "" {
			result.Skipped++
			continue
		}
		total.Add(out.res.Tokens)
		result.Files++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Tokens = total.Count()
	result.Entries = slices.DeleteFunc(entries, func(e *tokcount.FileResult) bool { return e == nil })
	return result, nil
}

// collect walks root in lexical order and returns the files to count and
// the number of entries that could not be read.
func (c *Counter) collect(root, base string) (files []string, failed int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			failed++
			return nil
		}
		if path == root {
			return nil
		}

		if c.excluded(path, base, d.Name(), d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, tokcount.Errorf(tokcount.ENOTFOUND, "directory %q not found", root)
	}
	return files, failed, err
}

// excluded applies hidden, default and .gitignore exclusions.
func (c *Counter) excluded(path, base, name string, isDir bool) bool {
	if tokcount.IsHidden(name) {
		return true
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = name
	}
	rel = filepath.ToSlash(rel)
	return tokcount.IsDefaultExcluded(rel) || c.Ignore.Match(rel, isDir)
}

func (c *Counter) lookup(ctx context.Context, path string) (*tokcount.CacheEntry, error) {
	if c.Cache == nil {
		return nil, nil
	}
	if c.Known != nil && !c.Known.Test(path) {
		return nil, nil
	}
	entry, err := c.Cache.FindCacheEntry(ctx, path)
	if tokcount.ErrorCode(err) == tokcount.ENOTFOUND {
		return nil, nil
	}
	return entry, err
}

func (c *Counter) save(ctx context.Context, entry *tokcount.CacheEntry) error {
	if c.Cache == nil {
		return nil
	}
	if err := c.Cache.SaveCacheEntry(ctx, entry); err != nil {
		return err
	}
	if c.Known != nil {
		c.Known.Add(entry.Path)
	}
	return nil
}

func (c *Counter) extract(path, content string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if x, ok := c.Extractors[ext]; ok {
		return x.ExtractText(content)
	}
	return content, nil
}

func (c *Counter) concurrency() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}

// absPath resolves path against the working directory. Cache entries are
// keyed by absolute path so that the same relative name in two trees
// never shares an entry.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
