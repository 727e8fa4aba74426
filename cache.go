package tokcount

import (
	"context"
	"time"
)

// CacheEntry is the stored token count of a single file.
type CacheEntry struct {
	Path      string    `json:"path"`
	Tokens    int       `json:"tokens"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"modTime"`
	Hash      string    `json:"hash"`
	Tokenizer string    `json:"tokenizer"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "cache entry path required")
	}
	if e.Tokens < 0 {
		return Errorf(EINVALID, "cache entry tokens must not be negative")
	}
	if e.Tokenizer == "" {
		return Errorf(EINVALID, "cache entry tokenizer required")
	}
	return nil
}

// Fresh reports whether the entry still describes a file with the given
// size and modification time, counted by tokenizer.
func (e *CacheEntry) Fresh(size int64, modTime time.Time, tokenizer string) bool {
	return e.Size == size && e.ModTime.Equal(modTime) && e.Tokenizer == tokenizer
}

// CacheService represents a service for managing cached token counts.
type CacheService interface {
	// FindCacheEntry retrieves the entry for path.
	// Returns ENOTFOUND if no entry exists.
	FindCacheEntry(ctx context.Context, path string) (*CacheEntry, error)

	// SaveCacheEntry creates or replaces the entry for entry.Path.
	SaveCacheEntry(ctx context.Context, entry *CacheEntry) error

	// DeleteCacheEntry removes the entry for path.
	// Returns ENOTFOUND if no entry exists.
	DeleteCacheEntry(ctx context.Context, path string) error

	// DeleteCacheEntriesUnder removes entries for dir and everything below it
	// and returns the number removed.
	DeleteCacheEntriesUnder(ctx context.Context, dir string) (int, error)

	// CachePaths returns the paths of all entries.
	CachePaths(ctx context.Context) ([]string, error)

	// ClearCache removes every entry and returns the number removed.
	ClearCache(ctx context.Context) (int, error)
}

// KnownPaths is a probabilistic set of cached paths. Test may report false
// positives but never false negatives, so a miss means the cache holds no
// entry for the path.
type KnownPaths interface {
	Add(path string)
	Test(path string) bool
}
