package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/tokcount"
)

// Compile-time interface verification.
var _ tokcount.CacheService = (*CacheService)(nil)

// CacheService implements tokcount.CacheService using SQLite.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// FindCacheEntry retrieves the entry for path.
func (s *CacheService) FindCacheEntry(ctx context.Context, path string) (*tokcount.CacheEntry, error) {
	var entry tokcount.CacheEntry
	var modTime int64

	err := s.db.QueryRowContext(ctx, `
		SELECT path, tokens, size, mod_time, hash, tokenizer
		FROM cache_entries
		WHERE path = ?
	`, path).Scan(&entry.Path, &entry.Tokens, &entry.Size, &modTime, &entry.Hash, &entry.Tokenizer)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, tokcount.Errorf(tokcount.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.ModTime = time.Unix(0, modTime).UTC()
	return &entry, nil
}

// SaveCacheEntry creates or replaces the entry for entry.Path.
func (s *CacheService) SaveCacheEntry(ctx context.Context, entry *tokcount.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (path, tokens, size, mod_time, hash, tokenizer)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			tokens = excluded.tokens,
			size = excluded.size,
			mod_time = excluded.mod_time,
			hash = excluded.hash,
			tokenizer = excluded.tokenizer
	`, entry.Path, entry.Tokens, entry.Size, entry.ModTime.UnixNano(), entry.Hash, entry.Tokenizer)

	return err
}

// DeleteCacheEntry removes the entry for path.
func (s *CacheService) DeleteCacheEntry(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE path = ?", path)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return tokcount.Errorf(tokcount.ENOTFOUND, "cache entry not found")
	}

	return nil
}

// DeleteCacheEntriesUnder removes entries for dir and everything below it.
func (s *CacheService) DeleteCacheEntriesUnder(ctx context.Context, dir string) (int, error) {
	prefix := strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM cache_entries
		WHERE path = ? OR path LIKE ? ESCAPE '\'
	`, dir, escapeLike(prefix)+"%")
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	return int(rows), err
}

// CachePaths returns the paths of all entries.
func (s *CacheService) CachePaths(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path FROM cache_entries ORDER BY path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}

// ClearCache removes every entry.
func (s *CacheService) ClearCache(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries")
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	return int(rows), err
}
