package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tokcount"
)

// Ensure LoggingCacheService implements tokcount.CacheService.
var _ tokcount.CacheService = (*LoggingCacheService)(nil)

// LoggingCacheService wraps a CacheService with logging.
type LoggingCacheService struct {
	next   tokcount.CacheService
	logger *slog.Logger
}

// NewLoggingCacheService creates a new LoggingCacheService.
func NewLoggingCacheService(next tokcount.CacheService, logger *slog.Logger) *LoggingCacheService {
	return &LoggingCacheService{next: next, logger: logger}
}

// FindCacheEntry delegates to the wrapped service and logs hits and misses.
func (s *LoggingCacheService) FindCacheEntry(ctx context.Context, path string) (entry *tokcount.CacheEntry, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"path", path,
			"hit", entry != nil,
			"duration", time.Since(begin),
		}
		if err != nil && tokcount.ErrorCode(err) != tokcount.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		s.logger.Debug("cache lookup", attrs...)
	}(time.Now())
	return s.next.FindCacheEntry(ctx, path)
}

// SaveCacheEntry delegates to the wrapped service and logs the operation.
func (s *LoggingCacheService) SaveCacheEntry(ctx context.Context, entry *tokcount.CacheEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache save",
			"path", entry.Path,
			"tokens", entry.Tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveCacheEntry(ctx, entry)
}

// DeleteCacheEntry delegates to the wrapped service and logs the operation.
func (s *LoggingCacheService) DeleteCacheEntry(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache delete",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCacheEntry(ctx, path)
}

// DeleteCacheEntriesUnder delegates to the wrapped service and logs the operation.
func (s *LoggingCacheService) DeleteCacheEntriesUnder(ctx context.Context, dir string) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache delete tree",
			"dir", dir,
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCacheEntriesUnder(ctx, dir)
}

// CachePaths delegates to the wrapped service.
func (s *LoggingCacheService) CachePaths(ctx context.Context) ([]string, error) {
	return s.next.CachePaths(ctx)
}

// ClearCache delegates to the wrapped service and logs the operation.
func (s *LoggingCacheService) ClearCache(ctx context.Context) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache clear",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearCache(ctx)
}
