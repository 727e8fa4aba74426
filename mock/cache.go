package mock

import (
	"context"

	"github.com/fwojciec/tokcount"
)

var _ tokcount.CacheService = (*CacheService)(nil)

// CacheService is a mock implementation of tokcount.CacheService.
type CacheService struct {
	FindCacheEntryFn          func(ctx context.Context, path string) (*tokcount.CacheEntry, error)
	SaveCacheEntryFn          func(ctx context.Context, entry *tokcount.CacheEntry) error
	DeleteCacheEntryFn        func(ctx context.Context, path string) error
	DeleteCacheEntriesUnderFn func(ctx context.Context, dir string) (int, error)
	CachePathsFn              func(ctx context.Context) ([]string, error)
	ClearCacheFn              func(ctx context.Context) (int, error)
}

func (s *CacheService) FindCacheEntry(ctx context.Context, path string) (*tokcount.CacheEntry, error) {
	return s.FindCacheEntryFn(ctx, path)
}

func (s *CacheService) SaveCacheEntry(ctx context.Context, entry *tokcount.CacheEntry) error {
	return s.SaveCacheEntryFn(ctx, entry)
}

func (s *CacheService) DeleteCacheEntry(ctx context.Context, path string) error {
	return s.DeleteCacheEntryFn(ctx, path)
}

func (s *CacheService) DeleteCacheEntriesUnder(ctx context.Context, dir string) (int, error) {
	return s.DeleteCacheEntriesUnderFn(ctx, dir)
}

func (s *CacheService) CachePaths(ctx context.Context) ([]string, error) {
	return s.CachePathsFn(ctx)
}

func (s *CacheService) ClearCache(ctx context.Context) (int, error) {
	return s.ClearCacheFn(ctx)
}

var _ tokcount.KnownPaths = (*KnownPaths)(nil)

// KnownPaths is a mock implementation of tokcount.KnownPaths.
type KnownPaths struct {
	AddFn  func(path string)
	TestFn func(path string) bool
}

func (k *KnownPaths) Add(path string) {
	k.AddFn(path)
}

func (k *KnownPaths) Test(path string) bool {
	return k.TestFn(path)
}
