// Package fsnotify watches directory trees and invalidates cached token
// counts when files change.
package fsnotify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/tokcount"
	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum time between two OnChange calls.
const DefaultInterval = 500 * time.Millisecond

// ChangeFunc receives the paths that changed since the previous call,
// sorted. Returning an error stops the watcher.
type ChangeFunc func(ctx context.Context, paths []string) error

// Watcher watches a directory tree. Cache entries for changed paths are
// deleted as events arrive; OnChange is called with batches of changed
// paths at most once per Interval.
type Watcher struct {
	Cache    tokcount.CacheService
	Ignore   *tokcount.IgnoreMatcher
	Interval time.Duration
	OnChange ChangeFunc

	root    string
	fw      *fsnotify.Watcher
	pending map[string]struct{}
}

// NewWatcher creates a new Watcher.
func NewWatcher(cache tokcount.CacheService, onChange ChangeFunc) *Watcher {
	return &Watcher{
		Cache:    cache,
		Interval: DefaultInterval,
		OnChange: onChange,
	}
}

// Watch opens the watcher on root and runs it until ctx is done.
func (w *Watcher) Watch(ctx context.Context, root string) error {
	if err := w.Open(root); err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx)
}

// Open starts watching root and every non-excluded directory below it.
// Event paths, and the cache keys invalidated for them, are absolute.
func (w *Watcher) Open(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}
	root = abs
	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return tokcount.Errorf(tokcount.ENOTFOUND, "directory %q not found", root)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return tokcount.Errorf(tokcount.EINVALID, "%q is not a directory", root)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	w.root = root
	w.fw = fw
	w.pending = make(map[string]struct{})

	if err := w.addTree(root); err != nil {
		fw.Close()
		return err
	}
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w.fw != nil {
		return w.fw.Close()
	}
	return nil
}

// Run processes events until ctx is done, returning nil in that case.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if err := w.handle(ctx, ev); err != nil {
				return err
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.root, err)
		case <-ticker.C:
		}

		if len(w.pending) > 0 && limiter.Allow() {
			if err := w.flush(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) error {
	if ev.Op == fsnotify.Chmod || w.excluded(ev.Name) {
		return nil
	}

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		if w.Cache != nil {
			if _, err := w.Cache.DeleteCacheEntriesUnder(ctx, ev.Name); err != nil {
				return fmt.Errorf("invalidate %s: %w", ev.Name, err)
			}
		}
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				return err
			}
		} else if w.Cache != nil {
			err := w.Cache.DeleteCacheEntry(ctx, ev.Name)
			if err != nil && tokcount.ErrorCode(err) != tokcount.ENOTFOUND {
				return fmt.Errorf("invalidate %s: %w", ev.Name, err)
			}
		}
	default:
		return nil
	}

	w.pending[ev.Name] = struct{}{}
	return nil
}

func (w *Watcher) flush(ctx context.Context) error {
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	clear(w.pending)

	if w.OnChange == nil {
		return nil
	}
	return w.OnChange(ctx, paths)
}

// addTree watches dir and every non-excluded directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Directories can vanish between the event and the walk.
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	if tokcount.IsHidden(filepath.Base(path)) || tokcount.IsDefaultExcluded(rel) {
		return true
	}
	isDir := false
	if info, err := os.Stat(path); err == nil {
		isDir = info.IsDir()
	}
	return w.Ignore.Match(rel, isDir)
}
