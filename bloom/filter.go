// Package bloom provides a Bloom filter of cached file paths.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/tokcount"
)

var _ tokcount.KnownPaths = (*Filter)(nil)

// Filter wraps a Bloom filter for path membership tests.
// It is safe for concurrent use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// NewFilterFromPaths creates a filter sized for paths plus headroom for
// growth and adds every path to it.
func NewFilterFromPaths(paths []string, headroom uint, fpRate float64) *Filter {
	f := NewFilter(uint(len(paths))+headroom, fpRate)
	for _, p := range paths {
		f.f.AddString(p)
	}
	return f
}

// Add adds a path to the filter.
func (f *Filter) Add(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(path)
}

// Test returns true if the path might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(path)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
