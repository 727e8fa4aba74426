package tokcount

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultMaxFileSize is the largest file counted unless configured otherwise.
const DefaultMaxFileSize = 1 << 20

// DefaultExcludes are path segments that are never counted.
var DefaultExcludes = []string{"node_modules", ".git", "dist", "build", ".DS_Store"}

// Skip reasons reported in FileResult.Skipped.
const (
	SkipExcluded = "excluded"
	SkipTooLarge = "too large"
)

// Filter decides which files are counted.
type Filter struct {
	// ExcludedExts lists lower-cased extensions with a leading dot.
	ExcludedExts []string

	// MaxFileSize is the largest counted size in bytes. Zero means unlimited.
	MaxFileSize int64
}

// NewFilter returns a filter with normalized extensions.
// Extensions may be given with or without the leading dot.
func NewFilter(exts []string, maxFileSize int64) *Filter {
	f := &Filter{MaxFileSize: maxFileSize}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.ExcludedExts = append(f.ExcludedExts, ext)
	}
	return f
}

// Allows reports whether a file at path with the given size should be
// counted. When it should not, reason names why.
func (f *Filter) Allows(path string, size int64) (ok bool, reason string) {
	if f == nil {
		return true, ""
	}
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(f.ExcludedExts, ext) {
		return false, SkipExcluded
	}
	if f.MaxFileSize > 0 && size > f.MaxFileSize {
		return false, SkipTooLarge
	}
	return true, ""
}

// IsDefaultExcluded reports whether any segment of the slash-separated
// path is one of DefaultExcludes.
func IsDefaultExcluded(relPath string) bool {
	for _, seg := range strings.Split(relPath, "/") {
		if slices.Contains(DefaultExcludes, seg) {
			return true
		}
	}
	return false
}

// IsHidden reports whether name is a dotfile other than .gitignore.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != ".gitignore" && name != "." && name != ".."
}
