package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// LoadIgnore reads root/.gitignore. A missing file, or a root that is not
// a directory, yields an empty matcher.
func LoadIgnore(root string) (*tokcount.IgnoreMatcher, error) {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return &tokcount.IgnoreMatcher{}, nil
	}
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if errors.Is(err, os.ErrNotExist) {
		return &tokcount.IgnoreMatcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	return tokcount.ParseIgnore(string(data)), nil
}
