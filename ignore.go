package tokcount

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreMatcher matches slash-separated paths relative to a root against
// .gitignore patterns. Negated patterns ("!") are not supported and are
// dropped. The zero value matches nothing.
type IgnoreMatcher struct {
	rules []ignoreRule
}

type ignoreRule struct {
	glob     string
	name     string // set for directory-only rules
	dirOnly  bool
	anchored bool
}

// ParseIgnore parses .gitignore content. Blank lines and comments are skipped.
func ParseIgnore(content string) *IgnoreMatcher {
	m := &IgnoreMatcher{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		anchored := strings.HasPrefix(line, "/")
		line = strings.TrimPrefix(line, "/")

		rule := ignoreRule{anchored: anchored}
		if strings.HasSuffix(line, "/") {
			rule.dirOnly = true
			rule.name = strings.TrimSuffix(line, "/")
			rule.glob = rule.name + "/**"
		} else {
			rule.glob = line
		}
		if !anchored {
			rule.glob = "**/" + rule.glob
		}
		if rule.name == "" && rule.dirOnly || !doublestar.ValidatePattern(rule.glob) {
			continue
		}
		m.rules = append(m.rules, rule)
	}
	return m
}

// Patterns returns the glob form of every rule.
func (m *IgnoreMatcher) Patterns() []string {
	if m == nil {
		return nil
	}
	patterns := make([]string, 0, len(m.rules))
	for _, r := range m.rules {
		patterns = append(patterns, r.glob)
	}
	return patterns
}

// Match reports whether relPath is ignored.
func (m *IgnoreMatcher) Match(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}
	relPath = strings.TrimPrefix(path.Clean(relPath), "./")
	base := path.Base(relPath)

	for _, r := range m.rules {
		if r.dirOnly {
			if isDir && r.matchDir(relPath) {
				return true
			}
			for dir := path.Dir(relPath); dir != "." && dir != "/"; dir = path.Dir(dir) {
				if r.matchDir(dir) {
					return true
				}
			}
			continue
		}
		if matchGlob(r.glob, relPath) || !r.anchored && matchGlob(r.glob, base) {
			return true
		}
	}
	return false
}

// matchDir reports whether the directory dir is named by a directory-only
// rule.
func (r ignoreRule) matchDir(dir string) bool {
	if r.anchored {
		return matchGlob(r.name, dir)
	}
	return matchGlob("**/"+r.name, dir)
}

func matchGlob(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
