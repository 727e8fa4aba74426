// Package tokcount counts tokens in text, files and directory trees.
// It reports compact badges for files and folders, caches per-file
// results, honors exclusion rules and .gitignore, and can watch a tree
// for changes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fsnotify/, gemini/).
package tokcount
