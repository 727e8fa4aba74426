package tokcount

import (
	"strings"
	"unicode"
)

// SampleText is the sentence counted by the sample command.
const SampleText = "Hello world, this is a test file for the VSCode token counter extension."

// CountWords returns the number of whitespace-delimited, non-empty segments
// in text. Empty and whitespace-only input yields zero.
func CountWords(text string) int {
	var n int
	for _, word := range strings.FieldsFunc(text, isSpace) {
		if len(word) > 0 {
			n++
		}
	}
	return n
}

// isSpace reports whether r separates words. Besides Unicode white space
// this includes the information separators U+001C to U+001F, which
// Python's str.split also treats as white space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= '\x1c' && r <= '\x1f'
}
