package tokcount

// ContentExtractor reduces file content to the text that should be counted,
// e.g. stripping markup from HTML.
type ContentExtractor interface {
	ExtractText(content string) (string, error)
}
