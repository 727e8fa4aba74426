package mock

import "github.com/fwojciec/tokcount"

var _ tokcount.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of tokcount.ContentExtractor.
type ContentExtractor struct {
	ExtractTextFn func(content string) (string, error)
}

func (e *ContentExtractor) ExtractText(content string) (string, error) {
	return e.ExtractTextFn(content)
}
