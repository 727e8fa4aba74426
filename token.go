package tokcount

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"
)

// Tokenizer names accepted by the CLI and stored with cache entries.
const (
	TokenizerEstimate = "estimate"
	TokenizerWords    = "words"
	TokenizerGemini   = "gemini"
)

// TokenCounter counts tokens in text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

var (
	_ TokenCounter = WordCounter{}
	_ TokenCounter = Estimator{}
)

// WordCounter counts whitespace-delimited words as tokens.
type WordCounter struct{}

// CountTokens returns CountWords(text).
func (WordCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return CountWords(text), nil
}

// Estimator approximates model tokens from character counts.
type Estimator struct{}

// CountTokens returns EstimateTokens(text).
func (Estimator) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return EstimateTokens(text), nil
}

// Characters per token for prose and for punctuation-heavy code.
const (
	charsPerToken     = 4.0
	charsPerCodeToken = 3.5
)

// EstimateTokens estimates the token count of content. Whitespace runs are
// collapsed before counting runes; text where code punctuation makes up more
// than a tenth of the runes is treated as code. Non-empty text always
// estimates to at least one token.
func EstimateTokens(content string) int {
	normalized := strings.Join(strings.Fields(content), " ")
	n := utf8.RuneCountInString(normalized)
	if n == 0 {
		return 0
	}

	estimate := math.Ceil(float64(n) / charsPerToken)
	if float64(countCodePunct(normalized)) > float64(n)*0.1 {
		estimate = math.Ceil(float64(n) / charsPerCodeToken)
	}

	return max(int(estimate), 1)
}

func countCodePunct(s string) int {
	var n int
	for _, r := range s {
		switch r {
		case '{', '}', '(', ')', ';', ',', '.', '[', ']':
			n++
		}
	}
	return n
}
