// Package slog provides logging decorators for tokcount services.
package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/tokcount"
)

// Ensure LoggingTokenCounter implements tokcount.TokenCounter.
var _ tokcount.TokenCounter = (*LoggingTokenCounter)(nil)

// LoggingTokenCounter wraps a TokenCounter with logging.
type LoggingTokenCounter struct {
	next   tokcount.TokenCounter
	name   string
	logger *slog.Logger
}

// NewLoggingTokenCounter creates a new LoggingTokenCounter. name identifies
// the tokenizer in log lines.
func NewLoggingTokenCounter(next tokcount.TokenCounter, name string, logger *slog.Logger) *LoggingTokenCounter {
	return &LoggingTokenCounter{next: next, name: name, logger: logger}
}

// CountTokens delegates to the wrapped counter and logs the operation.
func (c *LoggingTokenCounter) CountTokens(ctx context.Context, text string) (tokens int, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("token count",
			"tokenizer", c.name,
			"chars", utf8.RuneCountInString(text),
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CountTokens(ctx, text)
}
