package gemini_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	// Use a real model name that the tokenizer supports
	tc, err := gemini.NewTokenCounter("gemini-2.0-flash")
	require.NoError(t, err)

	var _ tokcount.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), tokcount.SampleText)

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		shortCount, err := tc.CountTokens(ctx, "Hello")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(ctx, "Hello, this is a much longer piece of text that should have more tokens than just a single word.")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tc.CountTokens(ctx, "Hello")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		want, err := tc.CountTokens(context.Background(), tokcount.SampleText)
		require.NoError(t, err)

		var wg sync.WaitGroup
		counts := make([]int, 8)
		for i := range counts {
			wg.Go(func() {
				counts[i], _ = tc.CountTokens(context.Background(), tokcount.SampleText)
			})
		}
		wg.Wait()

		for _, got := range counts {
			assert.Equal(t, want, got)
		}
	})
}

func TestNewTokenCounter_DefaultModel(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("")

	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, tc.Model())
}
