package tokcount_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: " \n\t ", want: 0},
		{name: "single rune rounds up to one", text: "a", want: 1},
		{name: "four runes", text: "test", want: 1},
		{name: "five runes round up", text: "tests", want: 2},
		// 72 runes, 2 punctuation marks: prose ratio.
		{name: "sample sentence", text: tokcount.SampleText, want: 18},
		// Whitespace runs collapse before counting.
		{name: "collapses whitespace", text: "  ab \n\n  cd  ", want: 2},
		// 40 runes, 13 code punctuation marks: code ratio.
		{name: "code uses tighter ratio", text: "func main() { fmt.Println(a[0], b[1]); }", want: 12},
		// Runes, not bytes.
		{name: "multibyte runes", text: "日本語テキスト", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tokcount.EstimateTokens(tt.text))
		})
	}
}

func TestEstimator_CountTokens(t *testing.T) {
	t.Parallel()

	t.Run("matches EstimateTokens", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("Hello World ", 100)
		got, err := tokcount.Estimator{}.CountTokens(context.Background(), text)

		require.NoError(t, err)
		assert.Equal(t, tokcount.EstimateTokens(text), got)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tokcount.Estimator{}.CountTokens(ctx, "text")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWordCounter_CountTokens(t *testing.T) {
	t.Parallel()

	t.Run("counts words", func(t *testing.T) {
		t.Parallel()

		got, err := tokcount.WordCounter{}.CountTokens(context.Background(), "one two three")

		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tokcount.WordCounter{}.CountTokens(ctx, "one")

		require.ErrorIs(t, err, context.Canceled)
	})
}
