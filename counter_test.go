package tokcount_test

import (
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	t.Parallel()

	t.Run("zero value starts at zero", func(t *testing.T) {
		t.Parallel()

		var c tokcount.Counter

		assert.Equal(t, 0, c.Count())
	})

	t.Run("adds amounts", func(t *testing.T) {
		t.Parallel()

		var c tokcount.Counter
		c.Add(3)
		c.Add(5)

		assert.Equal(t, 8, c.Count())
	})

	t.Run("count equals sum of all amounts", func(t *testing.T) {
		t.Parallel()

		amounts := []int{1, 10, 0, 250, 7}
		var c tokcount.Counter
		var sum int
		for _, a := range amounts {
			c.Add(a)
			sum += a
		}

		assert.Equal(t, sum, c.Count())
	})

	t.Run("negative amounts are applied unchecked", func(t *testing.T) {
		t.Parallel()

		var c tokcount.Counter
		c.Add(2)
		c.Add(-5)

		assert.Equal(t, -3, c.Count())
	})

	t.Run("count has no side effects", func(t *testing.T) {
		t.Parallel()

		var c tokcount.Counter
		c.Add(4)
		_ = c.Count()

		assert.Equal(t, 4, c.Count())
	})
}
