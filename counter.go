package tokcount

// Counter accumulates token amounts. The zero value is ready to use and
// holds 0. A Counter is not safe for concurrent use.
type Counter struct {
	value int
}

// Add increases the counter by amount. Negative amounts are accepted and
// decrease the value; overflow is not checked.
func (c *Counter) Add(amount int) {
	c.value += amount
}

// Count returns the current value.
func (c *Counter) Count() int {
	return c.value
}
