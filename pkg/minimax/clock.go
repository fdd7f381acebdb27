package minimax

import (
	"time"
)

// Wall clock of a single search, with an optional movetime budget
type searchClock struct {
	start  time.Time
	budget time.Duration
}

func newSearchClock() *searchClock {
	return &searchClock{start: time.Now(), budget: -1}
}

// Restart the clock, a negative 'movetime' (ms) means no budget
func (c *searchClock) Start(movetime int) {
	c.start = time.Now()
	c.budget = -1
	if movetime >= 0 {
		c.budget = time.Duration(movetime) * time.Millisecond
	}
}

// When the budget runs out, false if there is none
func (c *searchClock) Deadline() (time.Time, bool) {
	if c.budget < 0 {
		return time.Time{}, false
	}
	return c.start.Add(c.budget), true
}

// Milliseconds since Start, at least 1 so rates can be divided by it
func (c *searchClock) ElapsedMs() uint32 {
	return uint32(max(time.Since(c.start).Milliseconds(), 1))
}
