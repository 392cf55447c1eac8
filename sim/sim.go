// Package sim simulates the hardware the wifi package drives: a manual clock
// and a network stack with a configurable set of reachable networks.
package sim

import (
	"sync"
	"time"
)

// Clock is a manual clock.  Sleep advances time instead of waiting.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// Epoch is where new Clocks start
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func NewClock() *Clock {
	return &Clock{now: Epoch}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Sleep(d time.Duration) {
	c.Advance(d)
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Since is the time elapsed since Epoch
func (c *Clock) Since() time.Duration {
	return c.Now().Sub(Epoch)
}
