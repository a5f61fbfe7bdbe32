// Package timeutil abstracts the time source so date-sensitive logic
// (birthday reminders) stays deterministic under test.
package timeutil

import (
	"sync"
	"time"
)

// Clock is the time source used by the service layer.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// UTCClock returns the system time in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// FrozenClock is a fixed time source with manual advancement, for tests.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

// NewFrozenClock creates a clock frozen at t.
func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

// Set replaces the frozen time.
func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

// Advance moves the frozen time forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Default is the global clock used when none is injected.
var Default Clock = UTCClock{}

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
