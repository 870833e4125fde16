package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	Now() time.Time
}

// LocalClock uses system time in the local zone. Birthdays are calendar
// dates, so "today" is the user's local date.
type LocalClock struct{}

func (LocalClock) Now() time.Time { return time.Now() }

// FrozenClock returns a fixed time until Set moves it.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t} }

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}
