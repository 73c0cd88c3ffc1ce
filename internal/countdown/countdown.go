package countdown

import (
	"sync"
	"time"
)

// Deadline is the start of the final collection day: day totalDays counting
// start as day one.
func Deadline(start time.Time, totalDays int) time.Time {
	return start.AddDate(0, 0, max(totalDays-1, 0))
}

// Countdown reports whether the deadline has passed. Once it has, it stays
// expired even if the clock moves backwards.
type Countdown struct {
	deadline time.Time

	mu      sync.Mutex
	expired bool
}

func New(deadline time.Time) *Countdown {
	return &Countdown{deadline: deadline}
}

// Expired returns a Countdown that is already past its deadline.
func Expired() *Countdown {
	return &Countdown{expired: true}
}

func (c *Countdown) Deadline() time.Time {
	return c.deadline
}

func (c *Countdown) Expired(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.expired && !now.Before(c.deadline) {
		c.expired = true
	}
	return c.expired
}

// Remaining returns the time left until the deadline, or zero once expired.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	if c.Expired(now) {
		return 0
	}
	return c.deadline.Sub(now)
}
