package game

import "time"

// Clock measures the time between frames.
type Clock struct {
	last    time.Time
	started bool
}

// Delta returns the seconds since the previous call. The first call, and the
// first call after Reset, returns 0.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset makes the next Delta return 0.
func (c *Clock) Reset() {
	c.started = false
}
