package core

import "time"

// TickClock decides when the simulation should advance a generation. It has
// two states, running and paused; while paused no tick ever fires.
type TickClock struct {
	interval time.Duration
	last     time.Time
	paused   bool

	now func() time.Time
}

// NewTickClock constructs a running clock firing once per interval.
func NewTickClock(interval time.Duration) *TickClock {
	if interval <= 0 {
		interval = time.Second
	}
	c := &TickClock{interval: interval, now: time.Now}
	c.last = c.now()
	return c
}

// Interval returns the configured tick interval.
func (c *TickClock) Interval() time.Duration { return c.interval }

// Paused reports whether the clock is in the paused state.
func (c *TickClock) Paused() bool { return c.paused }

// TogglePause flips between running and paused.
func (c *TickClock) TogglePause() { c.paused = !c.paused }

// Due reports whether a tick should fire now. A firing tick resets the
// timer; whether the caller actually advances the generation is its own
// business. Manual generation advances must not reset the timer, so they
// go through the controller, never through here.
func (c *TickClock) Due() bool {
	if c.paused {
		return false
	}
	now := c.now()
	if now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	return true
}
