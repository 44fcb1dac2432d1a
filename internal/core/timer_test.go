package core

import (
	"testing"
	"time"
)

// fakeNow returns a controllable clock for TickClock tests.
func fakeNow(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func newTestClock(interval time.Duration) (*TickClock, func(time.Duration)) {
	nowFn, advance := fakeNow(time.Unix(1000, 0))
	c := &TickClock{interval: interval, now: nowFn}
	c.last = nowFn()
	return c, advance
}

func TestDueFiresAfterInterval(t *testing.T) {
	c, advance := newTestClock(time.Second)

	if c.Due() {
		t.Fatal("tick should not be due immediately")
	}
	advance(999 * time.Millisecond)
	if c.Due() {
		t.Fatal("tick should not be due before the interval elapses")
	}
	advance(time.Millisecond)
	if !c.Due() {
		t.Fatal("tick should be due once the interval has elapsed")
	}
}

func TestDueResetsTimerOnFire(t *testing.T) {
	c, advance := newTestClock(time.Second)

	advance(time.Second)
	if !c.Due() {
		t.Fatal("first tick should fire")
	}
	if c.Due() {
		t.Fatal("firing must reset the timer")
	}
	advance(time.Second)
	if !c.Due() {
		t.Fatal("second tick should fire a full interval after the first")
	}
}

func TestPausedClockNeverFires(t *testing.T) {
	c, advance := newTestClock(time.Second)

	c.TogglePause()
	advance(time.Hour)
	if c.Due() {
		t.Fatal("paused clock must not fire")
	}
	c.TogglePause()
	if !c.Due() {
		t.Fatal("resumed clock with elapsed interval should fire")
	}
}

func TestTogglePauseIsAnIdempotentPair(t *testing.T) {
	c, _ := newTestClock(time.Second)

	if c.Paused() {
		t.Fatal("clock should start running")
	}
	c.TogglePause()
	if !c.Paused() {
		t.Fatal("first toggle should pause")
	}
	c.TogglePause()
	if c.Paused() {
		t.Fatal("second toggle should resume")
	}
}

func TestNewTickClockDefaultsBadInterval(t *testing.T) {
	c := NewTickClock(0)
	if c.Interval() != time.Second {
		t.Fatalf("zero interval should default to 1s, got %s", c.Interval())
	}
}
