package world

import (
	"context"
	"time"
)

// Clock supplies wall-clock time to the spawn timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Tests and headless runs use it to get
// reproducible spawn timing.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Frames returns a channel of n refresh timestamps spaced by interval,
// starting one interval after start. Timestamps are sent one at a time as
// they are received; the channel is closed after the last one or once ctx is
// done.
func Frames(ctx context.Context, start time.Time, n int, interval time.Duration) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		for i := 1; i <= n; i++ {
			select {
			case ch <- start.Add(time.Duration(i) * interval):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
