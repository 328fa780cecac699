package world

import (
	"context"
	"math/rand"
	"time"
)

// Renderer draws a state. It must not modify it.
type Renderer interface {
	Render(s *State)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *State)

func (f RendererFunc) Render(s *State) { f(s) }

// Driver owns the current session and advances it once per display refresh.
// It is not safe for concurrent use; everything runs on the loop goroutine.
type Driver struct {
	tuning   Tuning
	clock    Clock
	rng      *rand.Rand
	session  *Session
	sessions int
	stopped  bool

	// Listener, when set, receives every event as it is produced.
	Listener func(Event)
}

// NewDriver builds a driver and starts the first session.
func NewDriver(t Tuning, clock Clock, rng *rand.Rand) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Driver{
		tuning: t,
		clock:  clock,
		rng:    rng,
	}
	d.start()
	return d
}

func (d *Driver) start() {
	d.sessions++
	d.session = NewSession(d.sessions, d.tuning, d.clock.Now(), d.rng)
}

// Session returns the current session.
func (d *Driver) Session() *Session { return d.session }

// State returns the current session's state.
func (d *Driver) State() *State { return d.session.State }

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool { return d.stopped }

// Update fires due spawn timers and runs one update step at the clock's time.
func (d *Driver) Update(in Input) []Event {
	return d.UpdateAt(d.clock.Now(), in)
}

// UpdateAt is Update with an explicit timestamp for the spawn timers.
func (d *Driver) UpdateAt(now time.Time, in Input) []Event {
	if d.stopped {
		return nil
	}
	d.session.Advance(now)
	events := d.session.Step(in)
	d.emit(events)
	return events
}

// Render hands the current state to r.
func (d *Driver) Render(r Renderer) {
	r.Render(d.session.State)
}

// Tick is one refresh: update, then render.
func (d *Driver) Tick(in Input, r Renderer) []Event {
	events := d.Update(in)
	d.Render(r)
	return events
}

// Restart closes the current session and starts a fresh one.
func (d *Driver) Restart() []Event {
	d.session.Close()
	d.stopped = false
	d.start()
	events := []Event{EventRestart}
	d.emit(events)
	return events
}

// Stop cancels the session timers. Later updates are no-ops until Restart.
func (d *Driver) Stop() {
	d.stopped = true
	d.session.Close()
}

// Run ticks once per value received from refresh, using that value as the
// tick time, and renders after each update. It returns when ctx is done or
// refresh is closed; game over does not end the loop.
func (d *Driver) Run(ctx context.Context, refresh <-chan time.Time, input func() Input, r Renderer) error {
	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case now, ok := <-refresh:
			if !ok {
				return nil
			}
			var in Input
			if input != nil {
				in = input()
			}
			d.UpdateAt(now, in)
			d.Render(r)
		}
	}
}

func (d *Driver) emit(events []Event) {
	if d.Listener == nil {
		return
	}
	for _, e := range events {
		d.Listener(e)
	}
}
