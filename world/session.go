package world

import (
	"math/rand"
	"time"
)

// Session is one play-through, from init to game over. A restart never
// reuses a Session: the driver closes it and builds a new one, so spawn
// timers can't outlive the state they feed.
type Session struct {
	ID      int
	State   *State
	Started time.Time

	rng    *rand.Rand
	timers *Scheduler
}

// NewSession resets all entities and scalars and starts the pursuer and
// vehicle spawners.
func NewSession(id int, t Tuning, now time.Time, rng *rand.Rand) *Session {
	s := &Session{
		ID:      id,
		State:   NewState(t),
		Started: now,
		rng:     rng,
		timers:  NewScheduler(),
	}
	s.startSpawners(now)
	return s
}

// Advance runs the spawn timers that are due at now.
func (s *Session) Advance(now time.Time) {
	s.timers.Advance(now)
}

// Step runs one update tick. Once the state has ended the spawn timers are
// cancelled.
func (s *Session) Step(in Input) []Event {
	events := s.State.Step(in)
	if !s.State.Running() {
		s.timers.Stop()
	}
	return events
}

// Close cancels the session's timers.
func (s *Session) Close() {
	s.timers.Stop()
}

// ActiveTimers returns the number of spawn timers still scheduled.
func (s *Session) ActiveTimers() int {
	return s.timers.Len()
}
