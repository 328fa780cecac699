package world

import "time"

// Task is a periodic callback owned by a Scheduler.
type Task struct {
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

// Cancel stops the task from firing again.
func (t *Task) Cancel() { t.cancelled = true }

// Cancelled reports whether Cancel was called or the owning scheduler stopped.
func (t *Task) Cancelled() bool { return t.cancelled }

// Scheduler runs periodic tasks against wall-clock deadlines. It has no
// goroutines of its own: the game loop calls Advance once per tick, so tasks
// run on the same goroutine as the update step.
type Scheduler struct {
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run each interval, first at now+interval.
// It panics if interval is not positive, like time.NewTicker.
func (s *Scheduler) Every(now time.Time, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("world: non-positive interval for Scheduler.Every")
	}
	t := &Task{
		interval: interval,
		next:     now.Add(interval),
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every task whose deadline has passed and returns how many
// fired. A task fires at most once per call; missed periods are dropped
// rather than replayed in a burst.
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		if !now.Before(t.next) {
			t.fn()
			fired++
			t.next = t.next.Add(t.interval)
			if !now.Before(t.next) {
				t.next = now.Add(t.interval)
			}
		}
		// fn may have cancelled its own task
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	return fired
}

// Stop cancels every task.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
