package world

import (
	"testing"
	"time"
)

func TestSessionSpawnsOnTimers(t *testing.T) {
	tn := DefaultTuning()
	s := NewSession(1, tn, epoch, newTestRand())

	s.Advance(epoch.Add(1999 * time.Millisecond))
	if len(s.State.Pursuers) != 0 {
		t.Fatalf("pursuer spawned before its interval")
	}

	s.Advance(epoch.Add(2 * time.Second))
	if len(s.State.Pursuers) != 1 {
		t.Fatalf("pursuers = %d at 2s, want 1", len(s.State.Pursuers))
	}
	p := s.State.Pursuers[0]
	if p.X != tn.Width || p.Speed != tn.StartSpeed || p.Size != tn.PursuerSize {
		t.Fatalf("pursuer = %+v", p)
	}

	s.Advance(epoch.Add(4 * time.Second))
	s.Advance(epoch.Add(5 * time.Second))
	if len(s.State.Pursuers) != 2 {
		t.Fatalf("pursuers = %d at 5s, want 2", len(s.State.Pursuers))
	}
	if len(s.State.Vehicles) != 1 {
		t.Fatalf("vehicles = %d at 5s, want 1", len(s.State.Vehicles))
	}
	v := s.State.Vehicles[0]
	if v.X != tn.Width || v.Width != 100 || v.Height != 50 || v.Speed != 1.6 {
		t.Fatalf("vehicle = %+v", v)
	}
}

func TestSessionRandomOffsetsStayInBounds(t *testing.T) {
	tn := DefaultTuning()
	s := NewSession(1, tn, epoch, newTestRand())

	for i := 1; i <= 200; i++ {
		s.Advance(epoch.Add(time.Duration(i) * tn.PursuerInterval))
	}
	if len(s.State.Pursuers) != 200 {
		t.Fatalf("pursuers = %d, want 200", len(s.State.Pursuers))
	}
	for _, p := range s.State.Pursuers {
		if p.Y < 0 || p.Y >= tn.Height-tn.PursuerMargin {
			t.Fatalf("pursuer y = %v out of [0,%v)", p.Y, tn.Height-tn.PursuerMargin)
		}
	}
	for _, v := range s.State.Vehicles {
		if v.Y < 0 || v.Y >= tn.Height-tn.VehicleMargin {
			t.Fatalf("vehicle y = %v out of [0,%v)", v.Y, tn.Height-tn.VehicleMargin)
		}
	}
}

func TestSessionCancelsTimersAtGameOver(t *testing.T) {
	s := NewSession(1, DefaultTuning(), epoch, newTestRand())
	if s.ActiveTimers() != 2 {
		t.Fatalf("active timers = %d, want 2", s.ActiveTimers())
	}

	s.State.Pursuers = append(s.State.Pursuers, &Pursuer{X: s.State.Player.X, Y: s.State.Player.Y, Size: 70, Speed: 0})
	s.Step(Input{})
	if s.State.Running() {
		t.Fatalf("session still running after collision")
	}
	if s.ActiveTimers() != 0 {
		t.Fatalf("active timers = %d after game over, want 0", s.ActiveTimers())
	}

	s.Advance(epoch.Add(time.Minute))
	if len(s.State.Pursuers) != 1 || len(s.State.Vehicles) != 0 {
		t.Fatalf("entities spawned after game over")
	}
}

func TestSessionClose(t *testing.T) {
	s := NewSession(1, DefaultTuning(), epoch, newTestRand())
	s.Close()
	s.Advance(epoch.Add(time.Minute))
	if s.ActiveTimers() != 0 || len(s.State.Pursuers) != 0 {
		t.Fatalf("closed session kept spawning")
	}
}
