package world

import "time"

func (s *Session) startSpawners(now time.Time) {
	t := s.State.Tuning()
	s.timers.Every(now, t.PursuerInterval, s.spawnPursuer)
	s.timers.Every(now, t.VehicleInterval, s.spawnVehicle)
}

// Spawn ticks are no-ops after game over; State gates them on the phase.

func (s *Session) spawnPursuer() {
	s.State.SpawnPursuer(s.rng)
}

func (s *Session) spawnVehicle() {
	s.State.SpawnVehicle(s.rng)
}
