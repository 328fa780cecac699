package world

import "math/rand"

// Phase is the session state machine. Ended is terminal until a restart
// replaces the whole State.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Input is the set of directional keys held during a tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Event is a side effect of a tick that the front end turns into sound.
type Event int

const (
	EventShot Event = iota
	EventHit
	EventGameOver
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "game over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// State is everything one session mutates. Renderers must treat it as read-only.
type State struct {
	Phase Phase
	Score int
	Speed float64 // difficulty, snapshotted into new enemies

	Player      Player
	Pursuers    []*Pursuer
	Vehicles    []*Vehicle
	Projectiles []*Projectile

	PlayerFrame  int
	PursuerFrame int
	playerDelay  int
	pursuerDelay int

	tuning Tuning
}

// NewState returns the starting state of a session.
func NewState(t Tuning) *State {
	return &State{
		Phase: PhaseRunning,
		Speed: t.StartSpeed,
		Player: Player{
			X:    t.PlayerStartX,
			Y:    t.Height / 2,
			Size: t.PlayerSize,
		},
		Pursuers:    []*Pursuer{},
		Vehicles:    []*Vehicle{},
		Projectiles: []*Projectile{},
		tuning:      t,
	}
}

// Tuning returns the constants the state was built with.
func (s *State) Tuning() Tuning { return s.tuning }

// Running reports whether the session is still in play.
func (s *State) Running() bool { return s.Phase == PhaseRunning }

// SpawnPursuer appends one pursuer at the right edge. It does nothing once
// the session has ended.
func (s *State) SpawnPursuer(rng *rand.Rand) *Pursuer {
	if !s.Running() {
		return nil
	}
	t := s.tuning
	p := &Pursuer{
		X:     t.Width,
		Y:     randomOffset(rng, t.Height-t.PursuerMargin),
		Size:  t.PursuerSize,
		Speed: s.Speed,
	}
	s.Pursuers = append(s.Pursuers, p)
	return p
}

// SpawnVehicle appends one vehicle at the right edge. It does nothing once
// the session has ended.
func (s *State) SpawnVehicle(rng *rand.Rand) *Vehicle {
	if !s.Running() {
		return nil
	}
	t := s.tuning
	v := &Vehicle{
		X:      t.Width,
		Y:      randomOffset(rng, t.Height-t.VehicleMargin),
		Width:  t.VehicleWidth,
		Height: t.VehicleHeight,
		Speed:  s.Speed * t.VehicleSpeedFactor,
	}
	s.Vehicles = append(s.Vehicles, v)
	return v
}

func randomOffset(rng *rand.Rand, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return rng.Float64() * span
}

// Step advances the session by one tick and returns the events it produced.
// A collision with the player ends the session and abandons the rest of the tick.
func (s *State) Step(in Input) []Event {
	if !s.Running() {
		return nil
	}
	t := s.tuning
	var events []Event

	s.movePlayer(in)

	for _, p := range s.Pursuers {
		p.X -= p.Speed
	}

	for _, v := range s.Vehicles {
		v.X -= v.Speed
		v.Cooldown--
		if v.Cooldown <= 0 {
			burst := FireBurst(v, s.Score, t)
			for i := range burst {
				s.Projectiles = append(s.Projectiles, &burst[i])
			}
			v.Cooldown = t.FireCooldown
			events = append(events, EventShot)
		}
	}

	for _, w := range s.Projectiles {
		w.X += w.VX
		w.Y += w.VY
	}

	for _, w := range s.Projectiles {
		if CollidesShrunk(&s.Player, w, t.ShrinkFactor) {
			return s.end(events)
		}
	}

	remaining := s.Projectiles[:0]
	for _, w := range s.Projectiles {
		if !w.offscreen(t.Width, t.Height) {
			remaining = append(remaining, w)
		}
	}
	clearTail(s.Projectiles, len(remaining))
	s.Projectiles = remaining

	for _, p := range s.Pursuers {
		if CollidesShrunk(&s.Player, p, t.ShrinkFactor) {
			return s.end(events)
		}
	}
	for _, v := range s.Vehicles {
		if CollidesShrunk(&s.Player, v, t.ShrinkFactor) {
			return s.end(events)
		}
	}

	s.prunePassed()

	s.Score++
	if t.SpeedEvery > 0 && s.Score%t.SpeedEvery == 0 {
		s.Speed += t.SpeedStep
	}

	s.PlayerFrame, s.playerDelay = s.animate(s.PlayerFrame, s.playerDelay)
	s.PursuerFrame, s.pursuerDelay = s.animate(s.PursuerFrame, s.pursuerDelay)

	return events
}

func (s *State) movePlayer(in Input) {
	t := s.tuning
	p := &s.Player
	if in.Up && p.Y > 0 {
		p.Y -= t.PlayerStep
	}
	if in.Down && p.Y < t.Height-p.Size {
		p.Y += t.PlayerStep
	}
	if in.Left && p.X > 0 {
		p.X -= t.PlayerStep
	}
	if in.Right && p.X < t.Width-p.Size {
		p.X += t.PlayerStep
	}
}

func (s *State) prunePassed() {
	pursuers := s.Pursuers[:0]
	for _, p := range s.Pursuers {
		if p.X+p.Size > 0 {
			pursuers = append(pursuers, p)
		}
	}
	clearTail(s.Pursuers, len(pursuers))
	s.Pursuers = pursuers

	vehicles := s.Vehicles[:0]
	for _, v := range s.Vehicles {
		if v.X+v.Width > 0 {
			vehicles = append(vehicles, v)
		}
	}
	clearTail(s.Vehicles, len(vehicles))
	s.Vehicles = vehicles
}

func (s *State) animate(frame, delay int) (int, int) {
	t := s.tuning
	delay++
	if delay >= t.AnimationDelay {
		if t.AnimationFrames > 0 {
			frame = (frame + 1) % t.AnimationFrames
		}
		delay = 0
	}
	return frame, delay
}

func (s *State) end(events []Event) []Event {
	s.Phase = PhaseEnded
	return append(events, EventHit, EventGameOver)
}

// clearTail drops references past n so pruned entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
