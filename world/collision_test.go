package world

import "testing"

func TestCollidesSquareBoundary(t *testing.T) {
	player := &Player{X: 0, Y: 0, Size: 70}

	// Radii are 35*0.6 = 21 each, so centres must be closer than 42.
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"overlapping", 0, true},
		{"inside shrunk radius", 41, true},
		{"on shrunk radius", 42, false},
		{"boxes touch but circles do not", 43, false},
		{"far away", 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pursuer{X: tt.x, Y: 0, Size: 70}
			if got := Collides(player, p); got != tt.want {
				t.Fatalf("Collides(player, pursuer at x=%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCollidesUsesSmallerSideOfRectangles(t *testing.T) {
	player := &Player{X: 0, Y: 0, Size: 70} // centre (35,35), radius 21

	// A 100x50 vehicle has radius 25*0.6 = 15, not 50*0.6 = 30.
	far := &Vehicle{X: 25, Y: 10, Width: 100, Height: 50} // centre (75,35), distance 40
	if Collides(player, far) {
		t.Fatalf("vehicle at distance 40 should not collide with a 36 radius sum")
	}
	near := &Vehicle{X: 20, Y: 10, Width: 100, Height: 50} // centre (70,35), distance 35
	if !Collides(player, near) {
		t.Fatalf("vehicle at distance 35 should collide with a 36 radius sum")
	}
}

func TestCollidesShrunkFactor(t *testing.T) {
	a := &Pursuer{X: 0, Y: 0, Size: 100}
	b := &Pursuer{X: 90, Y: 0, Size: 100}

	if CollidesShrunk(a, b, DefaultShrink) {
		t.Fatalf("distance 90 must not collide with shrink %v", DefaultShrink)
	}
	if !CollidesShrunk(a, b, 1) {
		t.Fatalf("distance 90 must collide with full radius 100")
	}
}

func TestCollidesIsSymmetric(t *testing.T) {
	bodies := []Body{
		&Player{X: 50, Y: 200, Size: 70},
		&Pursuer{X: 80, Y: 210, Size: 70},
		&Vehicle{X: 100, Y: 190, Width: 100, Height: 50},
		&Projectile{X: 60, Y: 230, Width: 20, Height: 10},
		&Projectile{X: 700, Y: 10, Width: 20, Height: 10},
	}
	for i, a := range bodies {
		for j, b := range bodies {
			if Collides(a, b) != Collides(b, a) {
				t.Errorf("Collides(%d,%d) != Collides(%d,%d)", i, j, j, i)
			}
		}
	}
}
