package world

// Player is the avatar steered by the keyboard.
type Player struct {
	X, Y float64
	Size float64
}

func (p *Player) Bounds() (x, y, w, h float64) { return p.X, p.Y, p.Size, p.Size }

// Pursuer is a police sprite scrolling left at the speed it spawned with.
type Pursuer struct {
	X, Y  float64
	Size  float64
	Speed float64
}

func (p *Pursuer) Bounds() (x, y, w, h float64) { return p.X, p.Y, p.Size, p.Size }

// Vehicle is a car that scrolls left and fires a water burst whenever
// Cooldown runs out.
type Vehicle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Cooldown      int // ticks until the next burst
}

func (v *Vehicle) Bounds() (x, y, w, h float64) { return v.X, v.Y, v.Width, v.Height }

// Projectile is a water burst travelling with a fixed velocity.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
}

func (p *Projectile) Bounds() (x, y, w, h float64) { return p.X, p.Y, p.Width, p.Height }

// offscreen reports whether the projectile has fully left the canvas on any side.
func (p *Projectile) offscreen(width, height float64) bool {
	return p.X+p.Width < 0 || p.X > width || p.Y+p.Height < 0 || p.Y > height
}
